package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgirard/sheetex"
)

// DefaultRetryDelays returns the backoff delays for detection retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryDetector implements sheetex.BoundaryDetector at compile time.
var _ sheetex.BoundaryDetector = (*RetryDetector)(nil)

// RetryDetector wraps a BoundaryDetector with exponential backoff
// retries. The core pipeline performs no retries of its own; this
// decorator is how a caller opts in.
type RetryDetector struct {
	next   sheetex.BoundaryDetector
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryDetector creates a RetryDetector with the default delays.
func NewRetryDetector(next sheetex.BoundaryDetector, logger *slog.Logger) *RetryDetector {
	return NewRetryDetectorWithDelays(next, logger, DefaultRetryDelays())
}

// NewRetryDetectorWithDelays is like NewRetryDetector but allows
// configurable delays. Useful for testing without waiting for real
// backoff.
func NewRetryDetectorWithDelays(next sheetex.BoundaryDetector, logger *slog.Logger, delays []time.Duration) *RetryDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryDetector{next: next, delays: delays, logger: logger}
}

// DetectBoundaries attempts detection up to len(delays)+1 times,
// sleeping between attempts. Context cancellation stops the retry loop
// immediately.
func (d *RetryDetector) DetectBoundaries(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error) {
	maxAttempts := len(d.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := d.next.DetectBoundaries(ctx, pdfPath, analysis)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		d.logger.Warn("boundary detection retry",
			"catalog", pdfPath,
			"attempt", attempt+2,
			"err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.delays[attempt]):
		}
	}

	return "", lastErr
}
