package extract

import (
	"context"

	"github.com/mgirard/sheetex"
	"golang.org/x/time/rate"
)

// Ensure LimitedDetector implements sheetex.BoundaryDetector at compile time.
var _ sheetex.BoundaryDetector = (*LimitedDetector)(nil)

// LimitedDetector wraps a BoundaryDetector with a token bucket rate
// limit, so concurrent batch runs do not exceed the external API's
// request budget. Burst is fixed at 1: no bursting allowed.
type LimitedDetector struct {
	next    sheetex.BoundaryDetector
	limiter *rate.Limiter
}

// NewLimitedDetector creates a LimitedDetector allowing rps requests
// per second across all callers.
func NewLimitedDetector(next sheetex.BoundaryDetector, rps float64) *LimitedDetector {
	return &LimitedDetector{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// DetectBoundaries blocks until the rate limit allows a request, then
// delegates. Returns the context error if cancellation happens first.
func (d *LimitedDetector) DetectBoundaries(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return d.next.DetectBoundaries(ctx, pdfPath, analysis)
}
