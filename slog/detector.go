// Package slog provides logging decorators for sheetex interfaces
// using the standard library's structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgirard/sheetex"
)

// Ensure LoggingDetector implements sheetex.BoundaryDetector at compile time.
var _ sheetex.BoundaryDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a BoundaryDetector with structured logging of
// each external call.
type LoggingDetector struct {
	next   sheetex.BoundaryDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next sheetex.BoundaryDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// DetectBoundaries delegates to the wrapped detector, logging the
// response size and duration, or the error on failure.
func (d *LoggingDetector) DetectBoundaries(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error) {
	start := time.Now()
	raw, err := d.next.DetectBoundaries(ctx, pdfPath, analysis)
	duration := time.Since(start)

	if err != nil {
		d.logger.Error("detect", "catalog", pdfPath, "duration", duration, "err", err)
		return "", err
	}

	d.logger.Info("detect", "catalog", pdfPath, "bytes", len(raw), "duration", duration)
	return raw, nil
}
