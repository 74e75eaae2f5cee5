package mock

import (
	"context"

	"github.com/mgirard/sheetex"
)

var _ sheetex.BoundaryDetector = (*BoundaryDetector)(nil)

// BoundaryDetector is a mock implementation of sheetex.BoundaryDetector.
type BoundaryDetector struct {
	DetectBoundariesFn func(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error)
}

func (d *BoundaryDetector) DetectBoundaries(ctx context.Context, pdfPath string, analysis *sheetex.DocumentAnalysis) (string, error) {
	return d.DetectBoundariesFn(ctx, pdfPath, analysis)
}
