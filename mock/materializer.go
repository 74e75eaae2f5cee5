package mock

import (
	"context"

	"github.com/mgirard/sheetex"
)

var _ sheetex.SheetMaterializer = (*SheetMaterializer)(nil)

// SheetMaterializer is a mock implementation of sheetex.SheetMaterializer.
type SheetMaterializer struct {
	MaterializeFn func(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error)
}

func (m *SheetMaterializer) Materialize(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error) {
	return m.MaterializeFn(ctx, srcPath, boundaries, outputDir)
}
