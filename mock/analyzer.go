package mock

import (
	"context"

	"github.com/mgirard/sheetex"
)

var _ sheetex.CatalogAnalyzer = (*CatalogAnalyzer)(nil)

// CatalogAnalyzer is a mock implementation of sheetex.CatalogAnalyzer.
type CatalogAnalyzer struct {
	AnalyzeFn func(ctx context.Context, path string) (*sheetex.DocumentAnalysis, error)
}

func (a *CatalogAnalyzer) Analyze(ctx context.Context, path string) (*sheetex.DocumentAnalysis, error) {
	return a.AnalyzeFn(ctx, path)
}
