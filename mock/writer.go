package mock

import (
	"context"

	"github.com/mgirard/sheetex"
)

var _ sheetex.AnalysisWriter = (*AnalysisWriter)(nil)

// AnalysisWriter is a mock implementation of sheetex.AnalysisWriter.
type AnalysisWriter struct {
	WriteAnalysisFn func(ctx context.Context, path string, analysis *sheetex.DocumentAnalysis) error
}

func (w *AnalysisWriter) WriteAnalysis(ctx context.Context, path string, analysis *sheetex.DocumentAnalysis) error {
	return w.WriteAnalysisFn(ctx, path, analysis)
}
