// Package fs provides file-based persistence for analysis artifacts.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mgirard/sheetex"
)

// Ensure Writer implements sheetex.AnalysisWriter at compile time.
var _ sheetex.AnalysisWriter = (*Writer)(nil)

// Writer persists document analyses as indented JSON files. The
// artifact doubles as LLM context and as a debugging aid.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteAnalysis writes the analysis to path, creating parent
// directories as needed.
func (w *Writer) WriteAnalysis(ctx context.Context, path string, analysis *sheetex.DocumentAnalysis) error {
	if analysis == nil {
		return sheetex.Errorf(sheetex.EINVALID, "analysis required")
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
