package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgirard/sheetex"
)

// Ensure LoggingMaterializer implements sheetex.SheetMaterializer at compile time.
var _ sheetex.SheetMaterializer = (*LoggingMaterializer)(nil)

// LoggingMaterializer wraps a SheetMaterializer with structured logging
// of written and skipped sheets.
type LoggingMaterializer struct {
	next   sheetex.SheetMaterializer
	logger *slog.Logger
}

// NewLoggingMaterializer creates a new LoggingMaterializer.
func NewLoggingMaterializer(next sheetex.SheetMaterializer, logger *slog.Logger) *LoggingMaterializer {
	return &LoggingMaterializer{next: next, logger: logger}
}

// Materialize delegates to the wrapped materializer, logging each
// written sheet and each skip.
func (m *LoggingMaterializer) Materialize(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error) {
	start := time.Now()
	sheets, skips, err := m.next.Materialize(ctx, srcPath, boundaries, outputDir)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("materialize", "catalog", srcPath, "duration", duration, "err", err)
		return nil, nil, err
	}

	for _, s := range sheets {
		m.logger.Info("sheet written", "product", s.Product, "pages", s.Pages, "path", s.OutputPath)
	}
	for _, skip := range skips {
		m.logger.Warn("sheet skipped", "product", skip.Product, "reason", skip.Reason)
	}
	m.logger.Info("materialize", "catalog", srcPath, "sheets", len(sheets), "skipped", len(skips), "duration", duration)

	return sheets, skips, nil
}
