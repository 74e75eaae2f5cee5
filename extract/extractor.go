// Package extract provides technical sheet extraction orchestration.
// It coordinates page stamping, structural analysis, LLM boundary
// detection, response parsing, and sheet materialization for a catalog.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mgirard/sheetex"
)

// DefaultThreshold is the confidence below which a detected boundary is
// discarded, when no threshold is configured.
const DefaultThreshold = 0.6

// Extractor orchestrates the extraction of technical sheets from a
// catalog. All collaborators are injected; the Extractor itself holds
// no mutable state, so distinct runs are independent.
type Extractor struct {
	Analyzer     sheetex.CatalogAnalyzer
	Stamper      sheetex.PageStamper
	Detector     sheetex.BoundaryDetector
	Materializer sheetex.SheetMaterializer

	// Analyses, when set, persists the structural analysis artifact.
	// A write failure is logged and does not abort the run.
	Analyses sheetex.AnalysisWriter

	// Threshold is the boundary acceptance confidence. Zero or negative
	// selects DefaultThreshold.
	Threshold float64

	Logger *slog.Logger
}

// Result holds the outcome of one extraction run. Sheets preserve the
// order boundaries were detected in; they are never reordered by
// confidence or page number.
type Result struct {
	RunID        string
	CatalogPath  string
	StampedPath  string
	AnalysisPath string
	TotalPages   int
	LikelyPages  []int

	ParseOutcome sheetex.ParseOutcome
	ParseDetail  string
	OverlapPages []int

	Sheets []sheetex.ExtractedSheet
	Skips  []sheetex.SheetSkip
}

// Run extracts all technical sheets from the catalog at pdfPath into
// outputDir. Stamping, analysis, or an unreadable source abort the run;
// an unparseable LLM response and individual sheet write failures
// degrade to a partial Result with diagnostics.
func (e *Extractor) Run(ctx context.Context, pdfPath, outputDir string) (*Result, error) {
	logger := e.logger()
	threshold := e.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result := &Result{
		RunID:       uuid.NewString(),
		CatalogPath: pdfPath,
		StampedPath: sheetex.StampedPath(outputDir, pdfPath),
	}

	// Stamp page identifiers onto a working copy. Every later stage
	// references pages of this copy, so the LLM's page numbering and
	// the materializer's page numbering agree.
	if err := e.Stamper.Stamp(ctx, pdfPath, result.StampedPath); err != nil {
		return nil, err
	}

	analysis, err := e.Analyzer.Analyze(ctx, result.StampedPath)
	if err != nil {
		return nil, err
	}
	result.TotalPages = analysis.TotalPages
	result.LikelyPages = analysis.LikelySheetPages()

	if e.Analyses != nil {
		result.AnalysisPath = sheetex.AnalysisPath(outputDir, pdfPath)
		if err := e.Analyses.WriteAnalysis(ctx, result.AnalysisPath, analysis); err != nil {
			logger.Warn("analysis artifact not written", "path", result.AnalysisPath, "err", err)
			result.AnalysisPath = ""
		}
	}

	raw, err := e.Detector.DetectBoundaries(ctx, result.StampedPath, analysis)
	if err != nil {
		return nil, err
	}

	parsed := sheetex.ParseBoundaries(raw, threshold)
	result.ParseOutcome = parsed.Outcome
	result.ParseDetail = parsed.Detail
	if parsed.Outcome != sheetex.ParseOK {
		logger.Warn("boundary response not usable",
			"catalog", pdfPath,
			"outcome", parsed.Outcome.String(),
			"detail", parsed.Detail)
		return result, nil
	}

	result.OverlapPages = sheetex.OverlappingPages(parsed.Boundaries)
	if len(result.OverlapPages) > 0 {
		logger.Warn("pages claimed by multiple products",
			"catalog", pdfPath,
			"pages", result.OverlapPages)
	}

	sheets, skips, err := e.Materializer.Materialize(ctx, result.StampedPath, parsed.Boundaries, outputDir)
	if err != nil {
		return nil, err
	}
	result.Sheets = sheets
	result.Skips = skips

	logger.Info("extraction complete",
		"catalog", pdfPath,
		"run_id", result.RunID,
		"sheets", len(sheets),
		"skipped", len(skips))

	return result, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
