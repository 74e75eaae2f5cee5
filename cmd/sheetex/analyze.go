package main

import (
	"fmt"
	"os"

	"github.com/mgirard/sheetex"
)

// Run executes the analyze command: stamp page identifiers, analyze the
// stamped copy, and write the analysis artifact, without calling the
// LLM.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}

	stampedPath := sheetex.StampedPath(c.Output, c.Catalog)
	if err := deps.Stamper.Stamp(deps.Ctx, c.Catalog, stampedPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetex.ErrorMessage(err))
		return err
	}

	analysis, err := deps.Analyzer.Analyze(deps.Ctx, stampedPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetex.ErrorMessage(err))
		return err
	}

	analysisPath := sheetex.AnalysisPath(c.Output, c.Catalog)
	if err := deps.Analyses.WriteAnalysis(deps.Ctx, analysisPath, analysis); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stamped copy: %s\n", stampedPath)
	fmt.Fprintf(deps.Stdout, "Analysis: %s\n", analysisPath)
	fmt.Fprintf(deps.Stdout, "%d pages, likely technical sheet pages: %v\n", analysis.TotalPages, analysis.LikelySheetPages())
	return nil
}
