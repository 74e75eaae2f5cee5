package main

import (
	"fmt"

	"github.com/mgirard/sheetex"
	"github.com/mgirard/sheetex/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Extractor.Run(deps.Ctx, c.Catalog, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetex.ErrorMessage(err))
		return err
	}

	printResult(deps, result)
	return nil
}

// printResult writes a per-sheet summary of an extraction run.
func printResult(deps *Dependencies, result *extract.Result) {
	if result.ParseOutcome != sheetex.ParseOK {
		fmt.Fprintf(deps.Stderr, "no boundaries detected (%s): %s\n", result.ParseOutcome, result.ParseDetail)
		return
	}

	if len(result.Sheets) == 0 && len(result.Skips) == 0 {
		fmt.Fprintf(deps.Stdout, "%s: no technical sheets found\n", result.CatalogPath)
		return
	}

	fmt.Fprintf(deps.Stdout, "%s: %d technical sheets\n", result.CatalogPath, len(result.Sheets))
	for _, s := range result.Sheets {
		fmt.Fprintf(deps.Stdout, "  %s (confidence %.2f, pages %v)\n    %s\n", s.Product, s.Confidence, s.Pages, s.OutputPath)
	}
	for _, skip := range result.Skips {
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", skip.Product, skip.Reason)
	}
	if len(result.OverlapPages) > 0 {
		fmt.Fprintf(deps.Stderr, "  warning: pages %v claimed by multiple products\n", result.OverlapPages)
	}
}
