package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	catalogs, err := findCatalogs(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(catalogs) == 0 {
		fmt.Fprintf(deps.Stdout, "No PDF catalogs found in %s\n", c.Dir)
		return nil
	}

	batch, err := deps.Extractor.RunBatch(deps.Ctx, catalogs, c.Output, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for _, result := range batch.Results {
		printResult(deps, result)
	}
	for _, failure := range batch.Failures {
		fmt.Fprintf(deps.Stderr, "failed %s: %v\n", failure.CatalogPath, failure.Err)
	}

	fmt.Fprintf(deps.Stdout, "Processed %d catalogs, %d failed\n", len(batch.Results), len(batch.Failures))
	return nil
}

// findCatalogs lists the PDF files directly under dir, sorted by name.
func findCatalogs(dir string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}

	var catalogs []string
	for _, entry := range entries {
		if strings.EqualFold(filepath.Ext(entry), ".pdf") {
			catalogs = append(catalogs, entry)
		}
	}
	sort.Strings(catalogs)
	return catalogs, nil
}
