package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mgirard/sheetex"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure Materializer implements sheetex.SheetMaterializer at compile time.
var _ sheetex.SheetMaterializer = (*Materializer)(nil)

// Materializer writes one PDF per product boundary by collecting the
// boundary's pages from the source catalog.
type Materializer struct{}

// NewMaterializer creates a new Materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// Materialize writes the surviving boundaries as standalone PDFs under
// <outputDir>/<catalog_stem>_sheets/. Pages are copied in ascending
// source order; content is never re-encoded. A boundary with no valid
// pages, or whose output file cannot be written, is skipped and
// recorded without failing the batch.
func (m *Materializer) Materialize(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error) {
	conf := model.NewDefaultConfiguration()

	total, err := api.PageCountFile(srcPath)
	if err != nil {
		return nil, nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot open document %q: %v", srcPath, err)
	}

	sheetDir := sheetex.SheetDir(outputDir, srcPath)
	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create sheet directory: %w", err)
	}

	var sheets []sheetex.ExtractedSheet
	var skips []sheetex.SheetSkip
	used := make(map[string]bool)

	for _, b := range boundaries {
		if err := ctx.Err(); err != nil {
			return sheets, skips, err
		}

		pages := sheetex.NormalizePages(b.Pages, total)
		if len(pages) == 0 {
			skips = append(skips, sheetex.SheetSkip{
				Product: b.Product,
				Reason:  fmt.Sprintf("no valid pages in %v for a %d-page document", b.Pages, total),
			})
			continue
		}

		name := disambiguate(used, sheetex.SheetFilename(b.Product, pages, b.Confidence))
		used[name] = true
		outPath := filepath.Join(sheetDir, name)

		if err := api.CollectFile(srcPath, outPath, pageSelection(pages), conf); err != nil {
			skips = append(skips, sheetex.SheetSkip{
				Product: b.Product,
				Reason:  fmt.Sprintf("write %s: %v", name, err),
			})
			continue
		}

		sheets = append(sheets, sheetex.ExtractedSheet{
			Product:    b.Product,
			Pages:      pages,
			Confidence: b.Confidence,
			OutputPath: outPath,
		})
	}

	return sheets, skips, nil
}

// pageSelection converts 1-indexed page numbers to the pdfcpu page
// selection format.
func pageSelection(pages []int) []string {
	selection := make([]string, 0, len(pages))
	for _, p := range pages {
		selection = append(selection, strconv.Itoa(p))
	}
	return selection
}

// disambiguate appends a numeric suffix when two boundaries collapse to
// the same filename after sanitization, so neither output silently
// overwrites the other.
func disambiguate(used map[string]bool, name string) string {
	if !used[name] {
		return name
	}
	stem := strings.TrimSuffix(name, ".pdf")
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d.pdf", stem, n)
		if !used[candidate] {
			return candidate
		}
	}
}
