package sheetex

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// maxFilenameProductLen bounds the sanitized product name inside a
// sheet filename.
const maxFilenameProductLen = 50

// ExtractedSheet is the result of materializing one product boundary as
// a standalone PDF. Ownership of the file at OutputPath passes to the
// caller.
type ExtractedSheet struct {
	Product    string  `json:"product"`
	Pages      []int   `json:"pages"` // 1-indexed, sorted ascending
	Confidence float64 `json:"confidence"`
	OutputPath string  `json:"output_path"`
}

// SheetSkip records a boundary that did not produce an output file and
// why. Skips are diagnostics, not errors: the rest of the batch
// continues.
type SheetSkip struct {
	Product string `json:"product"`
	Reason  string `json:"reason"`
}

// SheetMaterializer writes one PDF per boundary by copying the selected
// pages from the source document, without re-rendering or mutating page
// content.
type SheetMaterializer interface {
	// Materialize filters each boundary's pages against the real page
	// count, skips boundaries left with no valid pages, and writes the
	// survivors under outputDir. A failure writing one sheet skips that
	// sheet only; an unreadable source returns EUNREADABLE.
	Materialize(ctx context.Context, srcPath string, boundaries []ProductBoundary, outputDir string) ([]ExtractedSheet, []SheetSkip, error)
}

// BoundaryDetector asks an external model to locate technical sheet
// boundaries in a stamped catalog. The raw response text is returned
// as-is; parsing and validation happen in ParseBoundaries.
type BoundaryDetector interface {
	DetectBoundaries(ctx context.Context, pdfPath string, analysis *DocumentAnalysis) (string, error)
}

// SheetDirSuffix is appended to a catalog's base name to form its
// per-catalog output subdirectory.
const SheetDirSuffix = "_sheets"

// SheetDir returns the per-catalog subdirectory under outputDir that
// holds the materialized sheets for the catalog at srcPath.
func SheetDir(outputDir, srcPath string) string {
	return filepath.Join(outputDir, CatalogStem(srcPath)+SheetDirSuffix)
}

// CatalogStem returns the base name of a catalog path without its
// extension.
func CatalogStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SheetFilename builds a deterministic filename for a materialized
// sheet: sheet_<first>_<name>_p<first>-<last>_conf<confidence>.pdf,
// with a single-page range collapsed to p<n>. Pages must already be
// normalized (in range, deduplicated, sorted ascending).
func SheetFilename(product string, pages []int, confidence float64) string {
	first := pages[0]
	last := pages[len(pages)-1]

	pageRange := fmt.Sprintf("p%d-%d", first, last)
	if len(pages) == 1 {
		pageRange = fmt.Sprintf("p%d", first)
	}

	return fmt.Sprintf("sheet_%d_%s_%s_conf%.2f.pdf", first, SanitizeProductName(product), pageRange, confidence)
}

// SanitizeProductName restricts a product name to characters safe in a
// filename: letters, digits, hyphens, and underscores, with spaces
// converted to underscores. Names longer than 50 characters are
// truncated with an ellipsis marker.
func SanitizeProductName(product string) string {
	var sb strings.Builder
	for _, r := range product {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == ' ':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	safe := strings.ReplaceAll(strings.TrimSpace(sb.String()), " ", "_")

	runes := []rune(safe)
	if len(runes) > maxFilenameProductLen {
		safe = string(runes[:maxFilenameProductLen-3]) + "..."
	}
	return safe
}
