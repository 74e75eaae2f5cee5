package sheetex

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

// HeaderFooterZone is the vertical distance in points from the top
// (header) or bottom (footer) edge of a page within which text is
// considered header or footer content.
const HeaderFooterZone = 100.0

// PageRecord describes the structure of a single catalog page. Records
// are immutable once created and are serialized into the context given
// to the LLM boundary detector.
type PageRecord struct {
	PageNumber           int     `json:"page_number"` // 1-indexed
	Width                float64 `json:"width"`
	Height               float64 `json:"height"`
	TextContent          string  `json:"text_content"`
	HeaderText           string  `json:"header_text"`
	FooterText           string  `json:"footer_text"`
	HasTables            bool    `json:"has_tables"`
	ImageCount           int     `json:"image_count"`
	LikelyTechnicalSheet bool    `json:"likely_technical_sheet"`
	ContentHash          string  `json:"content_hash,omitempty"`
}

// DocumentAnalysis is the per-page structural analysis of a catalog.
type DocumentAnalysis struct {
	TotalPages int           `json:"total_pages"`
	Pages      []*PageRecord `json:"pages"`
}

// LikelySheetPages returns the 1-indexed numbers of pages flagged as
// likely technical sheets, in page order.
func (a *DocumentAnalysis) LikelySheetPages() []int {
	var pages []int
	for _, p := range a.Pages {
		if p.LikelyTechnicalSheet {
			pages = append(pages, p.PageNumber)
		}
	}
	return pages
}

// CatalogAnalyzer produces a structural analysis of a PDF catalog.
// Implementations must not mutate the source document.
type CatalogAnalyzer interface {
	// Analyze returns one PageRecord per page, numbered 1..TotalPages.
	// Returns EUNREADABLE if the document cannot be opened or parsed.
	Analyze(ctx context.Context, path string) (*DocumentAnalysis, error)
}

// PageStamper writes a copy of a PDF with explicit page-identity
// markers on every page, giving the LLM an unambiguous page anchor even
// when its own page indexing is unreliable. The source file is never
// modified; a partially stamped output is never left behind on error.
type PageStamper interface {
	Stamp(ctx context.Context, srcPath, outPath string) error
}

// AnalysisWriter persists a document analysis as a debugging artifact.
type AnalysisWriter interface {
	WriteAnalysis(ctx context.Context, path string, analysis *DocumentAnalysis) error
}

// AnalysisPath returns the path of the structural analysis artifact for
// the catalog at srcPath.
// Example: catalogs/Tertu-1-10.pdf → <outputDir>/Tertu-1-10_analysis.json
func AnalysisPath(outputDir, srcPath string) string {
	return filepath.Join(outputDir, CatalogStem(srcPath)+"_analysis.json")
}

// StampedPath returns the path of the page-stamped working copy for the
// catalog at srcPath. Downstream components reference pages of this
// copy, not the original.
func StampedPath(outputDir, srcPath string) string {
	return filepath.Join(outputDir, "enhanced_"+filepath.Base(srcPath))
}

// technicalIndicators are content patterns common to technical sheets.
var technicalIndicators = []string{
	"technical data",
	"specifications",
	"tech spec",
	"technical sheet",
	"dimensions",
	"material properties",
	"electrical specifications",
	"installation requirements",
	"performance characteristics",
}

// measurementRe matches unit-tagged numbers like "250 mm" or "12.5kg".
var measurementRe = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(mm|cm|m|in|ft|kg|g|lb|v|hz|w)\b`)

// IsLikelyTechnicalSheet reports whether page text looks like a
// single-product technical sheet: at least two domain keyword matches,
// or tabular data combined with unit-tagged measurements.
func IsLikelyTechnicalSheet(text string, hasTables bool) bool {
	lower := strings.ToLower(text)

	matches := 0
	for _, indicator := range technicalIndicators {
		if strings.Contains(lower, indicator) {
			matches++
		}
	}
	if matches >= 2 {
		return true
	}

	return hasTables && measurementRe.MatchString(lower)
}
