// Package tabula implements catalog structure analysis using the
// tsawler/tabula PDF parsing library.
package tabula

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/mgirard/sheetex"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"
)

// Ensure Analyzer implements sheetex.CatalogAnalyzer at compile time.
var _ sheetex.CatalogAnalyzer = (*Analyzer)(nil)

// Analyzer builds per-page structural metadata for a PDF catalog:
// positioned text, header/footer zones, table and image presence, and
// the technical-sheet likelihood heuristic.
type Analyzer struct {
	detector *tables.GeometricDetector
}

// NewAnalyzer creates a new Analyzer with default table detection
// settings.
func NewAnalyzer() *Analyzer {
	return &Analyzer{detector: tables.NewGeometricDetector()}
}

// Analyze returns one PageRecord per page of the document at path,
// numbered 1..TotalPages. The document is opened read-only and never
// mutated.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*sheetex.DocumentAnalysis, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot open document %q: %v", path, err)
	}
	defer r.Close()

	total, err := r.PageCount()
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot read page tree of %q: %v", path, err)
	}

	analysis := &sheetex.DocumentAnalysis{
		TotalPages: total,
		Pages:      make([]*sheetex.PageRecord, 0, total),
	}

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := a.analyzePage(r, i)
		if err != nil {
			return nil, err
		}
		analysis.Pages = append(analysis.Pages, record)
	}

	return analysis, nil
}

func (a *Analyzer) analyzePage(r *reader.Reader, index int) (*sheetex.PageRecord, error) {
	page, err := r.GetPage(index)
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot read page %d: %v", index+1, err)
	}

	width, err := page.Width()
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot read geometry of page %d: %v", index+1, err)
	}
	height, err := page.Height()
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot read geometry of page %d: %v", index+1, err)
	}

	fragments, err := r.ExtractTextFragments(page)
	if err != nil {
		return nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot extract text of page %d: %v", index+1, err)
	}

	content := joinFragments(fragments)
	hasTables := a.detectTables(fragments, width, height)

	imageCount := 0
	if images, err := r.ExtractPageImages(page); err == nil {
		imageCount = len(images)
	}

	return &sheetex.PageRecord{
		PageNumber:           index + 1,
		Width:                width,
		Height:               height,
		TextContent:          content,
		HeaderText:           zoneText(fragments, height, true),
		FooterText:           zoneText(fragments, height, false),
		HasTables:            hasTables,
		ImageCount:           imageCount,
		LikelyTechnicalSheet: sheetex.IsLikelyTechnicalSheet(content, hasTables),
		ContentHash:          contentHash(content),
	}, nil
}

// detectTables runs geometric table detection over the page fragments.
func (a *Analyzer) detectTables(fragments []text.TextFragment, width, height float64) bool {
	page := model.NewPage(width, height)
	page.RawText = make([]model.TextFragment, 0, len(fragments))
	for _, f := range fragments {
		page.RawText = append(page.RawText, model.TextFragment{
			Text:     f.Text,
			BBox:     model.NewBBox(f.X, f.Y, f.Width, f.Height),
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}

	detected, err := a.detector.Detect(page)
	if err != nil {
		return false
	}
	return len(detected) > 0
}

// joinFragments concatenates fragment text in content stream encounter
// order.
func joinFragments(fragments []text.TextFragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// zoneText collects text whose baseline falls within the header or
// footer zone. PDF coordinates are bottom-origin, so the header zone is
// the top HeaderFooterZone points of the page.
func zoneText(fragments []text.TextFragment, pageHeight float64, header bool) string {
	var parts []string
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}
		inZone := f.Y < sheetex.HeaderFooterZone
		if header {
			inZone = f.Y > pageHeight-sheetex.HeaderFooterZone
		}
		if inZone {
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, " ")
}

func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
