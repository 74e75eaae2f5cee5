// Package pdfcpu implements page stamping and sheet materialization
// using the pdfcpu PDF processing library.
package pdfcpu

import (
	"context"
	"os"

	"github.com/mgirard/sheetex"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Stamp descriptions. %p expands to the current page number.
const (
	labelText = "PAGE-ID: %p"
	labelDesc = "fontname:Helvetica, points:8, scale:1 abs, pos:tr, off:-15 -15, fillcolor:#00008b, rot:0"

	tagText = "<page:%p>"
	tagDesc = "fontname:Courier, points:6, scale:1 abs, pos:bl, off:15 10, fillcolor:#b3b3b3, rot:0"
)

// Ensure Stamper implements sheetex.PageStamper at compile time.
var _ sheetex.PageStamper = (*Stamper)(nil)

// Stamper writes a copy of a catalog with an explicit page marker on
// every page: a human-readable label at the top-right and a
// machine-readable tag at the bottom-left.
type Stamper struct{}

// NewStamper creates a new Stamper.
func NewStamper() *Stamper {
	return &Stamper{}
}

// Stamp writes the stamped copy of srcPath to outPath. The source file
// is never modified, and a partially stamped output is removed on
// failure.
func (s *Stamper) Stamp(ctx context.Context, srcPath, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conf := model.NewDefaultConfiguration()
	tmpPath := outPath + ".tmp"
	defer os.Remove(tmpPath)

	if err := api.AddTextWatermarksFile(srcPath, tmpPath, nil, true, labelText, labelDesc, conf); err != nil {
		return sheetex.Errorf(sheetex.EUNREADABLE, "cannot stamp document %q: %v", srcPath, err)
	}

	if err := api.AddTextWatermarksFile(tmpPath, outPath, nil, true, tagText, tagDesc, conf); err != nil {
		os.Remove(outPath)
		return sheetex.Errorf(sheetex.EUNREADABLE, "cannot stamp document %q: %v", srcPath, err)
	}

	return nil
}
