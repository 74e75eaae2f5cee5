package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mgirard/sheetex"
	"github.com/mgirard/sheetex/mock"
	sheetslog "github.com/mgirard/sheetex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMaterializer_Materialize(t *testing.T) {
	t.Parallel()

	t.Run("logs each written sheet and each skip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SheetMaterializer{
			MaterializeFn: func(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error) {
				sheets := []sheetex.ExtractedSheet{
					{Product: "T22", Pages: []int{3, 4}, OutputPath: "out/sheet_3_T22_p3-4_conf0.90.pdf"},
				}
				skips := []sheetex.SheetSkip{
					{Product: "Ghost", Reason: "no valid pages"},
				}
				return sheets, skips, nil
			},
		}

		materializer := sheetslog.NewLoggingMaterializer(inner, logger)

		sheets, skips, err := materializer.Materialize(context.Background(), "a.pdf", nil, "out")
		require.NoError(t, err)

		assert.Len(t, sheets, 1)
		assert.Len(t, skips, 1)

		logged := buf.String()
		assert.Contains(t, logged, "msg=\"sheet written\"")
		assert.Contains(t, logged, "product=T22")
		assert.Contains(t, logged, "msg=\"sheet skipped\"")
		assert.Contains(t, logged, "level=WARN")
		assert.Contains(t, logged, "reason=\"no valid pages\"")
		assert.Contains(t, logged, "msg=materialize")
		assert.Contains(t, logged, "sheets=1")
		assert.Contains(t, logged, "skipped=1")
	})

	t.Run("logs failures at error level and propagates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SheetMaterializer{
			MaterializeFn: func(ctx context.Context, srcPath string, boundaries []sheetex.ProductBoundary, outputDir string) ([]sheetex.ExtractedSheet, []sheetex.SheetSkip, error) {
				return nil, nil, sheetex.Errorf(sheetex.EUNREADABLE, "cannot open document")
			},
		}

		materializer := sheetslog.NewLoggingMaterializer(inner, logger)

		sheets, skips, err := materializer.Materialize(context.Background(), "a.pdf", nil, "out")

		assert.Nil(t, sheets)
		assert.Nil(t, skips)
		assert.Equal(t, sheetex.EUNREADABLE, sheetex.ErrorCode(err))
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
