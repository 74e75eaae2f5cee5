package tabula_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mgirard/sheetex"
	"github.com/mgirard/sheetex/tabula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("produces one record per page in order", func(t *testing.T) {
		t.Parallel()

		a := tabula.NewAnalyzer()

		analysis, err := a.Analyze(context.Background(), "testdata/catalog.pdf")
		require.NoError(t, err)

		assert.Equal(t, 5, analysis.TotalPages)
		require.Len(t, analysis.Pages, 5)
		for i, p := range analysis.Pages {
			assert.Equal(t, i+1, p.PageNumber)
			assert.InDelta(t, 595, p.Width, 1)
			assert.InDelta(t, 842, p.Height, 1)
			assert.Equal(t, 0, p.ImageCount)
			assert.NotEmpty(t, p.ContentHash)
		}
	})

	t.Run("separates header and footer zones from body text", func(t *testing.T) {
		t.Parallel()

		a := tabula.NewAnalyzer()

		analysis, err := a.Analyze(context.Background(), "testdata/catalog.pdf")
		require.NoError(t, err)

		page := analysis.Pages[1]
		assert.Contains(t, page.TextContent, "T18 Safety Barrier")
		assert.Contains(t, page.TextContent, "250 mm")
		assert.Contains(t, page.HeaderText, "T18 Safety Barrier")
		assert.NotContains(t, page.HeaderText, "250 mm")
		assert.Contains(t, page.FooterText, "Page 2")
		assert.NotContains(t, page.FooterText, "T18")
	})

	t.Run("flags technical sheet pages", func(t *testing.T) {
		t.Parallel()

		a := tabula.NewAnalyzer()

		analysis, err := a.Analyze(context.Background(), "testdata/catalog.pdf")
		require.NoError(t, err)

		// Pages 2-4 carry specification vocabulary; the cover and the
		// terms page do not.
		assert.Equal(t, []int{2, 3, 4}, analysis.LikelySheetPages())
	})

	t.Run("content hashes are deterministic and distinct per page", func(t *testing.T) {
		t.Parallel()

		a := tabula.NewAnalyzer()

		first, err := a.Analyze(context.Background(), "testdata/catalog.pdf")
		require.NoError(t, err)
		second, err := a.Analyze(context.Background(), "testdata/catalog.pdf")
		require.NoError(t, err)

		seen := make(map[string]bool)
		for i := range first.Pages {
			assert.Equal(t, first.Pages[i].ContentHash, second.Pages[i].ContentHash)
			seen[first.Pages[i].ContentHash] = true
		}
		assert.Len(t, seen, 5)
	})

	t.Run("fails on a missing document", func(t *testing.T) {
		t.Parallel()

		a := tabula.NewAnalyzer()

		_, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

		assert.Equal(t, sheetex.EUNREADABLE, sheetex.ErrorCode(err))
	})

	t.Run("respects an already cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		a := tabula.NewAnalyzer()

		_, err := a.Analyze(ctx, "testdata/catalog.pdf")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
