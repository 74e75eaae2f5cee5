package sheetex_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgirard/sheetex"
	"github.com/stretchr/testify/assert"
)

func TestSheetFilename(t *testing.T) {
	t.Parallel()

	t.Run("multi page range", func(t *testing.T) {
		t.Parallel()

		name := sheetex.SheetFilename("T22 Barrier", []int{3, 4, 5}, 0.9)

		assert.Equal(t, "sheet_3_T22_Barrier_p3-5_conf0.90.pdf", name)
	})

	t.Run("single page collapses the range", func(t *testing.T) {
		t.Parallel()

		name := sheetex.SheetFilename("T22", []int{7}, 0.85)

		assert.Equal(t, "sheet_7_T22_p7_conf0.85.pdf", name)
	})

	t.Run("confidence keeps two decimals", func(t *testing.T) {
		t.Parallel()

		name := sheetex.SheetFilename("A", []int{1}, 0.6)

		assert.Equal(t, "sheet_1_A_p1_conf0.60.pdf", name)
	})
}

func TestSanitizeProductName(t *testing.T) {
	t.Parallel()

	t.Run("replaces unsafe characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "T22_GS2_2_Vario", sheetex.SanitizeProductName("T22/GS2:2 Vario"))
	})

	t.Run("keeps letters digits hyphens underscores", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Beta-3_rev_2", sheetex.SanitizeProductName("Beta-3_rev 2"))
	})

	t.Run("converts spaces to underscores", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Safety_Barrier", sheetex.SanitizeProductName("Safety Barrier"))
	})

	t.Run("truncates long names with an ellipsis marker", func(t *testing.T) {
		t.Parallel()

		got := sheetex.SanitizeProductName(strings.Repeat("x", 80))

		assert.Len(t, []rune(got), 50)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("keeps names at the limit intact", func(t *testing.T) {
		t.Parallel()

		in := strings.Repeat("x", 50)

		assert.Equal(t, in, sheetex.SanitizeProductName(in))
	})
}

func TestSheetDir(t *testing.T) {
	t.Parallel()

	dir := sheetex.SheetDir("out", "catalogs/Tertu-1-10.pdf")

	assert.Equal(t, filepath.Join("out", "Tertu-1-10_sheets"), dir)
}

func TestCatalogStem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tertu-1-10", sheetex.CatalogStem("catalogs/Tertu-1-10.pdf"))
	assert.Equal(t, "plain", sheetex.CatalogStem("plain"))
}

func TestAnalysisPath(t *testing.T) {
	t.Parallel()

	path := sheetex.AnalysisPath("out", "catalogs/Tertu-1-10.pdf")

	assert.Equal(t, filepath.Join("out", "Tertu-1-10_analysis.json"), path)
}

func TestStampedPath(t *testing.T) {
	t.Parallel()

	path := sheetex.StampedPath("out", "catalogs/Tertu-1-10.pdf")

	assert.Equal(t, filepath.Join("out", "enhanced_Tertu-1-10.pdf"), path)
}
