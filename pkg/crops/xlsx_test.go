package crops

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, x.SetCellValue(sheet, ref, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "lexicon.xlsx")
	require.NoError(t, x.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Keyword", "Crop", "Season", "Yield"},
		{"jowar", "Sorghum", "Kharif", "10-14 quintals/acre"},
		{"ragi", "Finger Millet", "", ""},
		{"", "Ignored", "Rabi", "x"},
	})

	lex, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())

	found := lex.Lookup("jowar then ragi")
	require.Len(t, found, 2)
	assert.Equal(t, "Sorghum", found[0].Name)
	assert.Equal(t, "Finger Millet", found[1].Name)
	// blank cells fall back to defaults
	assert.Equal(t, "Kharif", found[1].Season)
	assert.NotEmpty(t, found[1].Yield)
}

func TestLoadXLSXHeaderAliases(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Term", "Canonical", "Cropping Season", "Expected Yield"},
		{"til", "Sesame", "Kharif", "3-5 quintals/acre"},
	})

	lex, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lex.Len())
}

func TestLoadXLSXMissingColumns(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Foo", "Bar"},
		{"a", "b"},
	})
	_, err := LoadXLSX(path)
	assert.Error(t, err)
}

func TestLoadXLSXNoDataRows(t *testing.T) {
	path := writeWorkbook(t, [][]string{{"Keyword", "Crop"}})
	_, err := LoadXLSX(path)
	assert.Error(t, err)
}
