package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// techRow spreads the tech fields over the 24 columns of the tech sheet
func techRow(building string, installed any, partner, bridge, tech string) []any {
	row := make([]any, 24)
	row[1] = building
	row[5] = installed
	row[12] = partner
	row[18] = bridge
	row[23] = tech
	return row
}

// preworkRow spreads the prework fields over columns A, C and D
func preworkRow(building, oldMac, newMac string) []any {
	return []any{building, "ignored", oldMac, newMac}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// writeWorkbook builds a five-sheet workbook: prework, tech, two spare sheets
// and a stale output sheet, and returns its path
func writeWorkbook(t *testing.T, prework, tech [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Prework"))
	for _, name := range []string{"Tech", "Notes", "Lookup", "Report"} {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}

	writeRows(t, f, "Prework", prework)
	writeRows(t, f, "Tech", tech)
	writeRows(t, f, "Report", [][]any{{"stale", "output"}, {}, {"more stale"}})

	path := filepath.Join(t.TempDir(), "file.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}
