package excel

import (
	"fmt"
	"strings"

	"macswap/internal/logger"
	"macswap/internal/report"
)

// column names one extracted field and where it sits in the source sheet
type column struct {
	Name  string
	Index int
}

// PreworkColumns locates the prework fields by 0-based column
type PreworkColumns struct {
	BuildingCode int
	OldMac       int
	NewMac       int
}

// TechColumns locates the tech fields by 0-based column
type TechColumns struct {
	BuildingCode int
	InstallDate  int
	Partner      int
	Bridge       int
	Tech         int
}

// DefaultPreworkColumns is the fixed prework layout
var DefaultPreworkColumns = PreworkColumns{BuildingCode: 0, OldMac: 2, NewMac: 3}

// DefaultTechColumns is the fixed tech layout
var DefaultTechColumns = TechColumns{BuildingCode: 1, InstallDate: 5, Partner: 12, Bridge: 18, Tech: 23}

func (c PreworkColumns) columns() []column {
	return []column{
		{"Building Code", c.BuildingCode},
		{"Old Mac", c.OldMac},
		{"New Mac", c.NewMac},
	}
}

func (c TechColumns) columns() []column {
	return []column{
		{"Building Code", c.BuildingCode},
		{"Install Date", c.InstallDate},
		{"Partner", c.Partner},
		{"Bridge", c.Bridge},
		{"Tech", c.Tech},
	}
}

// sourceRow is one sheet row reduced to the selected columns
type sourceRow struct {
	Number int
	Values []string
}

// selectColumns reads a headerless sheet and keeps only cols, in order.
// Rows empty across all selected columns are skipped.
func selectColumns(e *Editor, sheetIndex int, cols []column) (string, []sourceRow, error) {
	sheet, err := e.SheetAt(sheetIndex)
	if err != nil {
		return "", nil, err
	}

	rows, err := e.GetRawRows(sheet)
	if err != nil {
		return sheet, nil, &report.InputFormatError{Sheet: sheet, Reason: err.Error()}
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for _, c := range cols {
		if c.Index >= width {
			return sheet, nil, &report.InputFormatError{
				Sheet:  sheet,
				Column: c.Name,
				Reason: fmt.Sprintf("column %d is absent, sheet has %d columns", c.Index+1, width),
			}
		}
	}

	selected := make([]sourceRow, 0, len(rows))
	for i, row := range rows {
		values := make([]string, len(cols))
		blank := true
		for j, c := range cols {
			if c.Index < len(row) {
				values[j] = row[c.Index]
			}
			if strings.TrimSpace(values[j]) != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		selected = append(selected, sourceRow{Number: i + 1, Values: values})
	}
	return sheet, selected, nil
}

// ExtractPrework reads the prework sheet and trims both MACs to their last 4 characters
func ExtractPrework(e *Editor, sheetIndex int, cols PreworkColumns) ([]report.PreworkRecord, error) {
	sheet, rows, err := selectColumns(e, sheetIndex, cols.columns())
	if err != nil {
		return nil, err
	}

	records := make([]report.PreworkRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, report.PreworkRecord{
			BuildingCode: row.Values[0],
			OldMac:       report.MacSuffix(row.Values[1]),
			NewMac:       report.MacSuffix(row.Values[2]),
		})
	}

	logger.Info("Extracted prework data", "sheet", sheet, "rows", len(records))
	return records, nil
}

// ExtractTech reads the tech sheet, keeps the last bridge character and
// drops every row whose partner is not partner
func ExtractTech(e *Editor, sheetIndex int, cols TechColumns, partner string) ([]report.TechRecord, error) {
	sheet, rows, err := selectColumns(e, sheetIndex, cols.columns())
	if err != nil {
		return nil, err
	}

	records := make([]report.TechRecord, 0, len(rows))
	for _, row := range rows {
		installDate, _ := e.NormalizeDate(row.Values[1])
		records = append(records, report.TechRecord{
			Row:          row.Number,
			BuildingCode: row.Values[0],
			InstallDate:  installDate,
			Partner:      row.Values[2],
			Bridge:       report.BridgeDigit(row.Values[3]),
			Tech:         row.Values[4],
		})
	}

	kept := report.FilterPartner(records, partner)
	logger.Info("Extracted tech data",
		"sheet", sheet,
		"rows", len(records),
		"kept", len(kept),
		"partner", partner)
	return kept, nil
}
