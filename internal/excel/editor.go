package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"macswap/internal/report"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file     *excelize.File
	filepath string
	date1904 bool
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, &report.IOError{Op: "open", Path: filepath, Err: err}
	}
	return &Editor{
		file:     file,
		filepath: filepath,
		date1904: readDate1904(file),
	}, nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// SheetAt returns the name of the sheet at a 0-based position
func (e *Editor) SheetAt(index int) (string, error) {
	names := e.file.GetSheetList()
	if index < 0 || index >= len(names) {
		return "", &report.InputFormatError{
			Reason: fmt.Sprintf("workbook has %d sheets, sheet %d is missing", len(names), index+1),
		}
	}
	return names[index], nil
}

// GetRawRows returns all rows of a sheet with unformatted cell values,
// so dates come back as serial numbers
func (e *Editor) GetRawRows(sheet string) ([][]string, error) {
	rows, err := e.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %s: %w", sheet, err)
	}
	return rows, nil
}

// Date1904 reports whether the workbook counts dates from 1904
func (e *Editor) Date1904() bool {
	return e.date1904
}

func readDate1904(file *excelize.File) bool {
	props, err := file.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

// NormalizeDate rewrites a raw date serial as RFC 3339 text using the
// workbook's date system. Non-numeric values come back unchanged.
func (e *Editor) NormalizeDate(raw string) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw, false
	}
	t, err := excelize.ExcelDateToTime(serial, e.date1904)
	if err != nil {
		return raw, false
	}
	return t.Format(time.RFC3339), true
}

// ClearSheet removes every row of a sheet, values and styles alike
func (e *Editor) ClearSheet(sheet string) error {
	last, err := e.lastRow(sheet)
	if err != nil {
		return err
	}
	for row := last; row >= 1; row-- {
		if err := e.file.RemoveRow(sheet, row); err != nil {
			return fmt.Errorf("failed to remove row %d of %s: %w", row, sheet, err)
		}
	}
	return nil
}

// lastRow finds the bottom of the used range, including styled empty rows
func (e *Editor) lastRow(sheet string) (int, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to get rows of %s: %w", sheet, err)
	}
	last := len(rows)

	dimension, err := e.file.GetSheetDimension(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to get dimension of %s: %w", sheet, err)
	}
	if dimension != "" {
		bounds := strings.Split(dimension, ":")
		if _, row, err := excelize.CellNameToCoordinates(bounds[len(bounds)-1]); err == nil && row > last {
			last = row
		}
	}
	return last, nil
}

// RenameSheet changes a sheet's title, leaving it in place
func (e *Editor) RenameSheet(sheet, title string) error {
	if sheet == title {
		return nil
	}
	if err := e.file.SetSheetName(sheet, title); err != nil {
		return fmt.Errorf("failed to rename sheet %s to %s: %w", sheet, title, err)
	}
	return nil
}

// SetStyledCell writes a value at 1-based coordinates and applies a style
func (e *Editor) SetStyledCell(sheet string, row, col int, value string, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := e.file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
	}
	if err := e.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("failed to style %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// NewStyle registers a style with the workbook
func (e *Editor) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if err := e.file.SaveAs(e.filepath); err != nil {
		return &report.IOError{Op: "save", Path: e.filepath, Err: err}
	}
	return nil
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}
