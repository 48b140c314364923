package excel

import (
	"macswap/internal/logger"
	"macswap/internal/report"
)

// WriteSheet replaces the content of the sheet at sheetIndex with content:
// the sheet is emptied, retitled, then every cell is written with its role's style.
// Nothing reaches disk until Save.
func WriteSheet(e *Editor, sheetIndex int, title string, content report.Sheet, palette Palette) error {
	sheet, err := e.SheetAt(sheetIndex)
	if err != nil {
		return err
	}

	if err := e.ClearSheet(sheet); err != nil {
		return err
	}
	if err := e.RenameSheet(sheet, title); err != nil {
		return err
	}

	styles, err := registerStyles(e, palette)
	if err != nil {
		return err
	}

	cells := content.Cells()
	for _, c := range cells {
		if err := e.SetStyledCell(title, c.Row, c.Col, c.Value, styles[c.Role]); err != nil {
			return err
		}
	}

	logger.Info("Wrote output sheet",
		"sheet", title,
		"blocks", len(content.Blocks),
		"cells", len(cells),
		"last_row", content.LastRow())
	return nil
}
