package pipeline

import (
	"fmt"

	"macswap/internal/config"
	"macswap/internal/excel"
	"macswap/internal/logger"
	"macswap/internal/report"
)

// Summary counts what one run produced
type Summary struct {
	Workbook string
	Prework  int
	Tech     int
	Joined   int
	Blocks   int
}

// Run extracts both input sheets, joins them, renders the report into the
// output sheet and saves the workbook in place
func Run(cfg *config.Config) (*Summary, error) {
	path := cfg.Workbook.Path
	logger.Info("Starting swap report", "workbook", path)

	editor, err := excel.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	sheets := sheetPositions(cfg.Workbook)

	prework, err := excel.ExtractPrework(editor, sheets.prework, preworkColumns(cfg.Layout))
	if err != nil {
		return nil, fmt.Errorf("failed to extract prework data: %w", err)
	}

	tech, err := excel.ExtractTech(editor, sheets.tech, techColumns(cfg.Layout), cfg.Filter.Partner)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tech data: %w", err)
	}

	joined, err := report.Join(prework, tech)
	if err != nil {
		return nil, fmt.Errorf("failed to join prework and tech data: %w", err)
	}
	logger.Info("Joined data", "rows", len(joined))

	content := report.Render(joined)

	err = excel.WriteSheet(editor, sheets.output, cfg.Workbook.OutputTitle, content, excel.DefaultPalette())
	if err != nil {
		return nil, fmt.Errorf("failed to write output sheet: %w", err)
	}

	if err := editor.Save(); err != nil {
		return nil, err
	}

	logger.Info("Saved workbook", "workbook", path)
	return &Summary{
		Workbook: path,
		Prework:  len(prework),
		Tech:     len(tech),
		Joined:   len(joined),
		Blocks:   len(content.Blocks),
	}, nil
}

type sheetIndexes struct {
	prework, tech, output int
}

func sheetPositions(w config.WorkbookConfig) sheetIndexes {
	def := config.Default().Workbook
	s := sheetIndexes{prework: *def.PreworkSheet, tech: *def.TechSheet, output: *def.OutputSheet}
	set(&s.prework, w.PreworkSheet)
	set(&s.tech, w.TechSheet)
	set(&s.output, w.OutputSheet)
	return s
}

func preworkColumns(l config.LayoutConfig) excel.PreworkColumns {
	cols := excel.DefaultPreworkColumns
	set(&cols.BuildingCode, l.PreworkBuilding)
	set(&cols.OldMac, l.PreworkOldMac)
	set(&cols.NewMac, l.PreworkNewMac)
	return cols
}

func techColumns(l config.LayoutConfig) excel.TechColumns {
	cols := excel.DefaultTechColumns
	set(&cols.BuildingCode, l.TechBuilding)
	set(&cols.InstallDate, l.TechInstallDate)
	set(&cols.Partner, l.TechPartner)
	set(&cols.Bridge, l.TechBridge)
	set(&cols.Tech, l.TechTech)
	return cols
}

func set(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
