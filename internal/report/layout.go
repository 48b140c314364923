package report

import (
	"fmt"
	"strings"
)

// Role selects the cell style the writer applies
type Role int

const (
	RoleSiteHeader Role = iota
	RoleTechName
	RoleTechFiller
	RoleTechDate
	RoleColumnHeader
	RoleData
)

// BlockGap is the number of blank rows between two blocks
const BlockGap = 2

// ColumnHeaders label the table of every block
var ColumnHeaders = []string{"Site ID", "OLD MAC", "NEW MAC", "Description"}

// Cell is one styled value at a 1-based row and column
type Cell struct {
	Row   int
	Col   int
	Value string
	Role  Role
}

// Block is the rendering of one Group
type Block struct {
	Tech         string
	BuildingCode string
	FirstRow     int
	LastRow      int
	DataRows     int
	Cells        []Cell
}

// Sheet is the complete content of the output sheet
type Sheet struct {
	Blocks []Block
}

// Cells returns every cell of the sheet in write order
func (s Sheet) Cells() []Cell {
	var cells []Cell
	for _, b := range s.Blocks {
		cells = append(cells, b.Cells...)
	}
	return cells
}

// LastRow is the last row holding a value, 0 for an empty sheet
func (s Sheet) LastRow() int {
	if len(s.Blocks) == 0 {
		return 0
	}
	return s.Blocks[len(s.Blocks)-1].LastRow
}

// SiteLabel builds the site header text of a building
func SiteLabel(buildingCode, bridge string) string {
	return fmt.Sprintf("Site %s : Bridge %s", strings.TrimPrefix(buildingCode, "B"), bridge)
}

// TechLabel builds the tech/date row caption
func TechLabel(tech, buildingCode string) string {
	return fmt.Sprintf("%s (%s) MM:Swap", tech, buildingCode)
}

// Render lays out one block per (Tech, BuildingCode) group starting at row 1
func Render(records []JoinedRecord) Sheet {
	var sheet Sheet
	row := 1
	for _, g := range GroupRecords(records) {
		var b Block
		b, row = renderBlock(g, row)
		sheet.Blocks = append(sheet.Blocks, b)
		row += BlockGap
	}
	return sheet
}

// renderBlock writes g from row and returns the block with the next free row
func renderBlock(g Group, row int) (Block, int) {
	first := g.Records[0]
	b := Block{
		Tech:         g.Tech,
		BuildingCode: g.BuildingCode,
		FirstRow:     row,
		DataRows:     len(g.Records),
	}
	add := func(col int, value string, role Role) {
		b.Cells = append(b.Cells, Cell{Row: row, Col: col, Value: value, Role: role})
	}

	add(1, SiteLabel(g.BuildingCode, first.Bridge), RoleSiteHeader)
	row++

	add(1, TechLabel(g.Tech, g.BuildingCode), RoleTechName)
	add(2, "", RoleTechFiller)
	add(3, "", RoleTechFiller)
	add(4, first.InstallDate, RoleTechDate)
	row++

	for i, h := range ColumnHeaders {
		add(i+1, h, RoleColumnHeader)
	}
	row++

	for _, r := range g.Records {
		add(1, r.BuildingCode, RoleData)
		add(2, r.OldMac, RoleData)
		add(3, r.NewMac, RoleData)
		add(4, r.Description, RoleData)
		row++
	}

	b.LastRow = row - 1
	return b, row
}
