package excel

import (
	"fmt"

	"macswap/internal/report"

	"github.com/xuri/excelize/v2"
)

// Palette is the colour scheme of the output tables. It is a plain value:
// every workbook gets its own style IDs from it via registerStyles.
type Palette struct {
	HeaderFill string
	DataFill   string
	TechFill   string
	BorderLine string
	HeaderFont string
	TechFont   string
}

// DefaultPalette returns the colours of the swap report
func DefaultPalette() Palette {
	return Palette{
		HeaderFill: "D3D3D3",
		DataFill:   "E6F2FF",
		TechFill:   "FF0000",
		BorderLine: "000000",
		HeaderFont: "000000",
		TechFont:   "FFFFFF",
	}
}

func (p Palette) fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func (p Palette) borders(sides ...string) []excelize.Border {
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: p.BorderLine, Style: 1})
	}
	return borders
}

// Style returns the cell style of a layout role
func (p Palette) Style(role report.Role) *excelize.Style {
	headerFont := &excelize.Font{Bold: true, Color: p.HeaderFont}
	techFont := &excelize.Font{Bold: true, Color: p.TechFont}

	switch role {
	case report.RoleSiteHeader:
		return &excelize.Style{Font: headerFont}
	case report.RoleTechName:
		return &excelize.Style{Font: techFont, Fill: p.fill(p.TechFill), Border: p.borders("left", "top")}
	case report.RoleTechFiller:
		return &excelize.Style{Fill: p.fill(p.TechFill), Border: p.borders("top")}
	case report.RoleTechDate:
		return &excelize.Style{Font: techFont, Fill: p.fill(p.TechFill), Border: p.borders("top", "right")}
	case report.RoleColumnHeader:
		return &excelize.Style{Font: headerFont, Fill: p.fill(p.HeaderFill), Border: p.borders("left", "right", "top", "bottom")}
	default:
		return &excelize.Style{Fill: p.fill(p.DataFill), Border: p.borders("left", "right", "top", "bottom")}
	}
}

var roles = []report.Role{
	report.RoleSiteHeader,
	report.RoleTechName,
	report.RoleTechFiller,
	report.RoleTechDate,
	report.RoleColumnHeader,
	report.RoleData,
}

// registerStyles creates one workbook style per role
func registerStyles(e *Editor, p Palette) (map[report.Role]int, error) {
	ids := make(map[report.Role]int, len(roles))
	for _, role := range roles {
		id, err := e.NewStyle(p.Style(role))
		if err != nil {
			return nil, fmt.Errorf("failed to create style for role %d: %w", role, err)
		}
		ids[role] = id
	}
	return ids, nil
}
