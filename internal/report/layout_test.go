package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinedRow(tech, building, oldMac, date, bridge string) JoinedRecord {
	return JoinedRecord{
		BuildingCode: building,
		OldMac:       oldMac,
		NewMac:       oldMac + "n",
		InstallDate:  date,
		Partner:      "WWT FS",
		Bridge:       bridge,
		Tech:         tech,
		Description:  DescriptionPlaceholder,
	}
}

func cellsAt(b Block, row int) []Cell {
	var cells []Cell
	for _, c := range b.Cells {
		if c.Row == row {
			cells = append(cells, c)
		}
	}
	return cells
}

func TestRender_Scenario(t *testing.T) {
	sheet := Render([]JoinedRecord{{
		BuildingCode: "B100",
		OldMac:       "1122",
		NewMac:       "3344",
		InstallDate:  "03-05",
		Partner:      "WWT FS",
		Bridge:       "7",
		Tech:         "Jane Doe",
		Description:  " ",
	}})

	require.Len(t, sheet.Blocks, 1)
	b := sheet.Blocks[0]
	assert.Equal(t, 1, b.FirstRow)
	assert.Equal(t, 4, b.LastRow)
	assert.Equal(t, 1, b.DataRows)

	assert.Equal(t, []Cell{{1, 1, "Site 100 : Bridge 7", RoleSiteHeader}}, cellsAt(b, 1))
	assert.Equal(t, []Cell{
		{2, 1, "Jane Doe (B100) MM:Swap", RoleTechName},
		{2, 2, "", RoleTechFiller},
		{2, 3, "", RoleTechFiller},
		{2, 4, "03-05", RoleTechDate},
	}, cellsAt(b, 2))
	assert.Equal(t, []Cell{
		{3, 1, "Site ID", RoleColumnHeader},
		{3, 2, "OLD MAC", RoleColumnHeader},
		{3, 3, "NEW MAC", RoleColumnHeader},
		{3, 4, "Description", RoleColumnHeader},
	}, cellsAt(b, 3))
	assert.Equal(t, []Cell{
		{4, 1, "B100", RoleData},
		{4, 2, "1122", RoleData},
		{4, 3, "3344", RoleData},
		{4, 4, " ", RoleData},
	}, cellsAt(b, 4))
}

func TestRender_SameTechAndBuildingIsOneBlock(t *testing.T) {
	sheet := Render([]JoinedRecord{
		joinedRow("Ann", "B5", "aaaa", "01-02", "3"),
		joinedRow("Ann", "B5", "bbbb", "01-03", "3"),
	})

	require.Len(t, sheet.Blocks, 1)
	b := sheet.Blocks[0]
	assert.Equal(t, 2, b.DataRows)
	assert.Equal(t, "01-02", cellsAt(b, 2)[3].Value)
	assert.Equal(t, "aaaa", cellsAt(b, 4)[1].Value)
	assert.Equal(t, "bbbb", cellsAt(b, 5)[1].Value)
}

func TestRender_BlocksSeparatedByTwoRows(t *testing.T) {
	records := []JoinedRecord{
		joinedRow("Zed", "B2", "0001", "02-01", "1"),
		joinedRow("Ann", "B9", "0002", "02-02", "2"),
		joinedRow("Ann", "B3", "0003", "02-03", "3"),
		joinedRow("Ann", "B9", "0004", "02-04", "2"),
	}

	sheet := Render(records)

	require.Len(t, sheet.Blocks, 3)
	total := 0
	for i, b := range sheet.Blocks {
		total += b.DataRows
		assert.Equal(t, b.FirstRow+3+b.DataRows-1, b.LastRow)
		if i > 0 {
			assert.Equal(t, sheet.Blocks[i-1].LastRow+BlockGap+1, b.FirstRow)
		}
		for _, c := range b.Cells {
			assert.GreaterOrEqual(t, c.Row, b.FirstRow)
			assert.LessOrEqual(t, c.Row, b.LastRow)
		}
	}
	assert.Equal(t, len(records), total)
	assert.Equal(t, sheet.Blocks[2].LastRow, sheet.LastRow())
}

func TestRender_Empty(t *testing.T) {
	sheet := Render(nil)
	assert.Empty(t, sheet.Blocks)
	assert.Empty(t, sheet.Cells())
	assert.Equal(t, 0, sheet.LastRow())
}

func TestGroupRecords_Order(t *testing.T) {
	groups := GroupRecords([]JoinedRecord{
		joinedRow("Zed", "B2", "0001", "", ""),
		joinedRow("Ann", "B9", "0002", "", ""),
		joinedRow("Ann", "B3", "0003", "", ""),
		joinedRow("Ann", "B9", "0004", "", ""),
	})

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Tech+"/"+g.BuildingCode)
	}
	assert.Equal(t, []string{"Ann/B3", "Ann/B9", "Zed/B2"}, keys)
	assert.Equal(t, "0002", groups[1].Records[0].OldMac)
	assert.Equal(t, "0004", groups[1].Records[1].OldMac)
}

func TestGroupRecords_SkipsMissingTech(t *testing.T) {
	groups := GroupRecords([]JoinedRecord{
		joinedRow("", "B100", "0001", "03-05", "7"),
		joinedRow("Ann", "B100", "0002", "03-05", "7"),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "Ann", groups[0].Tech)
	require.Len(t, groups[0].Records, 1)
	assert.Equal(t, "0002", groups[0].Records[0].OldMac)

	assert.Empty(t, Render([]JoinedRecord{joinedRow("", "B100", "0001", "03-05", "7")}).Blocks)
}

func TestSiteLabel(t *testing.T) {
	assert.Equal(t, "Site 100 : Bridge 7", SiteLabel("B100", "7"))
	assert.Equal(t, "Site 12B : Bridge 1", SiteLabel("B12B", "1"))
	assert.Equal(t, "Site 300 : Bridge 2", SiteLabel("300", "2"))
}
