package report

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayDateLayout renders install dates as zero-padded month-day
const DisplayDateLayout = "01-02"

// ParseInstallDate parses a text install date in any common layout.
// Ambiguous numeric dates read month first.
func ParseInstallDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil || value == "" {
		return time.Time{}, &InputFormatError{
			Column: "Install Date",
			Value:  raw,
			Reason: "cannot parse install date",
		}
	}
	return t, nil
}

// Join inner-joins prework and tech rows on BuildingCode.
// Every pair sharing a code yields one record, in prework order then tech order.
func Join(prework []PreworkRecord, tech []TechRecord) ([]JoinedRecord, error) {
	byBuilding := make(map[string][]TechRecord, len(tech))
	for _, t := range tech {
		byBuilding[t.BuildingCode] = append(byBuilding[t.BuildingCode], t)
	}

	joined := make([]JoinedRecord, 0)
	for _, p := range prework {
		for _, t := range byBuilding[p.BuildingCode] {
			installed, err := ParseInstallDate(t.InstallDate)
			if err != nil {
				if ife, ok := err.(*InputFormatError); ok {
					ife.Row = t.Row
				}
				return nil, err
			}

			joined = append(joined, JoinedRecord{
				BuildingCode: p.BuildingCode,
				OldMac:       p.OldMac,
				NewMac:       p.NewMac,
				InstallDate:  installed.Format(DisplayDateLayout),
				Partner:      t.Partner,
				Bridge:       t.Bridge,
				Tech:         t.Tech,
				Description:  DescriptionPlaceholder,
			})
		}
	}
	return joined, nil
}
