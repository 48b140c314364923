package report

import "sort"

// Group holds the joined records of one (Tech, BuildingCode) pair
type Group struct {
	Tech         string
	BuildingCode string
	Records      []JoinedRecord
}

// GroupRecords groups by Tech, then by BuildingCode within a tech.
// Keys are sorted ascending; records keep their input order inside a group.
// Records without a Tech belong to no group and are left out.
func GroupRecords(records []JoinedRecord) []Group {
	type key struct{ tech, building string }

	index := make(map[key]int)
	var groups []Group
	for _, r := range records {
		if r.Tech == "" {
			continue
		}
		k := key{r.Tech, r.BuildingCode}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Tech: r.Tech, BuildingCode: r.BuildingCode})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Tech != groups[j].Tech {
			return groups[i].Tech < groups[j].Tech
		}
		return groups[i].BuildingCode < groups[j].BuildingCode
	})
	return groups
}
