package report

// PreworkRecord is one MAC assignment row of the prework sheet
type PreworkRecord struct {
	BuildingCode string
	OldMac       string
	NewMac       string
}

// TechRecord is one installation row of the tech sheet.
// InstallDate stays as read until Join parses it.
type TechRecord struct {
	Row          int
	BuildingCode string
	InstallDate  string
	Partner      string
	Bridge       string
	Tech         string
}

// JoinedRecord pairs a prework row with a tech row of the same building
type JoinedRecord struct {
	BuildingCode string
	OldMac       string
	NewMac       string
	InstallDate  string // MM-DD
	Partner      string
	Bridge       string
	Tech         string
	Description  string
}

// DescriptionPlaceholder is written into every Description cell
const DescriptionPlaceholder = " "

// Suffix returns the last n characters of s, or s itself when it is shorter
func Suffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// MacSuffix keeps the trailing 4 characters of a MAC address
func MacSuffix(raw string) string {
	return Suffix(raw, 4)
}

// BridgeDigit keeps the trailing character of a bridge designator
func BridgeDigit(raw string) string {
	return Suffix(raw, 1)
}

// FilterPartner keeps the tech rows whose Partner equals partner exactly
func FilterPartner(rows []TechRecord, partner string) []TechRecord {
	kept := make([]TechRecord, 0, len(rows))
	for _, r := range rows {
		if r.Partner == partner {
			kept = append(kept, r)
		}
	}
	return kept
}
