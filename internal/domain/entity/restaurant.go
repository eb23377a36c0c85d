package entity

import "strings"

// Restaurant is a catalog entry. The list fields keep their original order.
type Restaurant struct {
	ID             uint
	Key            string // Short unique key, e.g. "lp01".
	Name           string
	Cuisine        string
	Price          PriceTier
	Rating         float64 // 0.0 to 5.0.
	DistanceKm     float64
	Tags           []string
	Badges         []string
	MenuHighlights []string
}

// SplitList turns a comma-delimited string into a list,
// trimming whitespace and dropping empty segments.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
