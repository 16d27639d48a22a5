// Package holiday fetches Korean public holidays from the data.go.kr
// special-day API, with a pre-generated yearly file as an offline source.
package holiday

import (
	"sort"
	"strings"
)

// Holiday is one public holiday entry, substitute days included.
type Holiday struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Name       string `json:"name"`
	Substitute bool   `json:"substitute"`
}

// Normalize de-duplicates entries by (date, name) and sorts by date.
// The upstream API occasionally repeats rows across pages.
func Normalize(list []Holiday) []Holiday {
	seen := make(map[string]bool, len(list))
	out := make([]Holiday, 0, len(list))
	for _, h := range list {
		key := h.Date + "|" + h.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// isSubstitute reports whether a holiday name marks a substitute day.
// The API flags them only through the name.
func isSubstitute(name string) bool {
	return strings.Contains(name, "대체")
}
