package feed

import "strings"

type Record struct {
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	DatePosted  int64  `json:"date_posted"`
	Active      bool   `json:"active"`
}

// Dedupe keeps the first row for each trimmed URL and drops rows without one.
// A row with no active field counts as active.
func Dedupe(rows []Row) []Record {
	seen := make(map[string]bool, len(rows))
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		url := strings.TrimSpace(r.URL)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true

		active := true
		if r.Active != nil {
			active = *r.Active
		}
		out = append(out, Record{
			CompanyName: r.CompanyName,
			Title:       r.Title,
			URL:         url,
			DatePosted:  r.DatePosted,
			Active:      active,
		})
	}
	return out
}
