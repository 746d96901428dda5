package listing

import (
	"fmt"
	"strings"

	"internship-engine/internal/domain"
)

var offSeasons = []string{"Fall", "Winter", "Spring"}

// FilterSeason keeps visible listings for the summer of year posted after
// earliest, skipping companies whose URL contains a blocked URL.
func FilterSeason(listings []domain.Listing, year int, earliest int64, blocked []string) []domain.Listing {
	season := fmt.Sprintf("Summer %d", year)

	blockedLower := make([]string, 0, len(blocked))
	for _, b := range blocked {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			blockedLower = append(blockedLower, b)
		}
	}

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if !l.IsVisible || !anyTermContains(l.Terms, season) || l.DatePosted <= earliest {
			continue
		}
		if isBlocked(l.CompanyURL, blockedLower) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterOffSeason keeps visible Fall/Winter/Spring listings. Any Summer term
// excludes the listing even if an off-season term is also present.
func FilterOffSeason(listings []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if !l.IsVisible {
			continue
		}
		off := false
		for _, s := range offSeasons {
			if anyTermContains(l.Terms, s) {
				off = true
				break
			}
		}
		if off && !anyTermContains(l.Terms, "Summer") {
			out = append(out, l)
		}
	}
	return out
}

func FilterActive(listings []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

func anyTermContains(terms []string, s string) bool {
	for _, t := range terms {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

func isBlocked(companyURL string, blockedLower []string) bool {
	u := strings.ToLower(companyURL)
	for _, b := range blockedLower {
		if strings.Contains(u, b) {
			return true
		}
	}
	return false
}
