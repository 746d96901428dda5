package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internship-engine/internal/domain"
)

func ids(listings []domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterSeason(t *testing.T) {
	const earliest = int64(1000)
	blocked := []string{"https://simplify.jobs/c/Jerry"}

	in := []domain.Listing{
		{ID: "ok", IsVisible: true, Terms: []string{"Summer 2026"}, DatePosted: 2000},
		{ID: "hidden", IsVisible: false, Terms: []string{"Summer 2026"}, DatePosted: 2000},
		{ID: "wrong-year", IsVisible: true, Terms: []string{"Summer 2025"}, DatePosted: 2000},
		{ID: "too-old", IsVisible: true, Terms: []string{"Summer 2026"}, DatePosted: earliest},
		{ID: "blocked", IsVisible: true, Terms: []string{"Summer 2026"}, DatePosted: 2000, CompanyURL: "https://SIMPLIFY.jobs/c/jerry"},
		{ID: "mixed-terms", IsVisible: true, Terms: []string{"Summer 2026", "Fall 2026"}, DatePosted: 2000},
		{ID: "substring-term", IsVisible: true, Terms: []string{"Summer 2026 (Remote)"}, DatePosted: 2000},
	}

	got := FilterSeason(in, 2026, earliest, blocked)

	assert.Equal(t, []string{"ok", "mixed-terms", "substring-term"}, ids(got))
}

func TestFilterOffSeason(t *testing.T) {
	in := []domain.Listing{
		{ID: "fall", IsVisible: true, Terms: []string{"Fall 2026"}},
		{ID: "winter-spring", IsVisible: true, Terms: []string{"Winter 2027", "Spring 2027"}},
		{ID: "summer-and-fall", IsVisible: true, Terms: []string{"Summer 2026", "Fall 2026"}},
		{ID: "hidden", IsVisible: false, Terms: []string{"Fall 2026"}},
		{ID: "summer", IsVisible: true, Terms: []string{"Summer 2026"}},
		{ID: "no-terms", IsVisible: true},
	}

	got := FilterOffSeason(in)

	assert.Equal(t, []string{"fall", "winter-spring"}, ids(got))
}

func TestFilterActive(t *testing.T) {
	in := []domain.Listing{
		{ID: "a", Active: true},
		{ID: "b", Active: false},
		{ID: "c", Active: true},
	}

	assert.Equal(t, []string{"a", "c"}, ids(FilterActive(in)))
}
