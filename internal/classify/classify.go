// Package classify assigns listings to a display category from their title.
package classify

import (
	"strings"

	"internship-engine/internal/domain"
)

type Classifier struct {
	Rules []Rule
}

func New() Classifier {
	return Classifier{Rules: DefaultRules}
}

// Classify ignores any category already present on the listing; only the
// title is trusted.
func (c Classifier) Classify(title string) (domain.Category, bool) {
	t := strings.ToLower(title)
	for _, r := range c.Rules {
		if !r.Match(t) {
			continue
		}
		if r.Exclude {
			return "", false
		}
		return r.Category, true
	}
	return "", false
}

// Categorize returns copies of the classified listings with Category set,
// plus the number of listings that fit no category.
func (c Classifier) Categorize(listings []domain.Listing) (kept []domain.Listing, excluded int) {
	kept = make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		cat, ok := c.Classify(l.Title)
		if !ok {
			excluded++
			continue
		}
		l.Category = cat
		kept = append(kept, l)
	}
	return kept, excluded
}
