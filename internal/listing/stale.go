package listing

import (
	"time"

	"internship-engine/internal/domain"
)

type Thresholds struct {
	Provider       string
	ProviderMonths float64
	OtherMonths    float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Provider: "Simplify", ProviderMonths: 2, OtherMonths: 2}
}

// MarkStale deactivates listings older than their source's threshold. It only
// ever flips Active from true to false.
func MarkStale(listings []domain.Listing, now time.Time, th Thresholds) {
	for i := range listings {
		months := float64(DaysSince(listings[i].DatePosted, now)) / 30
		limit := th.OtherMonths
		if listings[i].Source == th.Provider {
			limit = th.ProviderMonths
		}
		if months >= limit {
			listings[i].Active = false
		}
	}
}
