package config

import (
	"fmt"
	"strings"
	"time"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and what is wrong
// with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Season.BlockedCompanies = trimList(out.Season.BlockedCompanies)
	out.Render.TopTier = trimList(out.Render.TopTier)
	out.Render.RepoBlobURL = strings.TrimRight(strings.TrimSpace(out.Render.RepoBlobURL), "/")
	out.Tracker.Backend = strings.ToLower(strings.TrimSpace(out.Tracker.Backend))
	out.Tracker.NotionDatabaseID = strings.TrimSpace(out.Tracker.NotionDatabaseID)

	// ---- Validation rules ----

	if strings.TrimSpace(out.Listings.Path) == "" {
		res.addErr("listings.path is required")
	}
	if out.Listings.FetchTimeoutSeconds <= 0 {
		res.addErr("listings.fetch_timeout_seconds must be > 0")
	}
	if !strings.HasPrefix(out.Listings.FeedURL, "http://") && !strings.HasPrefix(out.Listings.FeedURL, "https://") {
		res.addErr("listings.feed_url must be an http(s) URL")
	}

	if out.Season.Year < 2000 || out.Season.Year > 2100 {
		res.addErr("season.year must be 2000..2100")
	}
	if out.Season.EarliestDate < 0 {
		res.addErr("season.earliest_date must be >= 0")
	}
	if _, err := time.LoadLocation(out.Season.Timezone); err != nil {
		res.addErr("season.timezone %q: %v", out.Season.Timezone, err)
	}

	if out.Staleness.ProviderMonths <= 0 || out.Staleness.OtherMonths <= 0 {
		res.addErr("staleness thresholds must be > 0")
	}
	if strings.TrimSpace(out.Staleness.Provider) == "" {
		res.addWarn("staleness.provider is empty; every listing uses other_months.")
	}

	if out.Render.ReadmePath == "" || out.Render.OffSeasonPath == "" {
		res.addErr("render.readme_path and render.off_season_path are required")
	} else if out.Render.ReadmePath == out.Render.OffSeasonPath {
		res.addErr("render.readme_path and render.off_season_path must differ")
	}
	if out.Render.SizeLimit <= 0 {
		res.addErr("render.size_limit must be > 0")
	}
	if out.Render.SizeBuffer < 0 || 2*out.Render.SizeBuffer >= out.Render.SizeLimit {
		res.addErr("render.size_buffer must be >= 0 and less than half of size_limit")
	}
	if out.Render.RepoBlobURL == "" {
		res.addWarn("render.repo_blob_url is empty; summary links will be relative.")
	}

	switch out.Tracker.Backend {
	case "notion":
		if out.Tracker.NotionDatabaseID == "" {
			res.addWarn("tracker.notion_database_id is empty; set it or NOTION_DB_ID before syncing.")
		}
		if out.Tracker.RequestsPerSecond <= 0 {
			res.addErr("tracker.requests_per_second must be > 0")
		} else if out.Tracker.RequestsPerSecond > 3 {
			res.addWarn("tracker.requests_per_second is %.1f; Notion averages 3 requests per second.", out.Tracker.RequestsPerSecond)
		}
	case "sqlite":
		if strings.TrimSpace(out.Tracker.SQLitePath) == "" {
			res.addErr("tracker.sqlite_path is required when tracker.backend=sqlite")
		}
	default:
		res.addErr("tracker.backend must be notion or sqlite, got %q", out.Tracker.Backend)
	}

	return out, res
}
