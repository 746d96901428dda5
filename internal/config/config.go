// engine/internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yml"

type Config struct {
	Listings struct {
		Path                string `yaml:"path"`
		FeedURL             string `yaml:"feed_url"`
		SnapshotPath        string `yaml:"snapshot_path"`
		FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	} `yaml:"listings"`

	Season struct {
		Year             int      `yaml:"year"`
		EarliestDate     int64    `yaml:"earliest_date"`
		BlockedCompanies []string `yaml:"blocked_companies"`
		Timezone         string   `yaml:"timezone"`
	} `yaml:"season"`

	Staleness struct {
		Provider       string  `yaml:"provider"`
		ProviderMonths float64 `yaml:"provider_months"`
		OtherMonths    float64 `yaml:"other_months"`
	} `yaml:"staleness"`

	Render struct {
		ReadmePath    string   `yaml:"readme_path"`
		OffSeasonPath string   `yaml:"off_season_path"`
		RepoBlobURL   string   `yaml:"repo_blob_url"`
		FullListURL   string   `yaml:"full_list_url"`
		MoreJobsURL   string   `yaml:"more_jobs_url"`
		TopAnchor     string   `yaml:"top_anchor"`
		SizeLimit     int      `yaml:"size_limit"`
		SizeBuffer    int      `yaml:"size_buffer"`
		TopTier       []string `yaml:"top_tier"`
	} `yaml:"render"`

	Tracker struct {
		Backend           string  `yaml:"backend"` // notion | sqlite
		NotionDatabaseID  string  `yaml:"notion_database_id"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		KeyringAccount    string  `yaml:"keyring_account"`
		SQLitePath        string  `yaml:"sqlite_path"`
	} `yaml:"tracker"`
}

func Default() Config {
	var c Config

	c.Listings.Path = ".github/scripts/listings.json"
	c.Listings.FeedURL = "https://raw.githubusercontent.com/SimplifyJobs/Summer2026-Internships/dev/.github/scripts/listings.json"
	c.Listings.SnapshotPath = "listings.json"
	c.Listings.FetchTimeoutSeconds = 30

	c.Season.Year = 2026
	c.Season.EarliestDate = 1748761200
	c.Season.BlockedCompanies = []string{"https://simplify.jobs/c/Jerry"}
	c.Season.Timezone = "America/Los_Angeles"

	c.Staleness.Provider = "Simplify"
	c.Staleness.ProviderMonths = 2
	c.Staleness.OtherMonths = 2

	c.Render.ReadmePath = "README.md"
	c.Render.OffSeasonPath = "README-Off-Season.md"
	c.Render.RepoBlobURL = "https://github.com/SimplifyJobs/Summer2026-Internships/blob/dev"
	c.Render.FullListURL = "https://github.com/SimplifyJobs/Summer2026-Internships/blob/dev/README.md#-see-full-list"
	c.Render.MoreJobsURL = "https://simplify.jobs/jobs?category=Software%20Engineering%3BHardware%20Engineering%3BQuantitative%20Finance%3BProduct%20Management%3BData%20%26%20Analytics%3BIT%20%26%20Security&jobId=2ac81173-86b5-4dbd-a7a9-260847c259cc&jobType=Internship?utm_source=GHList"
	c.Render.TopAnchor = "#summer-2026-tech-internships-by-pitt-csc--simplify"
	c.Render.SizeLimit = 512000
	c.Render.SizeBuffer = 5120

	c.Tracker.Backend = "notion"
	c.Tracker.RequestsPerSecond = 3
	c.Tracker.SQLitePath = "data/tracker.db"

	return c
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Location is the zone used for day arithmetic.
func (c Config) Location() (*time.Location, error) {
	if c.Season.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Season.Timezone)
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Listings.FetchTimeoutSeconds) * time.Second
}
