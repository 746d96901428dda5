package config

import "strings"

const (
	EnvNotionDB = "NOTION_DB_ID"
	EnvBackend  = "TRACKER_BACKEND"
	EnvFeedURL  = "LISTINGS_FEED_URL"
)

// OverlayEnv applies environment overrides on top of the file config.
func OverlayEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvNotionDB)); v != "" {
		cfg.Tracker.NotionDatabaseID = v
	}
	if v := strings.TrimSpace(getenv(EnvBackend)); v != "" {
		cfg.Tracker.Backend = v
	}
	if v := strings.TrimSpace(getenv(EnvFeedURL)); v != "" {
		cfg.Listings.FeedURL = v
	}
}
