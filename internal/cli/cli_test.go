package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-engine/internal/actions"
	"internship-engine/internal/config"
	"internship-engine/internal/feed"
	"internship-engine/internal/tracker"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

const template = "# Internships\n\n### Browse 0 Internship Roles by Category\n\n---\n\n<!-- TABLE_START -->\n<!-- TABLE_END -->\n"

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Listings.Path = filepath.Join(dir, "listings.json")
	cfg.Listings.SnapshotPath = filepath.Join(dir, "snapshot.json")
	cfg.Render.ReadmePath = filepath.Join(dir, "README.md")
	cfg.Render.OffSeasonPath = filepath.Join(dir, "README-Off-Season.md")
	cfg.Tracker.SQLitePath = filepath.Join(dir, "tracker.db")
	t.Setenv(actions.EnvOutput, filepath.Join(dir, "github_output"))
	return cfg
}

func listingJSON(id, company, title string, terms []string, posted time.Time) map[string]any {
	return map[string]any{
		"id":           id,
		"source":       "Simplify",
		"company_name": company,
		"company_url":  "https://simplify.jobs/c/" + company,
		"title":        title,
		"url":          "https://jobs.example/" + id,
		"locations":    []string{"Remote"},
		"terms":        terms,
		"sponsorship":  "Other",
		"active":       true,
		"is_visible":   true,
		"date_posted":  posted.Unix(),
		"date_updated": posted.Unix(),
	}
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
}

func writeTemplates(t *testing.T, cfg config.Config) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.Render.ReadmePath, []byte(template), 0o644))
	require.NoError(t, os.WriteFile(cfg.Render.OffSeasonPath, []byte(template), 0o644))
}

func TestRenderDocuments(t *testing.T) {
	cfg := testConfig(t)
	writeTemplates(t, cfg)
	writeJSON(t, cfg.Listings.Path, []map[string]any{
		listingJSON("1", "Acme", "Software Engineer Intern", []string{"Summer 2026"}, fixedNow.AddDate(0, 0, -2)),
		listingJSON("2", "Beta", "Quant Trader Intern", []string{"Fall 2026"}, fixedNow.AddDate(0, 0, -4)),
		listingJSON("3", "Jerry", "Software Engineer Intern", []string{"Summer 2026"}, fixedNow.AddDate(0, 0, -1)),
	})

	require.NoError(t, renderDocuments(context.Background(), cfg, clock))

	summer, err := os.ReadFile(cfg.Render.ReadmePath)
	require.NoError(t, err)
	assert.Contains(t, string(summer), "### Browse 1 Internship Roles by Category")
	assert.Contains(t, string(summer), "<strong>Acme</strong>")
	assert.NotContains(t, string(summer), "Beta")
	assert.NotContains(t, string(summer), "<strong>Jerry</strong>", "blocked company")

	off, err := os.ReadFile(cfg.Render.OffSeasonPath)
	require.NoError(t, err)
	assert.Contains(t, string(off), "## 📈 Quantitative Finance Internship Roles")
	assert.Contains(t, string(off), "<th>Terms</th>")
	assert.Contains(t, string(off), "README-Off-Season.md#-quantitative-finance-internship-roles")

	out, err := os.ReadFile(os.Getenv(actions.EnvOutput))
	require.NoError(t, err)
	assert.Equal(t, "summer_rows=1\noff_season_rows=1\n", string(out))
}

func TestRenderDocuments_SchemaFailure(t *testing.T) {
	cfg := testConfig(t)
	writeTemplates(t, cfg)
	bad := listingJSON("x1", "Acme", "Software Engineer Intern", []string{"Summer 2026"}, fixedNow)
	delete(bad, "sponsorship")
	writeJSON(t, cfg.Listings.Path, []map[string]any{bad})

	err := renderDocuments(context.Background(), cfg, clock)

	require.ErrorIs(t, err, actions.ErrFailed)
	out, rerr := os.ReadFile(os.Getenv(actions.EnvOutput))
	require.NoError(t, rerr)
	assert.Equal(t, "error_message=ERROR: Schema check FAILED - object with id x1 does not contain prop 'sponsorship'\n", string(out))

	readme, rerr := os.ReadFile(cfg.Render.ReadmePath)
	require.NoError(t, rerr)
	assert.Equal(t, template, string(readme), "documents are untouched")
}

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"company_name":"A","title":"SWE","url":"https://a/1"},{"company_name":"A","title":"SWE","url":"https://a/1"},{"company_name":"B","title":"PM","url":""}]`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.Listings.FeedURL = srv.URL

	n, err := fetchSnapshot(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, err := os.ReadFile(cfg.Listings.SnapshotPath)
	require.NoError(t, err)
	var recs []feed.Record
	require.NoError(t, json.Unmarshal(b, &recs))
	assert.Equal(t, []feed.Record{{CompanyName: "A", Title: "SWE", URL: "https://a/1", Active: true}}, recs)
}

func TestSyncJob_SQLite(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tracker.Backend = "sqlite"
	ctx := context.Background()
	job := tracker.Job{Company: "Acme", URL: "jobs.example/1", Role: "SWE Intern"}

	action, id, err := syncJob(ctx, cfg, job, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, tracker.ActionCreated, action)

	action, id2, err := syncJob(ctx, cfg, job, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, tracker.ActionUpdated, action)
	assert.Equal(t, id, id2)

	var buf bytes.Buffer
	require.NoError(t, listApplied(ctx, cfg, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "2026-06-01")
	assert.Contains(t, lines[1], "https://jobs.example/1")
}

func TestOpenTracker_Errors(t *testing.T) {
	cfg := testConfig(t)

	cfg.Tracker.Backend = "notion"
	cfg.Tracker.NotionDatabaseID = ""
	_, _, err := openTracker(cfg)
	assert.ErrorContains(t, err, "database id")

	cfg.Tracker.Backend = "airtable"
	_, _, err = openTracker(cfg)
	assert.ErrorContains(t, err, "unknown tracker backend")
}

func TestLoadConfig_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	require.NoError(t, os.WriteFile(path, []byte("season:\n  year: 2027\n"), 0o644))
	t.Setenv(EnvConfig, path)
	t.Setenv(config.EnvNotionDB, "db-9")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2027, cfg.Season.Year)
	assert.Equal(t, "db-9", cfg.Tracker.NotionDatabaseID)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	require.NoError(t, os.WriteFile(path, []byte("tracker:\n  backend: airtable\n"), 0o644))
	t.Setenv(EnvConfig, path)

	_, err := loadConfig()
	assert.ErrorContains(t, err, "tracker.backend")
}
