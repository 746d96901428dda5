package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"internship-engine/internal/config"
	"internship-engine/internal/secrets"
	"internship-engine/internal/store"
	"internship-engine/internal/tracker"
	"internship-engine/internal/tracker/notion"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Add or update an application in the tracker, keyed by job URL",
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().String("company", "", "company name, shown as the record title (required)")
	syncCmd.Flags().String("url", "", "job URL, linked from the title (required)")
	syncCmd.Flags().String("role", "", "role description")
	syncCmd.Flags().String("backend", "", "notion or sqlite (default tracker.backend)")
	_ = syncCmd.MarkFlagRequired("company")
	_ = syncCmd.MarkFlagRequired("url")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		cfg.Tracker.Backend = b
	}

	var job tracker.Job
	job.Company, _ = cmd.Flags().GetString("company")
	job.URL, _ = cmd.Flags().GetString("url")
	job.Role, _ = cmd.Flags().GetString("role")

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	action, id, err := syncJob(cmd.Context(), cfg, job, time.Now().In(loc))
	if err != nil {
		return err
	}
	fmt.Printf("Successfully %s page: %s\n", action, id)
	return nil
}

func syncJob(ctx context.Context, cfg config.Config, job tracker.Job, today time.Time) (string, string, error) {
	s, closeFn, err := openTracker(cfg)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = closeFn() }()
	return tracker.Upsert(ctx, s, job, today)
}

// openTracker returns the configured backend and a func releasing it.
func openTracker(cfg config.Config) (tracker.Store, func() error, error) {
	switch cfg.Tracker.Backend {
	case "sqlite":
		db, err := store.Open(cfg.Tracker.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRecords(db), db.Close, nil
	case "notion":
		if cfg.Tracker.NotionDatabaseID == "" {
			return nil, nil, errors.New("notion database id is not set (tracker.notion_database_id or NOTION_DB_ID)")
		}
		c, err := notionClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return c, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown tracker backend %q", cfg.Tracker.Backend)
	}
}

func notionClient(cfg config.Config) (*notion.Client, error) {
	token, err := secrets.GetNotionToken(secrets.NotionKeyringAccount(cfg))
	if err != nil {
		return nil, err
	}
	return notion.New(token, cfg.Tracker.NotionDatabaseID, notion.Options{
		Timeout:        cfg.FetchTimeout(),
		RequestsPerSec: cfg.Tracker.RequestsPerSecond,
	}), nil
}
