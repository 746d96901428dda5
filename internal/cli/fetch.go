package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"internship-engine/internal/config"
	"internship-engine/internal/feed"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the listings feed and write a deduplicated snapshot",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringP("out", "o", "", "snapshot path (default listings.snapshot_path)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Listings.SnapshotPath = out
	}

	n, err := fetchSnapshot(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	fmt.Println("total:", n)
	return nil
}

func fetchSnapshot(ctx context.Context, cfg config.Config) (int, error) {
	rows, err := feed.New(cfg.Listings.FeedURL, cfg.FetchTimeout()).Fetch(ctx)
	if err != nil {
		return 0, err
	}
	records := feed.Dedupe(rows)
	if err := feed.WriteSnapshot(ctx, cfg.Listings.SnapshotPath, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
