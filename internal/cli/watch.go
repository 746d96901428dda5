package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"internship-engine/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the READMEs on an interval until interrupted",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("every", time.Hour, "interval between renders")
	watchCmd.Flags().Bool("fetch", false, "refresh the feed snapshot before each render")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	every, _ := cmd.Flags().GetDuration("every")
	if every <= 0 {
		return fmt.Errorf("--every must be > 0")
	}
	withFetch, _ := cmd.Flags().GetBool("fetch")
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Every(ctx, every, "watch", func(ctx context.Context) error {
		if withFetch {
			if _, err := fetchSnapshot(ctx, cfg); err != nil {
				return err
			}
		}
		return renderDocuments(ctx, cfg, func() time.Time { return time.Now().In(loc) })
	})
	return nil
}
