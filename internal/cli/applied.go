package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"internship-engine/internal/config"
	"internship-engine/internal/store"
)

var appliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "List applications recorded in the local SQLite tracker",
	RunE:  runApplied,
}

func runApplied(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return listApplied(cmd.Context(), cfg, os.Stdout)
}

func listApplied(ctx context.Context, cfg config.Config, w io.Writer) error {
	db, err := store.Open(cfg.Tracker.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := store.NewRecords(db).List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintln(w, "No applications recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTATUS\tCOMPANY\tROLE\tURL")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.DateApplied, r.Status, r.Name, r.Role, r.Link)
	}
	return tw.Flush()
}
