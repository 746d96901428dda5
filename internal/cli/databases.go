package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List the Notion databases shared with the integration",
	RunE:  runDatabases,
}

func runDatabases(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := notionClient(cfg)
	if err != nil {
		return err
	}

	dbs, err := c.ListDatabases(cmd.Context())
	if err != nil {
		return fmt.Errorf("search databases: %w", err)
	}
	for _, db := range dbs {
		title := db.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Println("Title:", title)
		fmt.Println("Database ID:", db.ID)
		fmt.Println()
	}
	return nil
}
