package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"internship-engine/internal/config"
)

const EnvConfig = "LISTINGS_CONFIG"

var (
	cfgPath string
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "engine",
		Short: "Internship listings pipeline",
		Long: `engine fetches the internship listings feed, renders the categorized
README tables, and records applications in a Notion or SQLite tracker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default $LISTINGS_CONFIG or config.yml)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(appliedCmd)
	rootCmd.AddCommand(databasesCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return config.DefaultPath
}

// loadConfig loads, overlays the environment, and validates the config.
// Warnings are logged; errors fail the command.
func loadConfig() (config.Config, error) {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	config.OverlayEnv(&cfg, os.Getenv)

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		return cfg, config.Validate(cfg)
	}
	return cfg, nil
}
