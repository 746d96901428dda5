package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"internship-engine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage engine configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration if none exists",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and report problems",
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	created, err := config.EnsureFile(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("Wrote", path)
	} else {
		fmt.Println(path, "already exists")
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.OverlayEnv(&cfg, os.Getenv)

	_, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		fmt.Println("warning:", w)
	}
	for _, e := range res.Errors {
		fmt.Println("error:", e)
	}
	if !res.OK() {
		return fmt.Errorf("%s: %d error(s)", path, len(res.Errors))
	}
	fmt.Println(path, "is valid")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
