package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"internship-engine/internal/secrets"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the Notion token stored in the OS keyring",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a Notion integration token (read from stdin)",
	RunE:  runTokenSet,
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored Notion token",
	RunE:  runTokenDelete,
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, "Notion token: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return errors.New("no token on stdin")
	}

	account := secrets.NotionKeyringAccount(cfg)
	if err := secrets.SetNotionToken(account, strings.TrimSpace(line)); err != nil {
		return err
	}
	fmt.Println("Stored token for", account)
	return nil
}

func runTokenDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	account := secrets.NotionKeyringAccount(cfg)
	if err := secrets.DeleteNotionToken(account); err != nil {
		return err
	}
	fmt.Println("Deleted token for", account)
	return nil
}
