package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"internship-engine/internal/config"
)

const (
	// “Service” groups the app’s secrets in the OS keychain.
	KeyringService = "internship-engine"

	EnvNotionToken = "NOTION_TOKEN"
)

var ErrNoToken = errors.New("notion token not found (set NOTION_TOKEN or run `engine token set`)")

// GetNotionToken checks the environment (including a loaded .env) and then
// the OS keyring.
func GetNotionToken(keyringAccount string) (string, error) {
	if tok := strings.TrimSpace(os.Getenv(EnvNotionToken)); tok != "" {
		return tok, nil
	}

	if strings.TrimSpace(keyringAccount) != "" {
		tok, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(tok) != "" {
			return strings.TrimSpace(tok), nil
		}
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("keyring: %w", err)
		}
	}

	return "", ErrNoToken
}

func SetNotionToken(keyringAccount string, token string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, strings.TrimSpace(token))
}

func DeleteNotionToken(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

// NotionKeyringAccount names the keyring entry for the configured database.
func NotionKeyringAccount(cfg config.Config) string {
	if a := strings.TrimSpace(cfg.Tracker.KeyringAccount); a != "" {
		return a
	}
	return fmt.Sprintf("internship-engine:notion:%s", cfg.Tracker.NotionDatabaseID)
}
