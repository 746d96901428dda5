// Package actions reports results to a GitHub Actions runner through the
// GITHUB_OUTPUT file.
package actions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

const EnvOutput = "GITHUB_OUTPUT"

var ErrFailed = errors.New("run failed")

// FailError carries the message already reported as error_message.
type FailError struct {
	Why string
}

func (e *FailError) Error() string { return e.Why }

func (e *FailError) Unwrap() error { return ErrFailed }

// SetOutput appends key=value to the file named by GITHUB_OUTPUT. Without
// that variable it does nothing. Multi-line values use the runner's
// delimiter syntax.
func SetOutput(key, value string) error {
	path := os.Getenv(EnvOutput)
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", EnvOutput, err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatOutput(key, value)); err != nil {
		return fmt.Errorf("write %s: %w", EnvOutput, err)
	}
	return nil
}

func formatOutput(key, value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return key + "=" + value + "\n"
	}
	delim := "ghadelimiter_" + uuid.NewString()
	return key + "<<" + delim + "\n" + value + "\n" + delim + "\n"
}

// Fail records why as error_message and returns an error the caller should
// turn into exit status 1.
func Fail(why string) error {
	if err := SetOutput("error_message", why); err != nil {
		return fmt.Errorf("%s (%v): %w", why, err, ErrFailed)
	}
	return &FailError{Why: why}
}
