package actions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv(EnvOutput, path)
	return path
}

func TestSetOutput_Appends(t *testing.T) {
	path := outputFile(t)

	require.NoError(t, SetOutput("commit_message", "updated listings"))
	require.NoError(t, SetOutput("count", "3"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "commit_message=updated listings\ncount=3\n", string(b))
}

func TestSetOutput_NoEnvIsNoop(t *testing.T) {
	t.Setenv(EnvOutput, "")
	assert.NoError(t, SetOutput("k", "v"))
}

func TestSetOutput_Multiline(t *testing.T) {
	path := outputFile(t)

	require.NoError(t, SetOutput("body", "line one\nline two"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "body<<ghadelimiter_"))
	assert.Equal(t, "line one", lines[1])
	assert.Equal(t, "line two", lines[2])
	assert.Equal(t, strings.TrimPrefix(lines[0], "body<<"), lines[3])
}

func TestFail(t *testing.T) {
	path := outputFile(t)

	err := Fail("schema check failed")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailed))
	var fe *FailError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "schema check failed", fe.Why)

	b, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "error_message=schema check failed\n", string(b))
}
