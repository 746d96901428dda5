// Package fileutil holds the locking and atomic-write helpers shared by the
// commands that rewrite files in place.
package fileutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("file is locked by another run")

// LockPath returns the lock file used for path. It lives in the temp dir so
// repositories never pick it up.
func LockPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	h := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "internship-engine-"+hex.EncodeToString(h[:8])+".lock")
}

// Lock takes an exclusive advisory lock for path, retrying until ctx is done.
func Lock(ctx context.Context, path string) (unlock func() error, err error) {
	fl := flock.New(LockPath(path))
	ok, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("lock %s: %w", path, ErrLocked)
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: %w", path, ErrLocked)
	}
	return fl.Unlock, nil
}

// WriteAtomic writes b to a temp file next to path and renames it over path.
func WriteAtomic(path string, b []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
