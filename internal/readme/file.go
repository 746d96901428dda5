package readme

import (
	"context"
	"fmt"
	"log"
	"os"

	"internship-engine/internal/domain"
	"internship-engine/internal/fileutil"
)

// ComposeFile rewrites the document at path in place while holding its lock.
func (c *Composer) ComposeFile(ctx context.Context, path string, listings []domain.Listing) (Stats, error) {
	unlock, err := fileutil.Lock(ctx, path)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = unlock() }()

	b, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("read template: %w", err)
	}
	out := c.Compose(listings, string(b))

	// inspected before writing so an error never follows a completed write
	st, err := Inspect(out)
	if err != nil {
		return Stats{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	if err := fileutil.WriteAtomic(path, []byte(out), 0o644); err != nil {
		return Stats{}, fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("[readme] wrote file=%s bytes=%d tables=%d rows=%d warning=%t", path, st.Bytes, st.Tables, st.Rows, st.Warning)
	return st, nil
}
