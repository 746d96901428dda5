package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"internship-engine/internal/fileutil"
)

// WriteSnapshot writes records as an indented JSON array, replacing path
// atomically while holding its lock.
func WriteSnapshot(ctx context.Context, path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	unlock, err := fileutil.Lock(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	if err := fileutil.WriteAtomic(path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
