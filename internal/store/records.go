package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"internship-engine/internal/tracker"
)

var ErrNotFound = errors.New("record not found")

// Record is a stored application.
type Record struct {
	ID string
	tracker.Properties
	UpdatedAt time.Time
}

// Records implements tracker.Store over the tracker_records table. Links are
// stored normalized.
type Records struct {
	db  *sql.DB
	now func() time.Time
}

var _ tracker.Store = (*Records)(nil)

func NewRecords(d *DB) *Records {
	return &Records{db: d.Pool, now: time.Now}
}

func (r *Records) FindByLink(ctx context.Context, link string) (string, bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM tracker_records WHERE link = ? LIMIT 1;`,
		tracker.NormalizeURL(link),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (r *Records) Create(ctx context.Context, p tracker.Properties) (string, error) {
	id := uuid.NewString()
	ts := r.now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
INSERT INTO tracker_records(id, name, link, role, date_applied, status, created_at, updated_at)
VALUES(?,?,?,?,?,?,?,?);`,
		id, p.Name, tracker.NormalizeURL(p.Link), p.Role, p.DateApplied, p.Status, ts, ts)
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

func (r *Records) Update(ctx context.Context, id string, p tracker.Properties) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE tracker_records
SET name = ?, link = ?, role = ?, date_applied = ?, status = ?, updated_at = ?
WHERE id = ?;`,
		p.Name, tracker.NormalizeURL(p.Link), p.Role, p.DateApplied, p.Status,
		r.now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all records, most recently applied first.
func (r *Records) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, link, role, date_applied, status, updated_at
FROM tracker_records
ORDER BY date_applied DESC, updated_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var updated string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Link, &rec.Role, &rec.DateApplied, &rec.Status, &updated); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, updated)
		if err != nil {
			return nil, fmt.Errorf("record %s updated_at: %w", rec.ID, err)
		}
		rec.UpdatedAt = ts
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
