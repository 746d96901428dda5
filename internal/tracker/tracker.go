// Package tracker records job applications in an external store, keyed by the
// posting URL linked from the record's name.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"

	StatusApplied = "Applied"
)

var ErrMissingField = errors.New("missing field")

type Job struct {
	Company string
	URL     string
	Role    string
}

// Properties is what gets written for a job. Name is shown as the record
// title and links to Link.
type Properties struct {
	Name        string
	Link        string
	Role        string
	DateApplied string
	Status      string
}

// Store is a record backend. FindByLink compares normalized links.
type Store interface {
	FindByLink(ctx context.Context, link string) (id string, found bool, err error)
	Create(ctx context.Context, p Properties) (id string, err error)
	Update(ctx context.Context, id string, p Properties) error
}

// NormalizeURL trims u and assumes https when no http(s) scheme is given.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

func PropertiesFor(j Job, today time.Time) Properties {
	return Properties{
		Name:        strings.TrimSpace(j.Company),
		Link:        NormalizeURL(j.URL),
		Role:        strings.TrimSpace(j.Role),
		DateApplied: today.Format(time.DateOnly),
		Status:      StatusApplied,
	}
}

// Upsert updates the record linked to j.URL, or creates one when none
// exists. It returns ActionCreated or ActionUpdated with the record id.
func Upsert(ctx context.Context, s Store, j Job, today time.Time) (action, id string, err error) {
	p := PropertiesFor(j, today)
	switch {
	case p.Name == "":
		return "", "", fmt.Errorf("company: %w", ErrMissingField)
	case p.Link == "":
		return "", "", fmt.Errorf("url: %w", ErrMissingField)
	}

	id, found, err := s.FindByLink(ctx, p.Link)
	if err != nil {
		return "", "", fmt.Errorf("find record: %w", err)
	}
	if found {
		if err := s.Update(ctx, id, p); err != nil {
			return "", "", fmt.Errorf("update record %s: %w", id, err)
		}
		return ActionUpdated, id, nil
	}

	id, err = s.Create(ctx, p)
	if err != nil {
		return "", "", fmt.Errorf("create record: %w", err)
	}
	return ActionCreated, id, nil
}
