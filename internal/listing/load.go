// Package listing loads, filters, sorts and ages internship listings.
package listing

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"internship-engine/internal/domain"
)

// RequiredProps must be present on every object in the listings file.
var RequiredProps = []string{
	"source", "company_name",
	"id", "title", "active", "date_updated", "is_visible",
	"date_posted", "url", "locations", "company_url", "terms",
	"sponsorship",
}

type SchemaError struct {
	ID   string
	Prop string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ERROR: Schema check FAILED - object with id %s does not contain prop '%s'", e.ID, e.Prop)
}

func LoadFile(path string) ([]domain.Listing, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings: %w", err)
	}
	listings, err := Decode(b)
	if err != nil {
		return nil, err
	}
	log.Printf("[listing] loaded=%d path=%s", len(listings), path)
	return listings, nil
}

// Decode checks the schema of every object before decoding any of them, so a
// missing property is reported even when the rest of the file is valid.
func Decode(b []byte) ([]domain.Listing, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse listings: %w", err)
	}
	if err := CheckSchema(raw); err != nil {
		return nil, err
	}

	var listings []domain.Listing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return listings, nil
}

func CheckSchema(objs []map[string]json.RawMessage) error {
	for _, obj := range objs {
		for _, prop := range RequiredProps {
			if _, ok := obj[prop]; !ok {
				return &SchemaError{ID: rawID(obj), Prop: prop}
			}
		}
	}
	return nil
}

func rawID(obj map[string]json.RawMessage) string {
	v, ok := obj["id"]
	if !ok {
		return "<missing>"
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
