// Package feed downloads the upstream listings feed and reduces it to a
// deduplicated snapshot.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const DefaultURL = "https://raw.githubusercontent.com/SimplifyJobs/Summer2026-Internships/dev/.github/scripts/listings.json"

// Row is one upstream listing, reduced to the fields the snapshot keeps.
// Active is a pointer so an absent field can be told apart from false.
type Row struct {
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	DatePosted  int64  `json:"date_posted"`
	Active      *bool  `json:"active"`
}

type Client struct {
	url string
	hc  *http.Client
}

func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{url: url, hc: &http.Client{Timeout: timeout}}
}

// Fetch downloads the feed. Any non-2xx status or malformed body is an error;
// there are no retries.
func (c *Client) Fetch(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	req.Header.Set("User-Agent", "internship-engine/1.0")
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("feed status %d", res.StatusCode)
	}

	var rows []Row
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("feed decode: %w", err)
	}
	log.Printf("[feed] fetched url=%s rows=%d", c.url, len(rows))
	return rows, nil
}
