// Package notion is a tracker backend for a Notion database.
package notion

import (
	"net/http"
	"net/url"
	"time"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"
)

const APIVersion = "2022-06-28"

// PropNames are the database columns written by the backend.
type PropNames struct {
	Name        string
	Role        string
	DateApplied string
	Status      string
}

func DefaultPropNames() PropNames {
	return PropNames{Name: "Name", Role: "Role", DateApplied: "Date Applied", Status: "Status"}
}

type Options struct {
	// BaseURL replaces the scheme and host of every API request when set.
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	Burst          int
	Props          PropNames
}

type Client struct {
	api   *notionapi.Client
	dbID  notionapi.DatabaseID
	props PropNames
}

func New(token, databaseID string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 3
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.Props == (PropNames{}) {
		opts.Props = DefaultPropNames()
	}

	rt := &limitedTransport{
		base:    http.DefaultTransport,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSec), opts.Burst),
	}
	if opts.BaseURL != "" {
		if u, err := url.Parse(opts.BaseURL); err == nil {
			rt.host = u
		}
	}

	hc := &http.Client{Timeout: opts.Timeout, Transport: rt}
	return &Client{
		api:   notionapi.NewClient(notionapi.Token(token), notionapi.WithHTTPClient(hc), notionapi.WithVersion(APIVersion)),
		dbID:  notionapi.DatabaseID(databaseID),
		props: opts.Props,
	}
}

// limitedTransport waits on the limiter before every request, retries
// included.
type limitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
	host    *url.URL
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	if t.host != nil {
		req = req.Clone(req.Context())
		req.URL.Scheme = t.host.Scheme
		req.URL.Host = t.host.Host
		req.Host = t.host.Host
	}
	return t.base.RoundTrip(req)
}
