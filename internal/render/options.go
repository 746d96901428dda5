package render

import (
	"strings"
	"time"
)

const (
	ShortApplyButton     = "https://i.imgur.com/fbjwDvo.png"
	SquareProviderButton = "https://i.imgur.com/aVnQdox.png"
	LongApplyButton      = "https://i.imgur.com/6cFAMUo.png"

	ContinuationGlyph = "↳"
	ClosedGlyph       = "🔒"
)

type Options struct {
	// Provider is the source tag whose listings get the second apply button.
	Provider string

	// ProviderJobURL is formatted with the listing id.
	ProviderJobURL string

	ApplyTracking   string
	CompanyTracking string
	TopTier         []string
	Now             func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Provider:        "Simplify",
		ProviderJobURL:  "https://simplify.jobs/p/%s?utm_source=GHList",
		ApplyTracking:   "utm_source=Simplify&ref=Simplify",
		CompanyTracking: "utm_source=GHList&utm_medium=company",
		TopTier:         DefaultTopTier,
		Now:             time.Now,
	}
}

var DefaultTopTier = []string{
	"airbnb", "adobe", "amazon", "amd", "anthropic", "apple", "asana", "atlassian", "bytedance", "cloudflare", "coinbase", "crowdstrike", "databricks", "datadog",
	"doordash", "dropbox", "duolingo", "figma", "google", "ibm", "instacart", "intel", "linkedin", "lyft", "meta", "microsoft",
	"netflix", "notion", "nvidia", "openai", "oracle", "palantir", "paypal", "perplexity", "pinterest", "ramp", "reddit", "rippling", "robinhood", "roblox",
	"salesforce", "samsara", "servicenow", "shopify", "slack", "snap", "snapchat", "spacex", "splunk", "snowflake", "stripe", "square", "tesla", "tinder", "tiktok", "uber",
	"visa", "waymo", "x",
}

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[strings.ToLower(strings.TrimSpace(x))] = struct{}{}
	}
	return m
}
