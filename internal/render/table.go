// Package render builds the HTML listing tables embedded in the README.
// Raw HTML is used instead of markdown tables so that the collapsible
// location cells render consistently.
package render

import (
	"fmt"
	"strings"
	"time"

	"internship-engine/internal/domain"
	"internship-engine/internal/listing"
)

type Renderer struct {
	opts    Options
	topTier map[string]struct{}
}

func New(opts Options) *Renderer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{opts: opts, topTier: toSet(opts.TopTier)}
}

func Headers(showTerms bool) []string {
	if showTerms {
		return []string{"Company", "Role", "Location", "Terms", "Application", "Age"}
	}
	return []string{"Company", "Role", "Location", "Application", "Age"}
}

// TableHead opens a table up to and including <tbody>.
func TableHead(showTerms bool) string {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>\n")
	for _, h := range Headers(showTerms) {
		fmt.Fprintf(&b, "<th>%s</th>\n", h)
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	return b.String()
}

// Table renders listings in the given order. A row whose company and age
// both match the previous anchor row shows the continuation glyph instead of
// the company cell.
func (r *Renderer) Table(listings []domain.Listing, showTerms bool) string {
	var b strings.Builder
	b.WriteString(TableHead(showTerms))

	var (
		prevCompany string
		prevDays    int
		havePrev    bool
	)
	for _, l := range listings {
		company := r.companyCell(l)

		days := listing.DaysSince(l.DatePosted, r.opts.Now())
		if days < 0 {
			days = 0
		}
		if havePrev && prevCompany == l.CompanyName && prevDays == days {
			company = ContinuationGlyph
		} else {
			prevCompany, prevDays, havePrev = l.CompanyName, days, true
		}

		b.WriteString("<tr>\n")
		fmt.Fprintf(&b, "<td>%s</td>\n", company)
		fmt.Fprintf(&b, "<td>%s</td>\n", roleCell(l))
		fmt.Fprintf(&b, "<td>%s</td>\n", locationCell(l.Locations))
		if showTerms {
			fmt.Fprintf(&b, "<td>%s</td>\n", strings.Join(l.Terms, ", "))
		}
		fmt.Fprintf(&b, "<td>%s</td>\n", r.applyCell(l))
		fmt.Fprintf(&b, "<td>%s</td>\n", Age(days))
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}
