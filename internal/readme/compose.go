// Package readme composes the listing documents: it rewrites the category
// summary, regenerates the table regions of an existing template, and flags
// where GitHub's preview will cut the file off.
package readme

import (
	"fmt"
	"log"
	"strings"
	"time"

	"internship-engine/internal/classify"
	"internship-engine/internal/domain"
	"internship-engine/internal/listing"
	"internship-engine/internal/render"
)

type Composer struct {
	opts       Options
	classifier classify.Classifier
	renderer   *render.Renderer
	now        func() time.Time
}

func NewComposer(opts Options, r *render.Renderer, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	if opts.TopAnchor == "" {
		opts.TopAnchor = TopAnchor
	}
	return &Composer{opts: opts, classifier: classify.New(), renderer: r, now: now}
}

// Compose returns template with its summary and table regions regenerated
// from listings. listings is not modified.
func (c *Composer) Compose(listings []domain.Listing, template string) string {
	kept, dropped := c.classifier.Categorize(listings)
	log.Printf("[readme] file=%s categorized=%d dropped=%d", c.opts.FileName, len(kept), dropped)

	listing.MarkStale(kept, c.now(), c.opts.Thresholds)
	active := listing.FilterActive(kept)

	out := splice(template, c.summary(active), c.sections(kept))
	if c.opts.SizeLimit > 0 {
		out = InsertSizeWarning(out, c.opts.SizeLimit, c.opts.SizeBuffer, c.warning())
	}
	return out
}

func (c *Composer) summary(active []domain.Listing) string {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for _, l := range active {
		counts[l.Category]++
	}

	base := strings.TrimRight(c.opts.RepoBlobURL, "/") + "/" + c.opts.FileName
	links := make([]string, 0, len(domain.Categories))
	for _, info := range domain.Categories {
		links = append(links, fmt.Sprintf("%s **[%s](%s#-%s-internship-roles)** (%d)",
			info.Emoji, info.Name, base, Anchor(string(info.Name)), counts[info.Name]))
	}
	return fmt.Sprintf("### Browse %d Internship Roles by Category\n\n%s\n\n---\n",
		len(active), strings.Join(links, "\n\n"))
}

// Anchor is the heading slug GitHub derives for a category name.
func Anchor(name string) string {
	a := strings.ToLower(name)
	a = strings.ReplaceAll(a, " ", "-")
	a = strings.ReplaceAll(a, ",", "")
	return strings.ReplaceAll(a, "&", "")
}

func (c *Composer) sections(listings []domain.Listing) string {
	var b strings.Builder
	for _, info := range domain.Categories {
		b.WriteString(c.section(info, listings))
	}
	return b.String()
}

func (c *Composer) section(info domain.CategoryInfo, listings []domain.Listing) string {
	var active, inactive []domain.Listing
	for _, l := range listings {
		if l.Category != info.Name {
			continue
		}
		if l.Active {
			active = append(active, l)
		} else {
			inactive = append(inactive, l)
		}
	}
	if len(active)+len(inactive) == 0 {
		return ""
	}
	listing.ByNewest(active)
	listing.ByNewest(inactive)

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n## %s %s Internship Roles\n\n", info.Emoji, info.Name)
	fmt.Fprintf(&b, "[Back to top](%s)\n\n", c.opts.TopAnchor)
	b.WriteString(callouts[info.Name])

	if len(active) > 0 {
		b.WriteString(c.renderer.Table(active, c.opts.ShowTerms))
		b.WriteString("\n\n")
	}
	if len(inactive) > 0 {
		b.WriteString("<details>\n")
		fmt.Fprintf(&b, "<summary>🗃️ Inactive roles (%d)</summary>\n\n", len(inactive))
		b.WriteString(c.renderer.Table(inactive, c.opts.ShowTerms))
		b.WriteString("\n\n</details>\n\n")
	}
	return b.String()
}

var callouts = map[domain.Category]string{
	domain.CategoryData: "> 📄 Here's the [resume template](https://docs.google.com/document/d/1azvJt51U2CbpvyO0ZkICqYFDhzdfGxU_lsPQTGhsn94/edit?usp=sharing) used by Stanford CS and Pitt CSC for internship prep.\n" +
		"\n" +
		"> 🧠 Want to know what keywords your resume is missing for a job? Use the blue Simplify application link to instantly compare your resume to any job description.\n\n",
	domain.CategoryProduct: "> 📅 Curious when Big Tech product internships typically open? Simplify put together an [openings tracker](https://simplify.jobs/top-list/Associate-Product-Manager-Intern?utm_source=GHList&utm_medium=ot) based on historical data for those companies.\n" +
		"\n",
}
