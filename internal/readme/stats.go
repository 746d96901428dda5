package readme

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Stats struct {
	Bytes    int
	Tables   int
	Rows     int
	Inactive int
	Warning  bool
}

// Inspect parses the HTML embedded in a composed document and counts what
// was rendered.
func Inspect(doc string) (Stats, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Stats{}, fmt.Errorf("parse document: %w", err)
	}
	return Stats{
		Bytes:    len(doc),
		Tables:   d.Find("table").Length(),
		Rows:     d.Find("tbody > tr").Length(),
		Inactive: d.Find("details tbody > tr").Length(),
		Warning:  d.Find("#github-cutoff-warning").Length() > 0,
	}, nil
}
