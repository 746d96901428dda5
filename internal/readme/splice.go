package readme

import "strings"

type spliceState int

const (
	passthrough spliceState = iota
	inSummary
	inTable
)

func isSummaryStart(line string) bool { return strings.HasPrefix(line, "### Browse") }
func isSummaryEnd(line string) bool   { return strings.HasPrefix(line, "---") }
func isTableStart(line string) bool   { return strings.Contains(line, "TABLE_START") }
func isTableEnd(line string) bool     { return strings.Contains(line, "TABLE_END") }

// splice replaces the first summary region with summary and every table
// region with tables. Marker lines of table regions are kept. A start marker
// without a matching end marker is left as plain text, and a summary region
// never extends past a table start marker.
func splice(template, summary, tables string) string {
	lines := strings.SplitAfter(template, "\n")

	var b strings.Builder
	b.Grow(len(template) + len(tables))

	state := passthrough
	summaryDone := false
	for i, line := range lines {
		switch state {
		case inSummary:
			if isSummaryEnd(line) {
				state = passthrough
			}
			continue
		case inTable:
			if isTableEnd(line) {
				b.WriteString(line)
				state = passthrough
			}
			continue
		}

		switch {
		case !summaryDone && isSummaryStart(line) && closes(lines[i+1:], isSummaryEnd, isTableStart):
			b.WriteString(summary)
			summaryDone = true
			state = inSummary
		case isTableStart(line) && closes(lines[i+1:], isTableEnd, nil):
			b.WriteString(line)
			b.WriteString("\n---\n\n")
			b.WriteString(tables)
			state = inTable
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

// closes reports whether an end line appears in rest before any stop line.
func closes(rest []string, end, stop func(string) bool) bool {
	for _, l := range rest {
		if end(l) {
			return true
		}
		if stop != nil && stop(l) {
			return false
		}
	}
	return false
}
