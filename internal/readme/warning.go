package readme

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"internship-engine/internal/render"
)

// InsertSizeWarning inserts notice at a row boundary shortly before the
// point where a size-limited preview stops, if content is large enough to be
// cut off. Content is otherwise returned unchanged.
func InsertSizeWarning(content string, limit, buffer int, notice string) string {
	if len(content) <= limit-buffer {
		return content
	}

	target := limit - 2*buffer
	if target < 0 {
		target = 0
	}
	prefix := trimPartialRune(content[:target])

	at := len(prefix)
	if i := strings.LastIndex(prefix, "</tr>"); i >= 0 {
		if j := strings.IndexByte(prefix[i:], '\n'); j >= 0 {
			at = i + j + 1
		} else {
			at = i + len("</tr>")
		}
	}
	return content[:at] + notice + content[at:]
}

// trimPartialRune drops an incomplete UTF-8 sequence left at the end of s by
// a byte-offset cut.
func trimPartialRune(s string) string {
	for n := 0; n < utf8.UTFMax-1 && s != ""; n++ {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

func (c *Composer) warning() string {
	return WarningNotice(c.opts.FullListURL, c.opts.MoreJobsURL, c.opts.ShowTerms)
}

// WarningNotice closes the open table, links to the full list, and reopens a
// table with the same columns.
func WarningNotice(fullListURL, moreJobsURL string, showTerms bool) string {
	return fmt.Sprintf(`</tbody>
</table>

---

<div align="center" id="github-cutoff-warning">
  <h2>🔗 See Full List</h2>
  <p><strong>⚠️ GitHub preview cuts off around here due to file size limits.</strong></p>
  <p>📋 <strong><a href="%s">Click here to view the complete list with all internship opportunities!</a></strong> 📋</p>
  <p><em>To find even more internships in tech, check out <a href="%s">Simplify's website</a>.</em></p>
</div>

---

`, fullListURL, moreJobsURL) + render.TableHead(showTerms)
}
