package render

import (
	"fmt"
	"strconv"
	"strings"

	"internship-engine/internal/domain"
)

const (
	fireMarker   = "🔥"
	degreeMarker = "🎓"
)

var (
	lowerDegrees    = []string{"bachelor's", "associate's"}
	advancedDegrees = []string{"master's", "phd", "mba"}
	titleDegreeKeys = []string{"master's", "masters", "master", "mba", "phd", "ph.d", "doctorate", "doctoral"}
)

func (r *Renderer) companyCell(l domain.Listing) string {
	cell := "<strong>" + l.CompanyName + "</strong>"
	if raw := strings.TrimSpace(l.CompanyURL); strings.HasPrefix(raw, "http") {
		cell = fmt.Sprintf(`<strong><a href="%s?%s">%s</a></strong>`, raw, r.opts.CompanyTracking, l.CompanyName)
	}
	if _, ok := r.topTier[strings.ToLower(l.CompanyName)]; ok {
		cell = fireMarker + " " + cell
	}
	return cell
}

func roleCell(l domain.Listing) string {
	role := l.Title
	if advancedOnly(l.Degrees) {
		role += " " + degreeMarker
	}
	if containsAny(strings.ToLower(l.Title), titleDegreeKeys) && !strings.Contains(role, degreeMarker) {
		role += " " + degreeMarker
	}
	return role + sponsorshipMarker(l.Sponsorship)
}

// advancedOnly reports whether degrees ask for a graduate degree and do not
// also accept a bachelor's or associate's.
func advancedOnly(degrees []string) bool {
	hasLower, hasAdvanced := false, false
	for _, d := range degrees {
		d = strings.ToLower(d)
		hasLower = hasLower || oneOf(d, lowerDegrees)
		hasAdvanced = hasAdvanced || oneOf(d, advancedDegrees)
	}
	return hasAdvanced && !hasLower
}

func sponsorshipMarker(s string) string {
	switch s {
	case domain.SponsorshipNotOffered:
		return " 🛂"
	case domain.SponsorshipCitizenRequired:
		return " 🇺🇸"
	}
	return ""
}

func locationCell(locations []string) string {
	joined := strings.Join(locations, "</br>")
	if len(locations) <= 3 {
		return joined
	}
	return fmt.Sprintf("<details><summary><strong>%d locations</strong></summary>%s</details>", len(locations), joined)
}

func (r *Renderer) applyCell(l domain.Listing) string {
	if !l.Active {
		return ClosedGlyph
	}
	link := l.URL
	if strings.Contains(link, "?") {
		link += "&" + r.opts.ApplyTracking
	} else {
		link += "?" + r.opts.ApplyTracking
	}

	if l.Source != r.opts.Provider {
		return fmt.Sprintf(`<div align="center"><a href="%s"><img src="%s" width="80" alt="Apply"></a></div>`,
			link, LongApplyButton)
	}

	providerLink := fmt.Sprintf(r.opts.ProviderJobURL, l.ID)
	return fmt.Sprintf(`<div align="center"><a href="%s"><img src="%s" width="50" alt="Apply"></a> `+
		`<a href="%s"><img src="%s" width="26" alt="%s"></a></div>`,
		link, ShortApplyButton, providerLink, SquareProviderButton, r.opts.Provider)
}

// Age formats whole days: "0d", "{n}d" up to 30 days, then whole months.
func Age(days int) string {
	switch {
	case days <= 0:
		return "0d"
	case days > 30:
		return strconv.Itoa(days/30) + "mo"
	default:
		return strconv.Itoa(days) + "d"
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func oneOf(s string, xs []string) bool {
	for _, x := range xs {
		if s == x {
			return true
		}
	}
	return false
}
