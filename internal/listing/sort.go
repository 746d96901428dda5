package listing

import (
	"sort"
	"strings"

	"internship-engine/internal/domain"
)

// Sort orders listings in place: active first, then newest posting, then
// company name (descending), then newest update. Equal keys keep input order.
//
// Before returning, every listing of a company gets that company's URL: the
// last non-empty URL seen in input order, or whatever was first seen if no
// listing carries one.
func Sort(listings []domain.Listing) []domain.Listing {
	linkForCompany := make(map[string]string)
	for _, l := range listings {
		if _, ok := linkForCompany[l.CompanyName]; !ok || len(l.CompanyURL) > 0 {
			linkForCompany[l.CompanyName] = l.CompanyURL
		}
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return less(listings[j], listings[i])
	})

	for i := range listings {
		listings[i].CompanyURL = linkForCompany[listings[i].CompanyName]
	}
	return listings
}

// less reports whether a sorts before b in ascending key order.
func less(a, b domain.Listing) bool {
	if a.Active != b.Active {
		return !a.Active
	}
	if a.DatePosted != b.DatePosted {
		return a.DatePosted < b.DatePosted
	}
	an, bn := strings.ToLower(a.CompanyName), strings.ToLower(b.CompanyName)
	if an != bn {
		return an < bn
	}
	return a.DateUpdated < b.DateUpdated
}

// ByNewest stable-sorts by posting date, newest first.
func ByNewest(listings []domain.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].DatePosted > listings[j].DatePosted
	})
}
