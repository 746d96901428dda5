package domain

// Listing is one internship posting as it appears in the listings file.
// Category is attached by the classifier; the staleness pass may clear
// Active for old postings.
type Listing struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	CompanyName string   `json:"company_name"`
	CompanyURL  string   `json:"company_url"`
	Title       string   `json:"title"`
	Locations   []string `json:"locations"`
	Terms       []string `json:"terms"`
	Degrees     []string `json:"degrees,omitempty"`
	Sponsorship string   `json:"sponsorship"`
	DatePosted  int64    `json:"date_posted"`
	DateUpdated int64    `json:"date_updated"`
	IsVisible   bool     `json:"is_visible"`
	Active      bool     `json:"active"`
	Category    Category `json:"category,omitempty"`
}

const (
	SponsorshipNotOffered      = "Does Not Offer Sponsorship"
	SponsorshipCitizenRequired = "U.S. Citizenship is Required"
)
