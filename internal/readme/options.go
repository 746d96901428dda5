package readme

import (
	"internship-engine/internal/listing"
)

const (
	// GitHub stops rendering a file preview past this many bytes.
	SizeLimit  = 512000
	SizeBuffer = 5120

	TopAnchor = "#summer-2026-tech-internships-by-pitt-csc--simplify"
)

type Options struct {
	// FileName is the document name used in summary links, e.g. README.md.
	FileName string

	// RepoBlobURL is the repository blob base, without a trailing slash.
	RepoBlobURL string

	// ShowTerms adds the Terms column; set for the off-season document.
	ShowTerms bool

	TopAnchor   string
	FullListURL string
	MoreJobsURL string
	SizeLimit   int
	SizeBuffer  int
	Thresholds  listing.Thresholds
}

func DefaultOptions() Options {
	return Options{
		FileName:    "README.md",
		RepoBlobURL: "https://github.com/SimplifyJobs/Summer2026-Internships/blob/dev",
		TopAnchor:   TopAnchor,
		FullListURL: "https://github.com/SimplifyJobs/Summer2026-Internships/blob/dev/README.md#-see-full-list",
		MoreJobsURL: "https://simplify.jobs/jobs?category=Software%20Engineering%3BHardware%20Engineering%3BQuantitative%20Finance%3BProduct%20Management%3BData%20%26%20Analytics%3BIT%20%26%20Security&jobId=2ac81173-86b5-4dbd-a7a9-260847c259cc&jobType=Internship?utm_source=GHList",
		SizeLimit:   SizeLimit,
		SizeBuffer:  SizeBuffer,
		Thresholds:  listing.DefaultThresholds(),
	}
}

// OffSeason returns opts adjusted for the off-season document.
func OffSeason(opts Options) Options {
	opts.FileName = "README-Off-Season.md"
	opts.ShowTerms = true
	return opts
}
