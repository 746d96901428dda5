package classify

import (
	"strings"

	"internship-engine/internal/domain"
)

// Rule matches a lowercased title. A rule with Exclude set drops the listing
// instead of assigning Category.
type Rule struct {
	Category domain.Category
	Exclude  bool
	Any      []string
	Extra    func(title string) bool
}

func (r Rule) Match(title string) bool {
	for _, needle := range r.Any {
		if strings.Contains(title, needle) {
			return true
		}
	}
	return r.Extra != nil && r.Extra(title)
}

// DefaultRules is evaluated top to bottom; the first match wins.
var DefaultRules = []Rule{
	{
		Exclude: true,
		Any: []string{
			"it technical intern", "it technician", "it support", "technical support intern",
			"help desk", "desktop support", "it help desk", "computer support", "security operations",
			"field operations", "information technology",
		},
	},
	{
		Category: domain.CategoryHardware,
		Any: []string{
			"hardware", "embedded", "fpga", "circuit", "chip", "silicon", "asic", "robotics", "firmware",
			"manufactur", "electrical", "mechanical", "systems engineer", "test engineer", "validation",
			"verification", "pcb", "analog", "digital", "signal", "power", "rf", "antenna",
		},
	},
	{
		Category: domain.CategoryQuant,
		Any: []string{
			"quant", "quantitative", "trading", "finance", "investment", "financial", "risk", "portfolio",
			"derivatives", "algorithmic trading", "market", "capital", "equity", "fixed income", "credit",
		},
	},
	{
		Category: domain.CategoryData,
		Any: []string{
			"data science", "artificial intelligence", "data scientist", "ai", "machine learning", "ml",
			"data analytics", "data analyst", "research eng", "nlp", "computer vision", "research sci",
			"data eng", "analytics", "statistician", "modeling", "algorithms", "deep learning", "pytorch",
			"tensorflow", "pandas", "numpy", "sql", "etl", "pipeline", "big data", "spark", "hadoop",
		},
	},
	{
		Category: domain.CategoryProduct,
		Any: []string{
			"product manag", "product analyst", "apm", "associate product", "product owner", "product design",
			"product marketing", "product strategy", "business analyst", "program manag", "project manag",
		},
		Extra: productRole,
	},
	{
		Category: domain.CategorySoftware,
		Any: []string{
			"software", "engineer", "developer", "dev", "programming", "coding", "fullstack", "full-stack",
			"full stack", "frontend", "front end", "front-end", "backend", "back end", "back-end",
			"mobile", "web", "app", "application", "platform", "infrastructure", "cloud", "devops",
			"sre", "site reliability", "systems", "network", "security", "cybersecurity", "qa",
			"quality assurance", "test", "automation", "ci/cd", "deployment", "kubernetes", "docker",
			"aws", "azure", "gcp", "api", "microservices", "database", "java", "python", "javascript",
			"react", "node", "golang", "rust", "c++", "c#", ".net", "ios", "android", "flutter",
			"technical", "technology", "tech", "sde", "swe",
		},
	},
}

func productRole(title string) bool {
	if !strings.Contains(title, "product") {
		return false
	}
	for _, w := range []string{"analyst", "manager", "associate", "coordinator"} {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}
