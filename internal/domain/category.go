package domain

type Category string

const (
	CategorySoftware Category = "Software Engineering"
	CategoryProduct  Category = "Product Management"
	CategoryData     Category = "Data Science, AI & Machine Learning"
	CategoryQuant    Category = "Quantitative Finance"
	CategoryHardware Category = "Hardware Engineering"
)

type CategoryInfo struct {
	Key   string
	Name  Category
	Emoji string
}

// Categories is the display order used for the summary and the tables.
var Categories = []CategoryInfo{
	{Key: "Software", Name: CategorySoftware, Emoji: "💻"},
	{Key: "Product", Name: CategoryProduct, Emoji: "📱"},
	{Key: "AI/ML/Data", Name: CategoryData, Emoji: "🤖"},
	{Key: "Quant", Name: CategoryQuant, Emoji: "📈"},
	{Key: "Hardware", Name: CategoryHardware, Emoji: "🔧"},
}

func InfoFor(c Category) (CategoryInfo, bool) {
	for _, ci := range Categories {
		if ci.Name == c {
			return ci, true
		}
	}
	return CategoryInfo{}, false
}
