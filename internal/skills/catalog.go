// Package skills holds the skill catalog and the radial spiral visualizer that
// presents it.
package skills

// Category groups skills. All is the filter value that matches every category.
type Category string

const (
	All       Category = "all"
	Technical Category = "technical"
	Business  Category = "business"
	Tools     Category = "tools"
	Soft      Category = "soft"
)

// CategoryInfo is how a category is labelled and coloured.
type CategoryInfo struct {
	ID    Category
	Name  string
	Color string
}

var categories = []CategoryInfo{
	{ID: All, Name: "All Skills", Color: "#3b82f6"},
	{ID: Technical, Name: "Technical", Color: "#10b981"},
	{ID: Business, Name: "Business", Color: "#8b5cf6"},
	{ID: Tools, Name: "Tools", Color: "#f59e0b"},
	{ID: Soft, Name: "Soft Skills", Color: "#ef4444"},
}

// DefaultColor is used for nodes whose category has no colour.
const DefaultColor = "#3b82f6"

// Categories returns the filter choices, All first.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Color returns the node colour for c.
func (c Category) Color() string {
	for _, info := range categories {
		if info.ID == c {
			return info.Color
		}
	}
	return DefaultColor
}

// Item is one catalog entry.
type Item struct {
	Name     string
	Category Category
	Level    int // 0-100
	Link     string
}

const profile = "https://github.com/Sunil5411"

func repos(q string) string {
	return profile + "?tab=repositories&q=" + q
}

var catalog = []Item{
	{Name: "Python", Category: Technical, Level: 90, Link: repos("python")},
	{Name: "SQL", Category: Technical, Level: 85, Link: repos("sql")},
	{Name: "Power BI", Category: Technical, Level: 88, Link: repos("powerbi")},
	{Name: "Excel", Category: Technical, Level: 82, Link: repos("excel")},
	{Name: "MySQL", Category: Technical, Level: 80, Link: repos("mysql")},
	{Name: "Pandas", Category: Technical, Level: 85, Link: repos("pandas")},
	{Name: "NumPy", Category: Technical, Level: 78, Link: repos("numpy")},
	{Name: "Matplotlib", Category: Technical, Level: 75, Link: repos("matplotlib")},

	{Name: "Data Storytelling", Category: Business, Level: 90, Link: repos("dashboard")},
	{Name: "Stakeholder Management", Category: Business, Level: 85, Link: profile},
	{Name: "Requirements Analysis", Category: Business, Level: 82, Link: profile},
	{Name: "Business Communication", Category: Business, Level: 88, Link: profile},
	{Name: "Problem Solving", Category: Business, Level: 92, Link: profile},

	{Name: "JIRA", Category: Tools, Level: 70, Link: profile},
	{Name: "Confluence", Category: Tools, Level: 68, Link: profile},
	{Name: "Figma", Category: Tools, Level: 65, Link: profile},
	{Name: "Git", Category: Tools, Level: 75, Link: profile},

	{Name: "Critical Thinking", Category: Soft, Level: 90, Link: profile},
	{Name: "Adaptability", Category: Soft, Level: 88, Link: profile},
	{Name: "Time Management", Category: Soft, Level: 85, Link: profile},
	{Name: "Attention to Detail", Category: Soft, Level: 87, Link: profile},
}

// Catalog returns a copy of the skill catalog in display order.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}
