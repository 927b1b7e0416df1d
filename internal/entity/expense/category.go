package expense

type Category struct {
	ID          string
	UserID      string
	ParentID    string
	Name        string
	DisplayName string
	Color       string
	ChartColor  string
	Icon        string
	Level       int
	SortOrder   int
	IsDefault   bool
}

const (
	FallbackName       = "Other"
	FallbackColor      = "grey"
	FallbackChartColor = "#757575"

	DefaultCategorySet = "default"
)

type categoryTemplate struct {
	name       string
	color      string
	chartColor string
	icon       string
	display    map[string]string
}

var defaultCategories = []categoryTemplate{
	{"Food", "orange", "#FF9800", "mdi-food", map[string]string{"zh-CN": "餐饮", "en": "Food"}},
	{"Transport", "blue", "#2196F3", "mdi-bus", map[string]string{"zh-CN": "交通", "en": "Transport"}},
	{"Shopping", "pink", "#E91E63", "mdi-cart", map[string]string{"zh-CN": "购物", "en": "Shopping"}},
	{"Entertainment", "purple", "#9C27B0", "mdi-movie", map[string]string{"zh-CN": "娱乐", "en": "Entertainment"}},
	{"Other", "grey", "#757575", "mdi-dots-horizontal", map[string]string{"zh-CN": "其他", "en": "Other"}},
}

// DefaultCategories returns the top-level set given to a new user. Ids are left
// empty for the store to assign.
func DefaultCategories(userID, locale string) []Category {
	res := make([]Category, 0, len(defaultCategories))
	for i, tpl := range defaultCategories {
		display, ok := tpl.display[locale]
		if !ok {
			display = tpl.display["en"]
		}
		res = append(res, Category{
			UserID:      userID,
			Name:        tpl.name,
			DisplayName: display,
			Color:       tpl.color,
			ChartColor:  tpl.chartColor,
			Icon:        tpl.icon,
			Level:       0,
			SortOrder:   i,
			IsDefault:   true,
		})
	}
	return res
}
