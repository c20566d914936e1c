package stylecast

// PropertyCategory groups related properties for display.
type PropertyCategory string

// Categories used by the resolve command's table output.
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
)

// propertyCategories maps every property to its display category.
var propertyCategories = map[Property]PropertyCategory{
	PropBackgroundColor: CategoryVisual,
	PropTextColor:       CategoryVisual,
	PropBorder:          CategoryVisual,
	PropBorderRadius:    CategoryVisual,
	PropOpacity:         CategoryVisual,

	PropMinWidth:  CategoryLayout,
	PropMaxWidth:  CategoryLayout,
	PropMinHeight: CategoryLayout,
	PropMaxHeight: CategoryLayout,
	PropPadding:   CategoryLayout,

	PropFontFamily: CategoryTypography,
	PropFontSize:   CategoryTypography,
}

// Category returns the display category for p.
func Category(p Property) PropertyCategory {
	if c, ok := propertyCategories[p]; ok {
		return c
	}
	return CategoryVisual
}

// CategoryOrder is the display order of categories.
var CategoryOrder = []PropertyCategory{CategoryVisual, CategoryLayout, CategoryTypography}

// GroupByCategory splits resolved properties into display categories,
// preserving sorted property order within each.
func GroupByCategory(rs ResolvedStyle) map[PropertyCategory][]Property {
	groups := make(map[PropertyCategory][]Property)
	for _, p := range rs.Properties() {
		c := Category(p)
		groups[c] = append(groups[c], p)
	}
	return groups
}
