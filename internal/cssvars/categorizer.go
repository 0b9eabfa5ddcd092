package cssvars

import (
	"sort"
	"strings"
)

// PropertyCategory groups properties by the kind of design token they take
type PropertyCategory string

const (
	CategoryColor      PropertyCategory = "color"
	CategoryBorder     PropertyCategory = "border"
	CategorySpacing    PropertyCategory = "spacing"
	CategoryTypography PropertyCategory = "typography"
	CategoryEffects    PropertyCategory = "effects"
	CategoryLayout     PropertyCategory = "layout"
	CategoryCustom     PropertyCategory = "custom"
)

// exactCategories lists properties whose name alone does not reveal the category
var exactCategories = map[string]PropertyCategory{
	"color":            CategoryColor,
	"background":       CategoryColor,
	"background-color": CategoryColor,
	"fill":             CategoryColor,
	"stroke":           CategoryColor,
	"accent-color":     CategoryColor,
	"caret-color":      CategoryColor,
	"opacity":          CategoryColor,
	"gap":              CategorySpacing,
	"row-gap":          CategorySpacing,
	"column-gap":       CategorySpacing,
	"line-height":      CategoryTypography,
	"letter-spacing":   CategoryTypography,
	"box-shadow":       CategoryEffects,
	"text-shadow":      CategoryEffects,
	"filter":           CategoryEffects,
	"backdrop-filter":  CategoryEffects,
}

// prefixCategories is checked in order, first match wins
var prefixCategories = []struct {
	prefix   string
	category PropertyCategory
}{
	{"border", CategoryBorder},
	{"outline", CategoryBorder},
	{"padding", CategorySpacing},
	{"margin", CategorySpacing},
	{"inset", CategorySpacing},
	{"font", CategoryTypography},
	{"text-", CategoryTypography},
	{"transition", CategoryEffects},
	{"animation", CategoryEffects},
	{"transform", CategoryEffects},
}

// categorizeProperty determines the category of a property.
// Vendor prefixes are ignored; unknown properties count as layout.
func categorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "--") {
		return CategoryCustom
	}
	name = stripVendorPrefix(name)

	if cat, ok := exactCategories[name]; ok {
		return cat
	}
	if strings.HasSuffix(name, "-color") {
		return CategoryColor
	}
	for _, p := range prefixCategories {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}

	return CategoryLayout
}

// stripVendorPrefix turns -webkit-box-shadow into box-shadow
func stripVendorPrefix(name string) string {
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest
		}
	}
	return name
}

// CategoryCount is the number of violations in one category
type CategoryCount struct {
	Category   PropertyCategory
	Violations int
}

// sortedCategoryCounts orders categories by violations, most first
func sortedCategoryCounts(counts map[PropertyCategory]int) []CategoryCount {
	result := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		result = append(result, CategoryCount{Category: cat, Violations: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Violations != result[j].Violations {
			return result[i].Violations > result[j].Violations
		}
		return result[i].Category < result[j].Category
	})

	return result
}
