package pokedex

import "github.com/FlagBrew/local-pokedex/internal/models"

var DefaultTheme = models.Theme{Background: "bg-gray-200", Text: "text-gray-200", Color: "#E5E7EB"}

var typeColors = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

// ThemeFor looks up the theme of a type, falling back to DefaultTheme.
func ThemeFor(category string) models.Theme {
	color, ok := typeColors[category]
	if !ok {
		return DefaultTheme
	}

	return models.Theme{
		Background: "bg-" + category,
		Text:       "text-" + category,
		Color:      color,
	}
}

// ThemeForCategories uses the first listed category.
func ThemeForCategories(categories []string) models.Theme {
	if len(categories) == 0 {
		return DefaultTheme
	}
	return ThemeFor(categories[0])
}
