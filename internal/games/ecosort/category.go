package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// Category is a kind of waste and the bin that accepts it.
// Categories unlock in declaration order as phases advance.
type Category int

const (
	CategoryPaper Category = iota
	CategoryPlastic
	CategoryMetal
	CategoryGlass
	CategoryOrganic
	CategoryElectronic
	CategoryBattery
	CategoryCount // Sentinel for counting categories
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategoryPaper:
		return "Paper"
	case CategoryPlastic:
		return "Plastic"
	case CategoryMetal:
		return "Metal"
	case CategoryGlass:
		return "Glass"
	case CategoryOrganic:
		return "Organic"
	case CategoryElectronic:
		return "E-Waste"
	case CategoryBattery:
		return "Battery"
	default:
		return "?"
	}
}

// Glyph returns the display character for a waste item of this category.
func (c Category) Glyph() rune {
	switch c {
	case CategoryPaper:
		return 'P'
	case CategoryPlastic:
		return 'L'
	case CategoryMetal:
		return 'M'
	case CategoryGlass:
		return 'G'
	case CategoryOrganic:
		return 'O'
	case CategoryElectronic:
		return 'E'
	case CategoryBattery:
		return 'B'
	default:
		return '?'
	}
}

// Color returns the conventional recycling color for the category.
func (c Category) Color() core.Color {
	switch c {
	case CategoryPaper:
		return core.ColorBlue
	case CategoryPlastic:
		return core.ColorRed
	case CategoryMetal:
		return core.ColorYellow
	case CategoryGlass:
		return core.ColorGreen
	case CategoryOrganic:
		return core.ColorBrown
	case CategoryElectronic:
		return core.ColorMagenta
	case CategoryBattery:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}
