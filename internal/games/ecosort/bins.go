package ecosort

import (
	"github.com/vovakirdan/ecosort/internal/config"
	"github.com/vovakirdan/ecosort/internal/core"
)

// Bin accepts waste of one category.
type Bin struct {
	Category Category
	Bounds   core.Box
}

// LayoutBins places one bin per category in a row, evenly spaced across the field.
func LayoutBins(categories []Category, fc config.FieldConfig) []Bin {
	n := float64(len(categories))
	spacing := (fc.Width - fc.BinWidth*n) / (n + 1)
	if spacing < 0 {
		spacing = 0
	}

	bins := make([]Bin, len(categories))
	for i, c := range categories {
		x := spacing + float64(i)*(fc.BinWidth+spacing)
		bins[i] = Bin{
			Category: c,
			Bounds:   core.NewBox(x, fc.BinY, fc.BinWidth, fc.BinHeight),
		}
	}
	return bins
}
