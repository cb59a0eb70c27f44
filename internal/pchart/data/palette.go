package data

import "image/color"

// DefaultPalette is the series colour cycle shared by all chart variants.
var DefaultPalette = []color.Color{
	color.RGBA{188, 224, 46, 255},
	color.RGBA{224, 100, 46, 255},
	color.RGBA{224, 214, 46, 255},
	color.RGBA{46, 151, 224, 255},
	color.RGBA{176, 46, 224, 255},
	color.RGBA{224, 46, 117, 255},
	color.RGBA{92, 224, 46, 255},
	color.RGBA{224, 176, 46, 255},
}
