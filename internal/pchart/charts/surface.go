package charts

import (
	"image/color"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Surface draws a grid of cells, one row per serie and one column per point,
// shaded between ShadeFrom (lowest value) and ShadeTo (highest).
type Surface struct {
	base
	ShadeFrom  color.RGBA
	ShadeTo    color.RGBA
	ShowValues bool
}

func NewSurface(img *canvas.Image, d *data.Data) Chart {
	return &Surface{
		base:      base{img: img, data: d},
		ShadeFrom: color.RGBA{46, 151, 224, 255},
		ShadeTo:   color.RGBA{224, 100, 46, 255},
	}
}

func (c *Surface) Kind() string { return "surface" }

func (c *Surface) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	rows := d.DataSerieNames()
	cols := d.Len()
	min, max, ok := d.Bounds()
	if !ok || cols == 0 {
		return ErrEmptySerie
	}

	c.img.DrawTitle(c.Title)
	area := c.img.GraphArea()
	cellW := area.Width() / float64(cols)
	cellH := area.Height() / float64(len(rows))

	dc := c.img.Context()
	for r, name := range rows {
		y := area.Y1 + cellH*float64(r)
		c.img.DrawText(name, area.X1-6, y+cellH/2, canvas.DefaultFontSize, canvas.ForegroundColor, 1, 0.5)
		for i, v := range d.Values(name) {
			t := 0.5
			if max > min {
				t = (v - min) / (max - min)
			}
			x := area.X1 + cellW*float64(i)
			dc.SetColor(lerp(c.ShadeFrom, c.ShadeTo, t))
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.Fill()
			if c.ShowValues {
				c.img.DrawText(canvas.FormatNumber(v), x+cellW/2, y+cellH/2, canvas.DefaultFontSize, color.White, 0.5, 0.5)
			}
		}
	}
	return nil
}
