package charts

import (
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Bar draws one column per point, series side by side within a category slot.
type Bar struct {
	base
	Gap           float64 // fraction of a slot left empty between groups
	DisplayValues bool
}

func NewBar(img *canvas.Image, d *data.Data) Chart {
	return &Bar{base: base{img: img, data: d}, Gap: 0.2, DisplayValues: true}
}

func (c *Bar) Kind() string { return "bar" }

func (c *Bar) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	scale, err := categoryScale(c.img, d)
	if err != nil {
		return err
	}

	series := d.DataSerieNames()
	n := d.Len()
	c.img.DrawTitle(c.Title)
	c.img.DrawScale(scale, d.Labels(n, canvas.FormatNumber))

	dc := c.img.Context()
	groupW := scale.SlotWidth(n) * (1 - c.Gap)
	barW := groupW / float64(len(series))
	zeroY := scale.PixelY(0)

	for si, name := range series {
		col := d.ColorOf(name)
		for i, v := range d.Values(name) {
			if math.IsNaN(v) {
				continue
			}
			x := scale.SlotX(i, n) - groupW/2 + barW*float64(si)
			y := scale.PixelY(v)
			top := math.Min(y, zeroY)

			dc.SetColor(col)
			dc.DrawRectangle(x, top, barW, math.Abs(zeroY-y))
			dc.Fill()

			if c.DisplayValues && v != 0 {
				c.img.DrawText(canvas.FormatNumber(v), x+barW/2, top-4, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 1)
			}
		}
	}

	if len(series) > 1 {
		c.img.DrawLegend(series, d.ColorOf)
	}
	return nil
}
