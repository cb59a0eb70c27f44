package charts

import (
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Line draws each serie as a polyline over category slots.
type Line struct {
	base
	LineWidth float64
	DotRadius float64 // 0 hides the dots
}

func NewLine(img *canvas.Image, d *data.Data) Chart {
	return &Line{base: base{img: img, data: d}, LineWidth: 2, DotRadius: 3}
}

func (c *Line) Kind() string { return "line" }

func (c *Line) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	min, max, ok := d.Bounds()
	if !ok {
		return ErrEmptySerie
	}
	scale := canvas.Scale{Y: canvas.NiceAxis(min, max, 5), Area: c.img.GraphArea()}

	series := d.DataSerieNames()
	n := d.Len()
	c.img.DrawTitle(c.Title)
	c.img.DrawScale(scale, d.Labels(n, canvas.FormatNumber))

	dc := c.img.Context()
	for _, name := range series {
		dc.SetColor(d.ColorOf(name))
		dc.SetLineWidth(c.LineWidth)
		dc.NewSubPath()
		for i, v := range d.Values(name) {
			// NaN leaves a hole in the line
			if math.IsNaN(v) {
				dc.Stroke()
				dc.NewSubPath()
				continue
			}
			dc.LineTo(scale.SlotX(i, n), scale.PixelY(v))
		}
		dc.Stroke()

		if c.DotRadius > 0 {
			for i, v := range d.Values(name) {
				if math.IsNaN(v) {
					continue
				}
				dc.DrawCircle(scale.SlotX(i, n), scale.PixelY(v), c.DotRadius)
				dc.Fill()
			}
		}
	}

	if len(series) > 1 {
		c.img.DrawLegend(series, d.ColorOf)
	}
	return nil
}
