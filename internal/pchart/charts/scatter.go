package charts

import (
	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Scatter plots every serie point at its (X, Y) position.
type Scatter struct {
	base
	DotRadius float64
	Lines     bool // connect the points of a serie in order
}

func NewScatter(img *canvas.Image, d *data.Data) Chart {
	return &Scatter{base: base{img: img, data: d}, DotRadius: 4}
}

func (c *Scatter) Kind() string { return "scatter" }

func (c *Scatter) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	scale, err := xyScale(c.img, d)
	if err != nil {
		return err
	}

	c.img.DrawTitle(c.Title)
	c.img.DrawScale(scale, nil)

	dc := c.img.Context()
	series := d.DataSerieNames()
	for _, name := range series {
		s, _ := d.Serie(name)
		dc.SetColor(d.ColorOf(name))
		if c.Lines && len(s.Points) > 1 {
			dc.SetLineWidth(1.5)
			dc.NewSubPath()
			for _, p := range s.Points {
				dc.LineTo(scale.PixelX(p.X), scale.PixelY(p.Y))
			}
			dc.Stroke()
		}
		for _, p := range s.Points {
			dc.DrawCircle(scale.PixelX(p.X), scale.PixelY(p.Y), c.DotRadius)
			dc.Fill()
		}
	}

	if len(series) > 1 {
		c.img.DrawLegend(series, d.ColorOf)
	}
	return nil
}

func xyScale(img *canvas.Image, d *data.Data) (canvas.Scale, error) {
	xmin, xmax, ok := d.XBounds()
	if !ok {
		return canvas.Scale{}, ErrEmptySerie
	}
	ymin, ymax, _ := d.Bounds()
	return canvas.Scale{
		X:    canvas.NiceAxis(xmin, xmax, 5),
		Y:    canvas.NiceAxis(ymin, ymax, 5),
		Area: img.GraphArea(),
	}, nil
}
