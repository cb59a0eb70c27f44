package charts

import (
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Radar draws one spoke per position and a filled polygon per serie.
type Radar struct {
	base
	Rings int
}

func NewRadar(img *canvas.Image, d *data.Data) Chart {
	return &Radar{base: base{img: img, data: d}, Rings: 4}
}

func (c *Radar) Kind() string { return "radar" }

func (c *Radar) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	n := d.Len()
	_, max, ok := d.Bounds()
	if !ok || n < 3 {
		return ErrEmptySerie
	}
	axis := canvas.NiceAxis(0, math.Max(max, 0), c.Rings)

	area := c.img.GraphArea()
	cx, cy := area.X1+area.Width()/2, area.Y1+area.Height()/2
	radius := math.Min(area.Width(), area.Height())/2 - 20
	angle := func(i int) float64 { return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n) }

	c.img.DrawTitle(c.Title)
	dc := c.img.Context()
	dc.SetLineWidth(1)
	dc.SetColor(canvas.GridColor)
	for _, v := range axis.Ticks() {
		if v <= axis.Min {
			continue
		}
		r := v / axis.Max * radius
		for i := 0; i <= n; i++ {
			dc.LineTo(cx+r*math.Cos(angle(i%n)), cy+r*math.Sin(angle(i%n)))
		}
		dc.Stroke()
	}

	labels := d.Labels(n, canvas.FormatNumber)
	for i := 0; i < n; i++ {
		x, y := cx+radius*math.Cos(angle(i)), cy+radius*math.Sin(angle(i))
		dc.SetColor(canvas.GridColor)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
		lx, ly := cx+(radius+12)*math.Cos(angle(i)), cy+(radius+12)*math.Sin(angle(i))
		c.img.DrawText(labels[i], lx, ly, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 0.5)
	}

	series := d.DataSerieNames()
	for _, name := range series {
		values := d.Values(name)
		if len(values) == 0 {
			continue
		}
		dc.NewSubPath()
		for i, v := range values {
			r := math.Max(v, 0) / axis.Max * radius
			dc.LineTo(cx+r*math.Cos(angle(i)), cy+r*math.Sin(angle(i)))
		}
		dc.ClosePath()
		col := d.ColorOf(name)
		dc.SetColor(withAlpha(col, 90))
		dc.FillPreserve()
		dc.SetColor(col)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	if len(series) > 1 {
		c.img.DrawLegend(series, d.ColorOf)
	}
	return nil
}
