package charts

import (
	"fmt"
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Pie draws the positive values of one serie as slices of a disc.
// Slice labels come from the abscissa serie when one is set.
type Pie struct {
	base
	Serie       string // defaults to the first data serie with points
	Radius      float64
	ShowPercent bool
}

func NewPie(img *canvas.Image, d *data.Data) Chart {
	return &Pie{base: base{img: img, data: d}, ShowPercent: true}
}

func (c *Pie) Kind() string { return "pie" }

func (c *Pie) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}

	var pts []data.Point
	if c.Serie != "" {
		pts, err = points(d, c.Serie)
	} else {
		_, pts, err = firstSerie(d)
	}
	if err != nil {
		return err
	}

	total := 0.0
	for _, p := range pts {
		if p.Y > 0 {
			total += p.Y
		}
	}
	if total == 0 {
		return fmt.Errorf("%w: no positive values", ErrEmptySerie)
	}

	area := c.img.GraphArea()
	cx, cy := area.X1+area.Width()/2, area.Y1+area.Height()/2
	radius := c.Radius
	if radius <= 0 {
		radius = math.Min(area.Width(), area.Height())/2 - 10
	}

	c.img.DrawTitle(c.Title)
	labels := d.Labels(len(pts), canvas.FormatNumber)

	dc := c.img.Context()
	start := -math.Pi / 2
	for i, p := range pts {
		if p.Y <= 0 {
			continue
		}
		sweep := p.Y / total * 2 * math.Pi
		end := start + sweep

		dc.SetColor(d.PaletteColor(i))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, start, end)
		dc.ClosePath()
		dc.Fill()

		mid := start + sweep/2
		tx := cx + radius*0.7*math.Cos(mid)
		ty := cy + radius*0.7*math.Sin(mid)
		text := labels[i]
		if c.ShowPercent {
			text = fmt.Sprintf("%s (%.0f%%)", labels[i], p.Y/total*100)
		}
		c.img.DrawText(text, tx, ty, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 0.5)

		start = end
	}
	return nil
}
