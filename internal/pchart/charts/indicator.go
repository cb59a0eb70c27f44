package charts

import (
	"image/color"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Section is one coloured band of an indicator.
type Section struct {
	Start, End float64
	Caption    string
	Color      color.Color // nil takes the palette colour at the section's position
}

// Indicator draws a horizontal band split in sections with a marker for the
// last value of each data serie.
type Indicator struct {
	base
	Sections []Section // empty means three equal sections over the data range
	Height   float64
}

func NewIndicator(img *canvas.Image, d *data.Data) Chart {
	return &Indicator{base: base{img: img, data: d}, Height: 30}
}

func (c *Indicator) Kind() string { return "indicator" }

func (c *Indicator) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}
	min, max, ok := d.Bounds()
	if !ok {
		return ErrEmptySerie
	}

	sections := c.Sections
	if len(sections) == 0 {
		sections = defaultSections(min, max)
	}
	lo, hi := sections[0].Start, sections[len(sections)-1].End
	if hi <= lo {
		hi = lo + 1
	}

	area := c.img.GraphArea()
	y := area.Y1 + area.Height()/2 - c.Height/2
	toX := func(v float64) float64 { return area.X1 + (v-lo)/(hi-lo)*area.Width() }

	c.img.DrawTitle(c.Title)
	dc := c.img.Context()
	for i, s := range sections {
		x1, x2 := toX(s.Start), toX(s.End)
		col := s.Color
		if col == nil {
			col = d.PaletteColor(i)
		}
		dc.SetColor(col)
		dc.DrawRectangle(x1, y, x2-x1, c.Height)
		dc.Fill()
		if s.Caption != "" {
			c.img.DrawText(s.Caption, (x1+x2)/2, y+c.Height/2, canvas.DefaultFontSize, color.White, 0.5, 0.5)
		}
		c.img.DrawText(canvas.FormatNumber(s.Start), x1, y+c.Height+4, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 1)
	}
	c.img.DrawText(canvas.FormatNumber(hi), toX(hi), y+c.Height+4, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 1)

	for _, name := range d.DataSerieNames() {
		values := d.Values(name)
		if len(values) == 0 {
			continue
		}
		v := values[len(values)-1]
		x := toX(clampf(v, lo, hi))

		dc.SetColor(canvas.ForegroundColor)
		dc.MoveTo(x, y-2)
		dc.LineTo(x-6, y-12)
		dc.LineTo(x+6, y-12)
		dc.ClosePath()
		dc.Fill()
		c.img.DrawText(canvas.FormatNumber(v), x, y-16, canvas.DefaultFontSize, canvas.ForegroundColor, 0.5, 1)
	}
	return nil
}

func defaultSections(min, max float64) []Section {
	if max <= min {
		max = min + 1
	}
	step := (max - min) / 3
	return []Section{
		{Start: min, End: min + step, Color: upColor},
		{Start: min + step, End: min + 2*step, Color: color.RGBA{224, 176, 46, 255}},
		{Start: min + 2*step, End: max, Color: downColor},
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
