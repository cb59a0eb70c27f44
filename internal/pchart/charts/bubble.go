package charts

import (
	"fmt"
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Bubble draws a circle per point whose area follows a companion weight serie.
type Bubble struct {
	base
	Serie       string // defaults to the first data serie
	WeightSerie string // defaults to the second data serie
	MaxRadius   float64
}

func NewBubble(img *canvas.Image, d *data.Data) Chart {
	return &Bubble{base: base{img: img, data: d}, MaxRadius: 40}
}

func (c *Bubble) Kind() string { return "bubble" }

func (c *Bubble) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}

	serie, weightSerie := c.Serie, c.WeightSerie
	names := d.DataSerieNames()
	if serie == "" && len(names) > 0 {
		serie = names[0]
	}
	if weightSerie == "" && len(names) > 1 {
		weightSerie = names[1]
	}
	values, err := points(d, serie)
	if err != nil {
		return err
	}
	weights, err := points(d, weightSerie)
	if err != nil {
		return fmt.Errorf("bubble weights: %w", err)
	}

	scale, err := categoryScale(c.img, d, serie)
	if err != nil {
		return err
	}
	n := len(values)
	c.img.DrawTitle(c.Title)
	c.img.DrawScale(scale, d.Labels(n, canvas.FormatNumber))

	maxWeight := 0.0
	for _, w := range weights {
		maxWeight = math.Max(maxWeight, math.Abs(w.Y))
	}
	maxRadius := math.Min(c.MaxRadius, scale.SlotWidth(n)/2)

	dc := c.img.Context()
	col := d.ColorOf(serie)
	for i, p := range values {
		if i >= len(weights) || maxWeight == 0 {
			break
		}
		r := math.Sqrt(math.Abs(weights[i].Y)/maxWeight) * maxRadius
		x, y := scale.SlotX(i, n), scale.PixelY(p.Y)

		dc.SetColor(withAlpha(col, 160))
		dc.DrawCircle(x, y, r)
		dc.Fill()
		dc.SetColor(col)
		dc.SetLineWidth(1)
		dc.DrawCircle(x, y, r)
		dc.Stroke()
	}
	return nil
}
