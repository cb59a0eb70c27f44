package charts

import (
	"fmt"
	"math"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

// Stock draws one candle per position from four series.
type Stock struct {
	base
	Open, Close, Min, Max string
	BodyWidth             float64 // fraction of the slot
}

func NewStock(img *canvas.Image, d *data.Data) Chart {
	return &Stock{
		base:      base{img: img, data: d},
		Open:      "Open",
		Close:     "Close",
		Min:       "Min",
		Max:       "Max",
		BodyWidth: 0.5,
	}
}

func (c *Stock) Kind() string { return "stock" }

func (c *Stock) Draw() error {
	d, err := c.ready()
	if err != nil {
		return err
	}

	var cols [4][]data.Point
	for i, name := range []string{c.Open, c.Close, c.Min, c.Max} {
		if cols[i], err = points(d, name); err != nil {
			return fmt.Errorf("stock: %w", err)
		}
	}
	n := len(cols[0])
	for _, col := range cols[1:] {
		if len(col) != n {
			return fmt.Errorf("stock: series %s/%s/%s/%s differ in length", c.Open, c.Close, c.Min, c.Max)
		}
	}

	min, max, _ := d.Bounds(c.Open, c.Close, c.Min, c.Max)
	scale := canvas.Scale{Y: canvas.NiceAxis(min, max, 5), Area: c.img.GraphArea()}
	c.img.DrawTitle(c.Title)
	c.img.DrawScale(scale, d.Labels(n, canvas.FormatNumber))

	dc := c.img.Context()
	bodyW := scale.SlotWidth(n) * c.BodyWidth
	for i := 0; i < n; i++ {
		open, closeV, low, high := cols[0][i].Y, cols[1][i].Y, cols[2][i].Y, cols[3][i].Y
		x := scale.SlotX(i, n)

		col := upColor
		if closeV < open {
			col = downColor
		}
		dc.SetColor(col)
		dc.SetLineWidth(1)
		dc.DrawLine(x, scale.PixelY(high), x, scale.PixelY(low))
		dc.Stroke()

		top := scale.PixelY(math.Max(open, closeV))
		bottom := scale.PixelY(math.Min(open, closeV))
		dc.DrawRectangle(x-bodyW/2, top, bodyW, math.Max(bottom-top, 1))
		dc.Fill()
	}
	return nil
}
