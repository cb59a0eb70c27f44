package canvas

import (
	"fmt"
	"math"
	"strings"
)

// Axis is a value range rounded to a readable step.
type Axis struct {
	Min, Max, Step float64
}

// NiceAxis widens [min,max] to multiples of a 1/2/5 step giving roughly ticks intervals.
func NiceAxis(min, max float64, ticks int) Axis {
	if ticks < 1 {
		ticks = 5
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		if min == 0 {
			max = 1
		} else {
			min, max = min-math.Abs(min)/2, max+math.Abs(max)/2
		}
	}

	raw := (max - min) / float64(ticks)
	// a step below the float spacing at the limits would not advance a tick
	if spacing := ulp(math.Max(math.Abs(min), math.Abs(max))); raw < spacing {
		raw = spacing
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	switch r := raw / mag; {
	case r > 5:
		step = 10 * mag
	case r > 2:
		step = 5 * mag
	case r > 1:
		step = 2 * mag
	}

	if !(step > 0) || math.IsInf(step, 0) {
		step = raw
	}

	return Axis{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
}

// Ticks returns the values of every tick from Min to Max inclusive.
func (a Axis) Ticks() []float64 {
	if a.Step <= 0 || a.Max < a.Min {
		return nil
	}
	n := int(math.Round((a.Max - a.Min) / a.Step))
	if n > maxTicks {
		n = maxTicks
	}
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, a.Min+float64(i)*a.Step)
	}
	return out
}

const maxTicks = 1000

func ulp(v float64) float64 {
	return math.Nextafter(v, math.Inf(1)) - v
}

// Scale maps data values into a graph area.
type Scale struct {
	X    Axis
	Y    Axis
	Area Rect
}

// PixelY returns the canvas Y for value v (larger values are higher up).
func (s Scale) PixelY(v float64) float64 {
	return s.Area.Y2 - (v-s.Y.Min)/(s.Y.Max-s.Y.Min)*s.Area.Height()
}

// PixelX returns the canvas X for value v on a numeric X axis.
func (s Scale) PixelX(v float64) float64 {
	return s.Area.X1 + (v-s.X.Min)/(s.X.Max-s.X.Min)*s.Area.Width()
}

// SlotX returns the centre X of category i out of n equally wide slots.
func (s Scale) SlotX(i, n int) float64 {
	if n <= 0 {
		return s.Area.X1
	}
	w := s.Area.Width() / float64(n)
	return s.Area.X1 + w*float64(i) + w/2
}

// SlotWidth is the width of one of n category slots.
func (s Scale) SlotWidth(n int) float64 {
	if n <= 0 {
		return s.Area.Width()
	}
	return s.Area.Width() / float64(n)
}

// DrawScale draws the grid, both axes and the Y labels. Category labels are centred
// under their slot when given; with a numeric X axis (s.X.Step > 0) X ticks are labelled instead.
func (img *Image) DrawScale(s Scale, categories []string) {
	dc := img.dc
	area := s.Area

	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	dc.SetColor(GridColor)
	for _, v := range s.Y.Ticks() {
		y := s.PixelY(v)
		dc.DrawLine(area.X1, y, area.X2, y)
		dc.Stroke()
		img.DrawText(FormatNumber(v), area.X1-6, y, DefaultFontSize, ForegroundColor, 1, 0.5)
		dc.SetColor(GridColor)
	}
	dc.SetDash()

	dc.SetColor(ForegroundColor)
	dc.SetLineWidth(2)
	dc.DrawLine(area.X1, area.Y2, area.X2, area.Y2)
	dc.Stroke()
	dc.DrawLine(area.X1, area.Y1, area.X1, area.Y2)
	dc.Stroke()

	if s.X.Step > 0 {
		for _, v := range s.X.Ticks() {
			img.DrawText(FormatNumber(v), s.PixelX(v), area.Y2+6, DefaultFontSize, ForegroundColor, 0.5, 1)
		}
		return
	}
	for i, label := range categories {
		img.DrawText(label, s.SlotX(i, len(categories)), area.Y2+6, DefaultFontSize, ForegroundColor, 0.5, 1)
	}
}

// FormatNumber renders v compactly: 1.5M, 12K, 3.25, 7.
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return trimZeros(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case abs >= 1e3:
		return trimZeros(fmt.Sprintf("%.1f", v/1e3)) + "K"
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	}
	return trimZeros(fmt.Sprintf("%.2f", v))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
