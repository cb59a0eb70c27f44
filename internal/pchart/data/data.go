// Package data holds the series container fed to charts.
package data

import (
	"image/color"
	"math"
)

// DefaultSerieName is used when a serie name is left empty.
const DefaultSerieName = "Serie1"

// Point is one sample of a serie. Category charts only use Y.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Serie is a named ordered list of points.
type Serie struct {
	Name        string
	Description string
	Points      []Point
	Color       color.Color // nil means palette colour by position
	Axis        int
}

// Data is a set of series plus axis metadata. It is not safe for concurrent mutation.
type Data struct {
	series    map[string]*Serie
	order     []string
	abscissa  string
	axisNames map[int]string
	palette   []color.Color
}

func New() *Data {
	return &Data{
		series:    make(map[string]*Serie),
		axisNames: make(map[int]string),
		palette:   append([]color.Color(nil), DefaultPalette...),
	}
}

// AddPoints appends points to serie, creating it on first use.
func (d *Data) AddPoints(points []Point, serie string) {
	s := d.ensure(serie)
	s.Points = append(s.Points, points...)
}

// AddSerie registers an empty serie if it does not exist yet.
func (d *Data) AddSerie(serie string) *Serie {
	return d.ensure(serie)
}

func (d *Data) ensure(name string) *Serie {
	if name == "" {
		name = DefaultSerieName
	}
	if s, ok := d.series[name]; ok {
		return s
	}
	s := &Serie{Name: name, Description: name}
	d.series[name] = s
	d.order = append(d.order, name)
	return s
}

func (d *Data) Serie(name string) (*Serie, bool) {
	s, ok := d.series[name]
	return s, ok
}

// SerieNames returns serie names in insertion order.
func (d *Data) SerieNames() []string {
	return append([]string(nil), d.order...)
}

// DataSerieNames returns serie names in insertion order, without the abscissa serie.
func (d *Data) DataSerieNames() []string {
	out := make([]string, 0, len(d.order))
	for _, name := range d.order {
		if name != d.abscissa {
			out = append(out, name)
		}
	}
	return out
}

func (d *Data) SerieCount() int {
	return len(d.order)
}

func (d *Data) RemoveSerie(name string) {
	if _, ok := d.series[name]; !ok {
		return
	}
	delete(d.series, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if d.abscissa == name {
		d.abscissa = ""
	}
}

func (d *Data) SetSerieDescription(name, description string) {
	if s, ok := d.series[name]; ok {
		s.Description = description
	}
}

func (d *Data) SetSerieColor(name string, c color.Color) {
	if s, ok := d.series[name]; ok {
		s.Color = c
	}
}

func (d *Data) SetSerieAxis(name string, axis int) {
	if s, ok := d.series[name]; ok {
		s.Axis = axis
	}
}

// SetAbscissa marks serie as the label source for the X axis.
func (d *Data) SetAbscissa(name string) {
	d.abscissa = name
}

func (d *Data) Abscissa() string {
	return d.abscissa
}

func (d *Data) SetAxisName(axis int, name string) {
	d.axisNames[axis] = name
}

func (d *Data) AxisName(axis int) string {
	return d.axisNames[axis]
}

// Values returns the Y values of a serie, nil when unknown.
func (d *Data) Values(name string) []float64 {
	s, ok := d.series[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// Len returns the longest serie length among the data series.
func (d *Data) Len() int {
	n := 0
	for _, name := range d.DataSerieNames() {
		if l := len(d.series[name].Points); l > n {
			n = l
		}
	}
	return n
}

// Bounds returns min and max Y over the given series, or over all data series when none are given.
// ok is false if there is no point at all.
func (d *Data) Bounds(series ...string) (min, max float64, ok bool) {
	if len(series) == 0 {
		series = d.DataSerieNames()
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, name := range series {
		s, found := d.series[name]
		if !found {
			continue
		}
		for _, p := range s.Points {
			if math.IsNaN(p.Y) {
				continue
			}
			min = math.Min(min, p.Y)
			max = math.Max(max, p.Y)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// XBounds is Bounds for X.
func (d *Data) XBounds(series ...string) (min, max float64, ok bool) {
	if len(series) == 0 {
		series = d.DataSerieNames()
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, name := range series {
		s, found := d.series[name]
		if !found {
			continue
		}
		for _, p := range s.Points {
			min = math.Min(min, p.X)
			max = math.Max(max, p.X)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// SetPalette replaces the colours used for series without an explicit colour.
func (d *Data) SetPalette(p []color.Color) {
	if len(p) == 0 {
		return
	}
	d.palette = append([]color.Color(nil), p...)
}

// ColorOf returns the serie colour, falling back to the palette by insertion position.
func (d *Data) ColorOf(name string) color.Color {
	if s, ok := d.series[name]; ok && s.Color != nil {
		return s.Color
	}
	for i, n := range d.order {
		if n == name {
			return d.palette[i%len(d.palette)]
		}
	}
	return d.palette[0]
}

// PaletteColor returns the i-th palette colour, wrapping around.
func (d *Data) PaletteColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return d.palette[i%len(d.palette)]
}

// Labels returns abscissa labels for n positions; without an abscissa serie positions are numbered from 1.
func (d *Data) Labels(n int, format func(float64) string) []string {
	labels := make([]string, n)
	var abs []float64
	if d.abscissa != "" {
		abs = d.Values(d.abscissa)
	}
	for i := range labels {
		if i < len(abs) {
			labels[i] = format(abs[i])
		} else {
			labels[i] = format(float64(i + 1))
		}
	}
	return labels
}
