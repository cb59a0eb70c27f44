// Package charts contains the chart variants the factory can instantiate.
//
// Every variant is built from an optional canvas and an optional data set and
// draws onto the canvas when Draw is called. Missing handles are reported by
// Draw, never by the constructor.
package charts

import (
	"errors"
	"fmt"

	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/data"
)

var (
	ErrNoCanvas   = errors.New("chart has no canvas")
	ErrNoData     = errors.New("chart has no data")
	ErrEmptySerie = errors.New("serie has no points")
)

// Chart is one renderable chart variant.
type Chart interface {
	Kind() string
	Draw() error
}

// Constructor is the shared constructor shape registered with the factory.
type Constructor func(img *canvas.Image, d *data.Data) Chart

// base carries the handles and the checks common to all variants.
type base struct {
	img   *canvas.Image
	data  *data.Data
	Title string
}

func (b *base) Image() *canvas.Image { return b.img }
func (b *base) Data() *data.Data     { return b.data }

func (b *base) SetTitle(title string) { b.Title = title }

// ready returns the data to plot: the chart's own, else the one attached to the canvas.
func (b *base) ready() (*data.Data, error) {
	if b.img == nil {
		return nil, ErrNoCanvas
	}
	d := b.data
	if d == nil {
		d = b.img.Data()
	}
	if d == nil {
		return nil, ErrNoData
	}
	return d, nil
}

// points returns the points of name or ErrEmptySerie.
func points(d *data.Data, name string) ([]data.Point, error) {
	s, ok := d.Serie(name)
	if !ok || len(s.Points) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySerie, name)
	}
	return s.Points, nil
}

// firstSerie returns the first data serie that has points.
func firstSerie(d *data.Data) (string, []data.Point, error) {
	for _, name := range d.DataSerieNames() {
		if s, _ := d.Serie(name); len(s.Points) > 0 {
			return name, s.Points, nil
		}
	}
	return "", nil, fmt.Errorf("%w: no serie with points", ErrEmptySerie)
}

// categoryScale builds a scale whose Y axis always includes zero.
func categoryScale(img *canvas.Image, d *data.Data, series ...string) (canvas.Scale, error) {
	min, max, ok := d.Bounds(series...)
	if !ok {
		return canvas.Scale{}, fmt.Errorf("%w: nothing to plot", ErrEmptySerie)
	}
	if min > 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return canvas.Scale{Y: canvas.NiceAxis(min, max, 5), Area: img.GraphArea()}, nil
}
