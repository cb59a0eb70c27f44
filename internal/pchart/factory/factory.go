// Package factory creates charts, data sets, canvases and barcode renderers by name.
//
// Chart types are looked up in a table filled at construction; an unknown name
// is reported as ErrUnknownChart before anything is allocated. Every call
// returns a fresh object. The factory keeps no other state and never logs.
package factory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"pchart/internal/pchart/barcode"
	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/charts"
	"pchart/internal/pchart/data"
)

var (
	ErrUnknownChart         = errors.New("unknown chart type")
	ErrUnsupportedSymbology = errors.New("unsupported barcode symbology")
)

// Factory maps chart type tags to constructors. Safe for concurrent use.
type Factory struct {
	mu     sync.RWMutex
	charts map[string]charts.Constructor
}

// New returns a factory with the built-in chart types registered.
func New() *Factory {
	f := &Factory{charts: make(map[string]charts.Constructor)}
	for tag, ctor := range map[string]charts.Constructor{
		"bar":       charts.NewBar,
		"bubble":    charts.NewBubble,
		"indicator": charts.NewIndicator,
		"line":      charts.NewLine,
		"pie":       charts.NewPie,
		"radar":     charts.NewRadar,
		"scatter":   charts.NewScatter,
		"stock":     charts.NewStock,
		"surface":   charts.NewSurface,
	} {
		f.charts[tag] = ctor
	}
	return f
}

// Register adds or replaces the constructor for chartType. Tags are case-insensitive.
func (f *Factory) Register(chartType string, ctor charts.Constructor) error {
	if chartType == "" {
		return fmt.Errorf("chart type is empty")
	}
	if ctor == nil {
		return fmt.Errorf("nil constructor for chart type %q", chartType)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.charts[strings.ToLower(chartType)] = ctor
	return nil
}

// Types returns the registered chart tags, sorted.
func (f *Factory) Types() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.charts))
	for tag := range f.charts {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// NewChart builds the chart registered under chartType. img and d are optional
// and forwarded as given; variants that need them fail in Draw when absent.
func (f *Factory) NewChart(chartType string, img *canvas.Image, d *data.Data) (charts.Chart, error) {
	f.mu.RLock()
	ctor, ok := f.charts[strings.ToLower(chartType)]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, chartType)
	}
	return ctor(img, d), nil
}

// NewData returns a data set holding points under serieName ("" means data.DefaultSerieName).
// The serie is created even when points is empty.
func (f *Factory) NewData(points []data.Point, serieName string) *data.Data {
	d := data.New()
	d.AddSerie(serieName)
	if len(points) > 0 {
		d.AddPoints(points, serieName)
	}
	return d
}

// NewImage returns a width x height canvas. Size validation is left to the canvas.
func (f *Factory) NewImage(width, height int, d *data.Data, transparent bool) (*canvas.Image, error) {
	return canvas.New(width, height, d, transparent)
}

// NewBarcode returns the renderer for symbology "39" or "128".
// enableMod43 only affects Code 39 but is passed to both.
func (f *Factory) NewBarcode(symbology, basePath string, enableMod43 bool) (barcode.Renderer, error) {
	switch symbology {
	case barcode.Symbology39:
		return barcode.NewCode39(basePath, enableMod43), nil
	case barcode.Symbology128:
		return barcode.NewCode128(basePath, enableMod43), nil
	}
	return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnsupportedSymbology, symbology, barcode.Symbology39, barcode.Symbology128)
}

// Default is the factory behind the package level helpers.
var Default = New()

func NewChart(chartType string, img *canvas.Image, d *data.Data) (charts.Chart, error) {
	return Default.NewChart(chartType, img, d)
}

func NewData(points []data.Point, serieName string) *data.Data {
	return Default.NewData(points, serieName)
}

func NewImage(width, height int, d *data.Data, transparent bool) (*canvas.Image, error) {
	return Default.NewImage(width, height, d, transparent)
}

func NewBarcode(symbology, basePath string, enableMod43 bool) (barcode.Renderer, error) {
	return Default.NewBarcode(symbology, basePath, enableMod43)
}
