// Package canvas is the drawable surface every chart variant and barcode renders onto.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"pchart/internal/infra/fs"
	logging "pchart/internal/infra/log"
	"pchart/internal/pchart/data"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var ErrInvalidSize = errors.New("canvas size must be positive")

var (
	BackgroundColor = color.White
	ForegroundColor = color.RGBA{50, 50, 50, 255}
	GridColor       = color.RGBA{220, 220, 220, 255}
)

const (
	DefaultFontSize = 12.0
	TitleFontSize   = 16.0

	marginLeft   = 60.0
	marginTop    = 40.0
	marginRight  = 20.0
	marginBottom = 40.0
)

// Rect is an axis aligned area in pixels; (X1,Y1) top-left, (X2,Y2) bottom-right.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func (r Rect) Width() float64  { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Image wraps a gg context with the chart bookkeeping variants need.
type Image struct {
	width       int
	height      int
	transparent bool
	data        *data.Data
	dc          *gg.Context
	graphArea   Rect

	fontPaths    []string
	fontPath     string
	fontResolved bool
	faces        map[float64]font.Face
}

// New allocates a width x height canvas. d may be nil.
// Opaque canvases are filled with BackgroundColor, transparent ones are left at alpha 0.
func New(width, height int, d *data.Data, transparent bool) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dc := gg.NewContext(width, height)
	if !transparent {
		dc.SetColor(BackgroundColor)
		dc.Clear()
	}

	img := &Image{
		width:       width,
		height:      height,
		transparent: transparent,
		data:        d,
		dc:          dc,
		faces:       make(map[float64]font.Face),
	}
	img.graphArea = img.defaultGraphArea()
	return img, nil
}

func (img *Image) defaultGraphArea() Rect {
	area := Rect{X1: marginLeft, Y1: marginTop, X2: float64(img.width) - marginRight, Y2: float64(img.height) - marginBottom}
	// tiny canvases (barcodes, thumbnails) get the whole surface
	if area.Width() <= 0 || area.Height() <= 0 {
		area = Rect{X1: 0, Y1: 0, X2: float64(img.width), Y2: float64(img.height)}
	}
	return area
}

func (img *Image) Width() int              { return img.width }
func (img *Image) Height() int             { return img.height }
func (img *Image) Transparent() bool       { return img.transparent }
func (img *Image) Data() *data.Data        { return img.data }
func (img *Image) SetData(d *data.Data)    { img.data = d }
func (img *Image) Context() *gg.Context    { return img.dc }
func (img *Image) Image() image.Image      { return img.dc.Image() }
func (img *Image) At(x, y int) color.Color { return img.dc.Image().At(x, y) }

func (img *Image) GraphArea() Rect { return img.graphArea }

// SetGraphArea restricts where charts plot their data. Coordinates are swapped if given reversed.
func (img *Image) SetGraphArea(x1, y1, x2, y2 float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	img.graphArea = Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// SetFontPaths sets the candidate font files for text; the first existing one is used.
func (img *Image) SetFontPaths(paths []string) {
	img.fontPaths = append([]string(nil), paths...)
	img.fontResolved = false
	img.fontPath = ""
	img.faces = make(map[float64]font.Face)
}

// SetFontSize selects the face used by subsequent text calls.
func (img *Image) SetFontSize(size float64) {
	img.dc.SetFontFace(img.face(size))
}

func (img *Image) face(size float64) font.Face {
	if f, ok := img.faces[size]; ok {
		return f
	}
	if !img.fontResolved {
		img.fontPath, _ = fs.ResolveFont(img.fontPaths)
		img.fontResolved = true
	}

	var f font.Face = basicfont.Face7x13
	if img.fontPath != "" {
		loaded, err := gg.LoadFontFace(img.fontPath, size)
		if err != nil {
			logging.LogWarn("Font file exists but failed to load", zap.String("path", img.fontPath), zap.Error(err))
		} else {
			f = loaded
		}
	}
	img.faces[size] = f
	return f
}

// DrawText draws s anchored at (x,y); ax, ay in [0,1] as in gg.DrawStringAnchored.
func (img *Image) DrawText(s string, x, y, size float64, c color.Color, ax, ay float64) {
	img.SetFontSize(size)
	img.dc.SetColor(c)
	img.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// MeasureText returns the width and height of s at size.
func (img *Image) MeasureText(s string, size float64) (float64, float64) {
	img.SetFontSize(size)
	return img.dc.MeasureString(s)
}

// DrawTitle centres title above the graph area.
func (img *Image) DrawTitle(title string) {
	if title == "" {
		return
	}
	area := img.graphArea
	img.DrawText(title, area.X1+area.Width()/2, area.Y1/2, TitleFontSize, ForegroundColor, 0.5, 0.5)
}

// DrawLegend lists names with colour boxes in the top-right corner.
func (img *Image) DrawLegend(names []string, colorOf func(string) color.Color) {
	const box = 10.0
	y := 8.0
	for _, name := range names {
		w, _ := img.MeasureText(name, DefaultFontSize)
		x := float64(img.width) - marginRight - w - box - 6
		img.dc.SetColor(colorOf(name))
		img.dc.DrawRectangle(x, y, box, box)
		img.dc.Fill()
		img.DrawText(name, x+box+6, y+box/2, DefaultFontSize, ForegroundColor, 0, 0.5)
		y += box + 6
	}
}

// EncodePNG writes the canvas as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return img.dc.EncodePNG(w)
}

// SavePNG writes the canvas to path, creating directories as needed.
func (img *Image) SavePNG(path string) error {
	if err := fs.SavePNG(path, img.EncodePNG); err != nil {
		return err
	}
	logging.LogInfo("Image saved",
		zap.String("path", path),
		zap.Int("width", img.width),
		zap.Int("height", img.height))
	return nil
}
