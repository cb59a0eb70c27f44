// Package barcode renders Code 39 and Code 128 symbols onto a canvas.
// Symbol encoding is done by github.com/boombuler/barcode; this package sizes,
// places and captions the result.
package barcode

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"pchart/internal/infra/fs"
	logging "pchart/internal/infra/log"
	"pchart/internal/pchart/canvas"

	bc "github.com/boombuler/barcode"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	Symbology39  = "39"
	Symbology128 = "128"

	DefaultHeight      = 30
	DefaultModuleWidth = 1
	DefaultCaptionSize = 10
)

var (
	ErrEmptyText   = errors.New("barcode text is empty")
	ErrInvalidText = errors.New("text cannot be encoded")
	ErrDoesNotFit  = errors.New("barcode does not fit the canvas")
	ErrNilCanvas   = errors.New("barcode needs a canvas")
)

// Renderer draws one barcode symbology.
type Renderer interface {
	Symbology() string
	Size(text string, opts Options) (width, height int, err error)
	Draw(img *canvas.Image, text string, x, y int, opts Options) error
}

// Options controls the rendered geometry. Zero values take defaults.
type Options struct {
	Height      int     // bar height in pixels
	ModuleWidth int     // width of the narrowest bar in pixels
	ShowCaption bool    // print the encoded text under the bars
	CaptionSize float64 // points
	Color       color.Color
}

func (o Options) withDefaults() Options {
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.ModuleWidth <= 0 {
		o.ModuleWidth = DefaultModuleWidth
	}
	if o.CaptionSize <= 0 {
		o.CaptionSize = DefaultCaptionSize
	}
	if o.Color == nil {
		o.Color = color.Black
	}
	return o
}

// renderer holds what both symbologies share; encode is symbology specific.
type renderer struct {
	symbology string
	basePath  string
	mod43     bool
	encode    func(text string) (bc.Barcode, error)

	mu           sync.Mutex
	fontPath     string
	fontResolved bool
	faces        map[float64]font.Face
}

func (r *renderer) Symbology() string { return r.symbology }

// BasePath is the resource directory captions load their font from.
func (r *renderer) BasePath() string { return r.basePath }

// Mod43 reports whether the mod 43 check digit was requested.
func (r *renderer) Mod43() bool { return r.mod43 }

func (r *renderer) symbol(text string) (bc.Barcode, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	code, err := r.encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: code %s: %v", ErrInvalidText, r.symbology, err)
	}
	return code, nil
}

func (r *renderer) Size(text string, opts Options) (int, int, error) {
	code, err := r.symbol(text)
	if err != nil {
		return 0, 0, err
	}
	opts = opts.withDefaults()
	w := code.Bounds().Dx() * opts.ModuleWidth
	h := opts.Height
	if opts.ShowCaption {
		h += int(opts.CaptionSize) + 4
	}
	return w, h, nil
}

func (r *renderer) Draw(img *canvas.Image, text string, x, y int, opts Options) error {
	if img == nil {
		return ErrNilCanvas
	}
	code, err := r.symbol(text)
	if err != nil {
		return err
	}
	opts = opts.withDefaults()

	w := code.Bounds().Dx() * opts.ModuleWidth
	if x < 0 || y < 0 || x+w > img.Width() || y+opts.Height > img.Height() {
		return fmt.Errorf("%w: %dx%d at (%d,%d) on %dx%d", ErrDoesNotFit, w, opts.Height, x, y, img.Width(), img.Height())
	}

	scaled, err := bc.Scale(code, w, opts.Height)
	if err != nil {
		return fmt.Errorf("failed to scale barcode: %w", err)
	}

	dc := img.Context()
	bounds := scaled.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			// only dark modules are painted so transparent canvases stay transparent
			if lum, _, _, _ := scaled.At(px, py).RGBA(); lum < 0x8000 {
				dc.SetColor(opts.Color)
				dc.SetPixel(x+px-bounds.Min.X, y+py-bounds.Min.Y)
			}
		}
	}

	if opts.ShowCaption {
		dc.SetFontFace(r.captionFace(opts.CaptionSize))
		dc.SetColor(opts.Color)
		dc.DrawStringAnchored(code.Content(), float64(x)+float64(w)/2, float64(y+opts.Height)+2, 0.5, 1)
	}
	return nil
}

func (r *renderer) captionFace(size float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[size]; ok {
		return f
	}
	if r.faces == nil {
		r.faces = make(map[float64]font.Face)
	}
	if !r.fontResolved {
		r.fontPath, _ = fs.ResolveFont(fs.FontsIn(r.basePath))
		r.fontResolved = true
	}

	var f font.Face = basicfont.Face7x13
	if r.fontPath != "" {
		loaded, err := gg.LoadFontFace(r.fontPath, size)
		if err != nil {
			logging.LogWarn("Failed to load barcode caption font", zap.String("path", r.fontPath), zap.Error(err))
		} else {
			f = loaded
		}
	}
	r.faces[size] = f
	return f
}
