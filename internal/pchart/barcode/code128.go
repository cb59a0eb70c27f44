package barcode

import (
	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Code128 renders Code 128. The mod 43 flag is kept for symmetry with Code39 and has no effect.
type Code128 struct {
	renderer
}

func NewCode128(basePath string, enableMod43 bool) *Code128 {
	c := &Code128{renderer: renderer{symbology: Symbology128, basePath: basePath, mod43: enableMod43}}
	c.encode = func(text string) (bc.Barcode, error) {
		return code128.Encode(text)
	}
	return c
}
