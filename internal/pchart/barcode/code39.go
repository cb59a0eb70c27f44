package barcode

import (
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code39"
)

// Code39 renders Code 39. Text is upper-cased before encoding.
type Code39 struct {
	renderer
}

// NewCode39 returns a Code 39 renderer; enableMod43 appends the mod 43 check character.
func NewCode39(basePath string, enableMod43 bool) *Code39 {
	c := &Code39{renderer: renderer{symbology: Symbology39, basePath: basePath, mod43: enableMod43}}
	c.encode = func(text string) (bc.Barcode, error) {
		return code39.Encode(strings.ToUpper(text), enableMod43, false)
	}
	return c
}
