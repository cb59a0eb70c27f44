package barcode

import (
	"os"
	"path/filepath"
	"testing"

	"pchart/internal/pchart/canvas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestSymbology(t *testing.T) {
	assert.Equal(t, "39", NewCode39("", false).Symbology())
	assert.Equal(t, "128", NewCode128("", false).Symbology())
}

func TestCode39_Mod43AddsCheckCharacter(t *testing.T) {
	plain, _, err := NewCode39("", false).Size("PCHART", Options{})
	require.NoError(t, err)
	checked, _, err := NewCode39("", true).Size("PCHART", Options{})
	require.NoError(t, err)
	assert.Greater(t, checked, plain)
}

func TestCode39_UpperCasesText(t *testing.T) {
	lower, _, err := NewCode39("", false).Size("abc", Options{})
	require.NoError(t, err)
	upper, _, err := NewCode39("", false).Size("ABC", Options{})
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCode128_IgnoresMod43(t *testing.T) {
	a, _, err := NewCode128("", false).Size("Hello 128", Options{})
	require.NoError(t, err)
	b, _, err := NewCode128("", true).Size("Hello 128", Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, NewCode128("", true).Mod43())
}

func TestSize_OptionsAndCaption(t *testing.T) {
	r := NewCode128("", false)
	w1, h1, err := r.Size("42", Options{Height: 50})
	require.NoError(t, err)
	w2, h2, err := r.Size("42", Options{Height: 50, ModuleWidth: 2, ShowCaption: true, CaptionSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 50, h1)
	assert.Equal(t, 2*w1, w2)
	assert.Equal(t, 64, h2)
}

func TestInvalidInput(t *testing.T) {
	_, _, err := NewCode39("", false).Size("", Options{})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, _, err = NewCode39("", false).Size("A~B", Options{})
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestDraw(t *testing.T) {
	for _, r := range []Renderer{NewCode39("", true), NewCode128("", false)} {
		t.Run(r.Symbology(), func(t *testing.T) {
			img, err := canvas.New(400, 120, nil, false)
			require.NoError(t, err)

			opts := Options{Height: 40, ModuleWidth: 2, ShowCaption: true}
			require.NoError(t, r.Draw(img, "CODE42", 10, 10, opts))

			w, _, err := r.Size("CODE42", opts)
			require.NoError(t, err)
			dark := 0
			for x := 10; x < 10+w; x++ {
				if red, _, _, _ := img.At(x, 20).RGBA(); red < 0x8000 {
					dark++
				}
			}
			assert.Greater(t, dark, 0)
			assert.Less(t, dark, w)

			red, _, _, _ := img.At(5, 5).RGBA()
			assert.Equal(t, uint32(0xffff), red, "outside the symbol stays background")
		})
	}
}

func TestDraw_Errors(t *testing.T) {
	r := NewCode128("", false)
	assert.ErrorIs(t, r.Draw(nil, "X", 0, 0, Options{}), ErrNilCanvas)

	img, err := canvas.New(20, 20, nil, false)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Draw(img, "THIS DOES NOT FIT", 0, 0, Options{}), ErrDoesNotFit)
	assert.ErrorIs(t, r.Draw(img, "X", -1, 0, Options{}), ErrDoesNotFit)
}

func TestCaptionFace_FallsBackWithoutFonts(t *testing.T) {
	r := NewCode39(t.TempDir(), false)
	assert.NotNil(t, r.captionFace(10))
	assert.Same(t, r.captionFace(10), r.captionFace(12))
}

func TestCaptionFace_OnePerSize(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "fonts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "fonts", "Go-Regular.ttf"), goregular.TTF, 0644))

	r := NewCode128(base, false)
	small := r.captionFace(10)
	large := r.captionFace(20)
	assert.NotSame(t, small, large)
	assert.Greater(t, int(large.Metrics().Height), int(small.Metrics().Height))
	assert.Same(t, small, r.captionFace(10))

	img, err := canvas.New(400, 120, nil, false)
	require.NoError(t, err)
	require.NoError(t, r.Draw(img, "A1", 10, 10, Options{ShowCaption: true, CaptionSize: 10}))
	require.NoError(t, r.Draw(img, "A1", 10, 60, Options{ShowCaption: true, CaptionSize: 20}))
	assert.Len(t, r.faces, 2)
}
