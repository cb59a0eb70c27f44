package factory

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"pchart/internal/pchart/barcode"
	"pchart/internal/pchart/canvas"
	"pchart/internal/pchart/charts"
	"pchart/internal/pchart/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChart_ResolvesEveryBuiltinType(t *testing.T) {
	f := New()
	for _, tag := range f.Types() {
		t.Run(tag, func(t *testing.T) {
			c, err := f.NewChart(tag, nil, nil)
			require.NoError(t, err)

			typeName := reflect.TypeOf(c).Elem().Name()
			assert.Equal(t, strings.ToUpper(tag[:1])+tag[1:], typeName)
			assert.Equal(t, tag, c.Kind())
		})
	}
}

func TestNewChart_CaseInsensitive(t *testing.T) {
	for _, tag := range []string{"pie", "Pie", "PIE"} {
		c, err := NewChart(tag, nil, nil)
		require.NoError(t, err)
		assert.IsType(t, &charts.Pie{}, c)
	}
}

func TestNewChart_Unknown(t *testing.T) {
	c, err := NewChart("nonexistent", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownChart)
	assert.Contains(t, err.Error(), "nonexistent")
	assert.Nil(t, c)
}

func TestNewChart_FreshInstancePerCall(t *testing.T) {
	a, err := NewChart("bar", nil, nil)
	require.NoError(t, err)
	b, err := NewChart("bar", nil, nil)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestNewChart_ForwardsHandles(t *testing.T) {
	d := NewData([]data.Point{{Y: 3}, {Y: 5}}, "A")
	img, err := NewImage(200, 150, nil, false)
	require.NoError(t, err)

	c, err := NewChart("pie", img, d)
	require.NoError(t, err)
	pie := c.(*charts.Pie)
	assert.Same(t, img, pie.Image())
	assert.Same(t, d, pie.Data())
	assert.NoError(t, c.Draw())
}

func TestNewChart_MissingHandlesFailOnDraw(t *testing.T) {
	for _, tag := range []string{"bubble", "pie", "scatter", "stock", "surface", "indicator"} {
		c, err := NewChart(tag, nil, nil)
		require.NoError(t, err, tag)
		assert.ErrorIs(t, c.Draw(), charts.ErrNoCanvas, tag)
	}
}

func TestRegister(t *testing.T) {
	f := New()
	calls := 0
	require.NoError(t, f.Register("Custom", func(img *canvas.Image, d *data.Data) charts.Chart {
		calls++
		return charts.NewBar(img, d)
	}))

	_, err := f.NewChart("custom", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, f.Types(), "custom")

	assert.Error(t, f.Register("", charts.NewBar))
	assert.Error(t, f.Register("nil", nil))

	_, err = Default.NewChart("custom", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownChart, "registration must not leak into other factories")
}

func TestNewData(t *testing.T) {
	empty := NewData(nil, "Serie1")
	assert.Equal(t, []string{"Serie1"}, empty.SerieNames())
	s, ok := empty.Serie("Serie1")
	require.True(t, ok)
	assert.Empty(t, s.Points)

	defaulted := NewData(nil, "")
	assert.Equal(t, []string{data.DefaultSerieName}, defaulted.SerieNames())

	pts := []data.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	d := NewData(pts, "A")
	assert.Equal(t, []string{"A"}, d.SerieNames())
	s, _ = d.Serie("A")
	assert.Equal(t, pts, s.Points)

	assert.NotSame(t, NewData(nil, ""), NewData(nil, ""))
}

func TestNewImage(t *testing.T) {
	opaque, err := NewImage(800, 600, nil, false)
	require.NoError(t, err)
	transparent, err := NewImage(800, 600, nil, true)
	require.NoError(t, err)

	assert.Equal(t, [2]int{800, 600}, [2]int{opaque.Width(), opaque.Height()})
	assert.Equal(t, [2]int{800, 600}, [2]int{transparent.Width(), transparent.Height()})
	assert.False(t, opaque.Transparent())
	assert.True(t, transparent.Transparent())

	d := data.New()
	withData, err := NewImage(10, 10, d, false)
	require.NoError(t, err)
	assert.Same(t, d, withData.Data())

	_, err = NewImage(0, 600, nil, false)
	assert.ErrorIs(t, err, canvas.ErrInvalidSize)
}

func TestNewBarcode(t *testing.T) {
	r39, err := NewBarcode("39", "", false)
	require.NoError(t, err)
	r128, err := NewBarcode("128", "", false)
	require.NoError(t, err)

	assert.IsType(t, &barcode.Code39{}, r39)
	assert.IsType(t, &barcode.Code128{}, r128)
	assert.NotEqual(t, reflect.TypeOf(r39), reflect.TypeOf(r128))

	mod43, err := NewBarcode("39", "res", true)
	require.NoError(t, err)
	assert.True(t, mod43.(*barcode.Code39).Mod43())
	assert.Equal(t, "res", mod43.(*barcode.Code39).BasePath())
}

func TestNewBarcode_Unsupported(t *testing.T) {
	for _, sym := range []string{"13", "", " 39", "0128"} {
		r, err := NewBarcode(sym, "", false)
		assert.ErrorIs(t, err, ErrUnsupportedSymbology, sym)
		assert.Nil(t, r)
	}
}

func TestConcurrentUse(t *testing.T) {
	f := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_ = f.Register("extra", charts.NewLine)
			}
			_, err := f.NewChart("bar", nil, nil)
			assert.NoError(t, err)
			_ = f.Types()
		}(i)
	}
	wg.Wait()
}
