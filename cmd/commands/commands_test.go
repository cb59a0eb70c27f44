package commands

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pchart/internal/infra/fs"
	"pchart/internal/pchart/factory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PCHART_LOG_DIR", t.TempDir())
	t.Setenv("PCHART_LOG_CONSOLE", "false")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	for _, tag := range factory.Default.Types() {
		assert.Contains(t, out, tag)
	}
	assert.Contains(t, out, "39, 128")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	series := filepath.Join(dir, "series.json")
	require.NoError(t, fs.SaveSeries(series, &fs.SeriesFile{
		Series: []fs.SeriesEntry{{
			Name:   "Volume",
			Points: []fs.PointEntry{{X: 1, Y: 12}, {X: 2, Y: 30}, {X: 3, Y: 21}},
		}},
	}))
	out := filepath.Join(dir, "charts", "bar.png")

	stdout, err := run(t, "render", "--type", "BAR", "--data", series, "--width", "320", "--height", "240", "--title", "Volume", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, out, strings.TrimSpace(stdout))

	w, h := decodePNG(t, out)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestRenderCommand_UnknownType(t *testing.T) {
	dir := t.TempDir()
	series := filepath.Join(dir, "series.json")
	require.NoError(t, fs.SaveSeries(series, &fs.SeriesFile{
		Series: []fs.SeriesEntry{{Name: "A", Points: []fs.PointEntry{{Y: 1}}}},
	}))

	_, err := run(t, "render", "--type", "donut", "--data", series, "--out", filepath.Join(dir, "x.png"))
	assert.True(t, errors.Is(err, factory.ErrUnknownChart))
	assert.NoFileExists(t, filepath.Join(dir, "x.png"))
}

func TestRenderCommand_PublishNeedsTelegram(t *testing.T) {
	dir := t.TempDir()
	series := filepath.Join(dir, "series.json")
	require.NoError(t, fs.SaveSeries(series, &fs.SeriesFile{
		Series: []fs.SeriesEntry{{Name: "A", Points: []fs.PointEntry{{Y: 1}, {Y: 2}}}},
	}))

	_, err := run(t, "render", "--type", "line", "--data", series, "--out", filepath.Join(dir, "line.png"), "--publish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.FileExists(t, filepath.Join(dir, "line.png"))

	// reset for later tests sharing rootCmd
	renderFlags.publish = false
}

func TestBarcodeCommand(t *testing.T) {
	dir := t.TempDir()
	for _, sym := range []string{"39", "128"} {
		out := filepath.Join(dir, "code"+sym+".png")
		stdout, err := run(t, "barcode", "--symbology", sym, "--text", "PCHART42", "--caption", "--out", out)
		require.NoError(t, err, sym)
		assert.Equal(t, out, strings.TrimSpace(stdout))

		w, h := decodePNG(t, out)
		assert.Greater(t, w, 2*barcodeMargin)
		assert.Greater(t, h, 2*barcodeMargin+30)
	}
}

func TestBarcodeCommand_UnsupportedSymbology(t *testing.T) {
	_, err := run(t, "barcode", "--symbology", "13", "--text", "123", "--out", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, factory.ErrUnsupportedSymbology)
}
