package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	Sync()
	raw, err := os.ReadFile(filepath.Join(dir, "pchart.log"))
	require.NoError(t, err)
	return string(raw)
}

func TestInit_WritesFileLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Dir: dir, Level: "info"}))

	LogDebug("hidden below level")
	LogSuccess("Chart rendered", zap.String("type", "pie"), zap.Int64("duration_ms", 12))
	LogError("Failed to draw", zap.Error(errors.New("no data")), zap.Float64("ratio", 0.5))

	content := readLog(t, dir)
	assert.NotContains(t, content, "hidden below level")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO Chart rendered")
	assert.Contains(t, lines[0], `"type":"pie"`)
	assert.Contains(t, lines[0], `"duration_ms":12`)
	assert.Contains(t, lines[1], "ERROR Failed to draw")
	assert.Contains(t, lines[1], `"error":"no data"`)
	assert.Contains(t, lines[1], `"ratio":0.5`)
}

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init(Options{Dir: t.TempDir(), Level: "loud"}))
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

func TestExtractDuration(t *testing.T) {
	assert.Equal(t, int64(250), extractDuration([]zap.Field{zap.String("x", "y"), zap.Int64("duration_ms", 250)}))
	assert.Zero(t, extractDuration([]zap.Field{zap.Int32("duration_ms", 5)}))
	assert.Zero(t, extractDuration(nil))
}

func TestInit_WhileLogging(t *testing.T) {
	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					LogSuccess("tick", zap.Int64("duration_ms", 1))
					LogError("tock")
					RequestLogger("r").Debug("tack")
				}
			}
		}()
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, Init(Options{Dir: t.TempDir(), Level: "debug"}))
	}
	close(stop)
	wg.Wait()

	assert.NotNil(t, Logger())
	Sync()
}
