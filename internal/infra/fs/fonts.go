package fs

import (
	"os"
	"path/filepath"

	logging "pchart/internal/infra/log"

	"go.uber.org/zap"
)

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// ResolveFont returns the first candidate that exists as a regular file.
func ResolveFont(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		expanded := ExpandHome(candidate)
		info, err := os.Stat(expanded)
		if err != nil || info.IsDir() {
			continue
		}
		logging.LogDebug("Resolved font", zap.String("path", expanded), zap.Int64("size", info.Size()))
		return expanded, true
	}
	logging.LogWarn("No font found, using built-in face", zap.Int("paths_checked", len(candidates)))
	return "", false
}

// FontsIn lists *.ttf and *.otf files directly under dir/fonts.
func FontsIn(dir string) []string {
	if dir == "" {
		return nil
	}
	var out []string
	for _, pattern := range []string{"*.ttf", "*.otf"} {
		matches, _ := filepath.Glob(filepath.Join(dir, "fonts", pattern))
		out = append(out, matches...)
	}
	return out
}
