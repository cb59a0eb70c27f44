package fs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SavePNG creates path (and its directory), streams encode into it and
// removes the file again if nothing was written.
func SavePNG(path string, encode func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return fmt.Errorf("image file is empty after rendering: %s", path)
	}
	return nil
}

// SeriesFile is the on-disk JSON shape of a data set.
type SeriesFile struct {
	Abscissa string        `json:"abscissa,omitempty"`
	Series   []SeriesEntry `json:"series"`
}

type SeriesEntry struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Points      []PointEntry `json:"points"`
}

type PointEntry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadSeries reads a SeriesFile from a JSON file.
func LoadSeries(path string) (*SeriesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}

	var sf SeriesFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal series file: %w", err)
	}
	if len(sf.Series) == 0 {
		return nil, fmt.Errorf("series file %s contains no series", path)
	}
	return &sf, nil
}

// SaveSeries writes sf as indented JSON.
func SaveSeries(path string, sf *SeriesFile) error {
	jsonData, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal series file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create series directory: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to save series file: %w", err)
	}
	return nil
}
