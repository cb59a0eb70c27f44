package data

import (
	"fmt"

	"pchart/internal/infra/fs"
)

// Load reads a JSON series file into a fresh Data.
func Load(path string) (*Data, error) {
	sf, err := fs.LoadSeries(path)
	if err != nil {
		return nil, err
	}
	d := New()
	for _, entry := range sf.Series {
		points := make([]Point, len(entry.Points))
		for i, p := range entry.Points {
			points[i] = Point{X: p.X, Y: p.Y}
		}
		s := d.AddSerie(entry.Name)
		s.Points = append(s.Points, points...)
		if entry.Description != "" {
			s.Description = entry.Description
		}
	}
	if sf.Abscissa != "" {
		if _, ok := d.Serie(sf.Abscissa); !ok {
			return nil, fmt.Errorf("abscissa serie %q not found in %s", sf.Abscissa, path)
		}
		d.SetAbscissa(sf.Abscissa)
	}
	return d, nil
}

// Save writes d as a JSON series file readable by Load.
func Save(d *Data, path string) error {
	sf := &fs.SeriesFile{Abscissa: d.abscissa}
	for _, name := range d.order {
		s := d.series[name]
		entry := fs.SeriesEntry{Name: s.Name, Points: make([]fs.PointEntry, len(s.Points))}
		if s.Description != s.Name {
			entry.Description = s.Description
		}
		for i, p := range s.Points {
			entry.Points[i] = fs.PointEntry{X: p.X, Y: p.Y}
		}
		sf.Series = append(sf.Series, entry)
	}
	return fs.SaveSeries(path, sf)
}
