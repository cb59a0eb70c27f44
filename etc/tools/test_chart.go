package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pchart/internal/pchart/data"
	"pchart/internal/pchart/factory"
)

// go run etc/tools/test_chart.go
// in etc/charts/<type>.png, one file per registered chart type
func main() {
	fmt.Println("Generating test charts...")

	sample := data.New()
	sample.AddPoints([]data.Point{{X: 1, Y: 10}, {X: 2, Y: 25}, {X: 3, Y: 15}, {X: 4, Y: 30}, {X: 5, Y: 22}}, "Open")
	sample.AddPoints([]data.Point{{X: 1, Y: 20}, {X: 2, Y: 18}, {X: 3, Y: 22}, {X: 4, Y: 35}, {X: 5, Y: 19}}, "Close")
	sample.AddPoints([]data.Point{{X: 1, Y: 5}, {X: 2, Y: 12}, {X: 3, Y: 10}, {X: 4, Y: 25}, {X: 5, Y: 15}}, "Min")
	sample.AddPoints([]data.Point{{X: 1, Y: 28}, {X: 2, Y: 30}, {X: 3, Y: 26}, {X: 4, Y: 40}, {X: 5, Y: 27}}, "Max")

	// the saved file doubles as input for `pchart render --data`
	seriesPath := filepath.Join("etc", "charts", "sample_series.json")
	if err := data.Save(sample, seriesPath); err != nil {
		fmt.Printf("Error saving sample series: %v\n", err)
		os.Exit(1)
	}
	d, err := data.Load(seriesPath)
	if err != nil {
		fmt.Printf("Error loading sample series: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sample series written: %s\n", seriesPath)

	failed := 0
	for _, tag := range factory.Default.Types() {
		img, err := factory.NewImage(800, 600, d, false)
		if err != nil {
			fmt.Printf("Error creating canvas: %v\n", err)
			os.Exit(1)
		}
		chart, err := factory.NewChart(tag, img, d)
		if err == nil {
			err = chart.Draw()
		}
		path := filepath.Join("etc", "charts", tag+".png")
		if err == nil {
			err = img.SavePNG(path)
		}
		if err != nil {
			fmt.Printf("Error generating %s chart: %v\n", tag, err)
			failed++
			continue
		}
		fmt.Printf("Chart generated successfully: %s\n", path)
	}

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("Open the files to see the result!")
}
