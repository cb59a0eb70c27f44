package commands

// Command rendering one chart from a JSON series file to PNG
// Optionally publishes the result to Telegram

import (
	"fmt"
	"path/filepath"
	"time"

	logging "pchart/internal/infra/log"
	"pchart/internal/pchart/data"
	"pchart/internal/pchart/factory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderFlags struct {
	chartType   string
	dataPath    string
	width       int
	height      int
	transparent bool
	out         string
	title       string
	publish     bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart from a series file",
	Long:  `Render a chart of the given type from a JSON series file and save it as PNG.`,
	Example: `  pchart render --type pie --data series.json --out pie.png
  pchart render --type stock --data ohlc.json --width 1024 --height 512 --publish`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.chartType, "type", "", "Chart type (see `pchart types`)")
	f.StringVar(&renderFlags.dataPath, "data", "", "Path to the JSON series file")
	f.IntVar(&renderFlags.width, "width", 0, "Canvas width (default render.width)")
	f.IntVar(&renderFlags.height, "height", 0, "Canvas height (default render.height)")
	f.BoolVar(&renderFlags.transparent, "transparent", false, "Transparent background (default render.transparent)")
	f.StringVar(&renderFlags.out, "out", "", "Output PNG path (default <render.output_dir>/<type>_<time>.png)")
	f.StringVar(&renderFlags.title, "title", "", "Chart title")
	f.BoolVar(&renderFlags.publish, "publish", false, "Publish the PNG to the configured Telegram chat")
	_ = renderCmd.MarkFlagRequired("type")
	_ = renderCmd.MarkFlagRequired("data")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	width, height, transparent := cfg.Render.Width, cfg.Render.Height, cfg.Render.Transparent
	if renderFlags.width > 0 {
		width = renderFlags.width
	}
	if renderFlags.height > 0 {
		height = renderFlags.height
	}
	if cmd.Flags().Changed("transparent") {
		transparent = renderFlags.transparent
	}

	d, err := data.Load(renderFlags.dataPath)
	if err != nil {
		logging.LogError("Failed to load series", zap.String("path", renderFlags.dataPath), zap.Error(err))
		return err
	}

	img, err := factory.NewImage(width, height, d, transparent)
	if err != nil {
		return err
	}
	img.SetFontPaths(cfg.Render.FontPaths)

	chart, err := factory.NewChart(renderFlags.chartType, img, d)
	if err != nil {
		return err
	}
	if renderFlags.title != "" {
		if t, ok := chart.(interface{ SetTitle(string) }); ok {
			t.SetTitle(renderFlags.title)
		}
	}

	start := time.Now()
	if err := chart.Draw(); err != nil {
		logging.LogError("Failed to draw chart", zap.String("type", chart.Kind()), zap.Error(err))
		return fmt.Errorf("draw %s chart: %w", chart.Kind(), err)
	}

	out := renderFlags.out
	if out == "" {
		out = filepath.Join(cfg.Render.OutputDir, fmt.Sprintf("%s_%s.png", chart.Kind(), time.Now().Format("20060102_150405")))
	}
	if err := img.SavePNG(out); err != nil {
		return err
	}

	logging.LogSuccess("Chart rendered",
		zap.String("type", chart.Kind()),
		zap.String("path", out),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if renderFlags.publish {
		return publishImage(cfg, out, renderFlags.title)
	}
	return nil
}
