package output

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"signalpro/internal/signal"
)

// PNGOptions size the exported trajectory chart.
type PNGOptions struct {
	Width  int
	Height int
}

// WriteTrajectoryPNG renders a chart series as a standalone PNG: the
// historical line on indices -19..0 and the three forward bands, dashed,
// on 1..20.
func WriteTrajectoryPNG(path string, series *signal.ChartSeries, opts PNGOptions) error {
	if series == nil {
		return fmt.Errorf("png export: chart series is required")
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = 900
	}
	height := opts.Height
	if height <= 0 {
		height = 420
	}

	historyX := make([]float64, signal.SeriesLen)
	forwardX := make([]float64, signal.SeriesLen)
	for i := 0; i < signal.SeriesLen; i++ {
		historyX[i] = float64(i - signal.SeriesLen + 1)
		forwardX[i] = float64(i + 1)
	}

	accent := drawing.ColorFromHex("00ff88")
	if len(series.AccentColor) == 7 && series.AccentColor[0] == '#' {
		accent = drawing.ColorFromHex(series.AccentColor[1:])
	}
	bandColor := drawing.Color{R: 255, G: 71, B: 87, A: 120}

	dashed := []float64{5, 5}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "← now | prediction →",
		},
		YAxis: chart.YAxis{
			Name: "Price",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.2f")
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Historical",
				XValues: historyX,
				YValues: series.Historical,
				Style:   chart.Style{StrokeColor: accent, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Upper Band",
				XValues: forwardX,
				YValues: series.BandUpper,
				Style:   chart.Style{StrokeColor: bandColor, StrokeWidth: 1, StrokeDashArray: dashed},
			},
			chart.ContinuousSeries{
				Name:    "Base Case",
				XValues: forwardX,
				YValues: series.BandBase,
				Style:   chart.Style{StrokeColor: accent, StrokeWidth: 2, StrokeDashArray: dashed},
			},
			chart.ContinuousSeries{
				Name:    "Lower Band",
				XValues: forwardX,
				YValues: series.BandLower,
				Style:   chart.Style{StrokeColor: bandColor, StrokeWidth: 1, StrokeDashArray: dashed},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png %s: %w", path, err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("render png %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
