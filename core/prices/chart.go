// ABOUTME: Renders the 180-day price history series as a PNG chart
// ABOUTME: Daily prices in gray with the rolling average highlighted on top

package prices

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"runebot-api/core/domain"
	"runebot-api/pkg/utils/format"
)

var (
	dailyColor   = drawing.Color{R: 0x99, G: 0x99, B: 0x99, A: 255}
	averageColor = drawing.Color{R: 0x58, G: 0x65, B: 0xF2, A: 255}
)

// ChartRenderer draws price series charts to temporary PNG files.
type ChartRenderer struct {
	width  int
	height int
}

// NewChartRenderer creates a renderer at the default embed-friendly size.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{width: 900, height: 420}
}

// Render draws the series to a temporary PNG file and returns its path.
// The caller owns the file and removes it once consumed.
func (r *ChartRenderer) Render(series domain.PriceSeries) (string, error) {
	if len(series.Daily) == 0 {
		return "", fmt.Errorf("cannot render empty series")
	}

	dailyX, dailyY := splitPoints(series.Daily)
	avgX, avgY := splitPoints(series.Average)

	min, max, mean := summarize(dailyY)

	graph := chart.Chart{
		Title:  "Past 180 Days",
		Width:  r.width,
		Height: r.height,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 20, Bottom: 10},
		},
		// Timestamps add nothing at this scale; only the price axis is
		// labelled.
		XAxis: chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{
			Ticks: []chart.Tick{
				{Value: min, Label: format.Coins(min)},
				{Value: mean, Label: format.Coins(mean)},
				{Value: max, Label: format.Coins(max)},
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Daily",
				XValues: dailyX,
				YValues: dailyY,
				Style: chart.Style{
					StrokeColor: dailyColor,
					StrokeWidth: 1.0,
				},
			},
			chart.TimeSeries{
				Name:    "Average",
				XValues: avgX,
				YValues: avgY,
				Style: chart.Style{
					StrokeColor: averageColor,
					StrokeWidth: 2.5,
				},
			},
		},
	}

	file, err := os.CreateTemp("", "price-chart-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := graph.Render(chart.PNG, file); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to finalize chart file: %w", err)
	}
	return file.Name(), nil
}

func splitPoints(points []domain.PricePoint) ([]time.Time, []float64) {
	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Timestamp
		ys[i] = p.Price
	}
	return xs, ys
}

func summarize(values []float64) (min, max, mean float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(values))
}
