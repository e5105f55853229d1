package chart

import (
	"bytes"
	"fmt"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/shopsaathi/saathi/internal/kpi"
)

// TopProductsBar renders the top-products ranking as a PNG bar chart.
// An empty ranking is an error; callers omit the section instead.
func TopProductsBar(products []kpi.ProductRevenue) ([]byte, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("no products to chart")
	}

	bars := make([]gochart.Value, 0, len(products))
	for _, p := range products {
		bars = append(bars, gochart.Value{
			Label: p.Product,
			Value: float64(p.Revenue) / 100,
		})
	}

	graph := gochart.BarChart{
		Title:    "Top Products by Revenue",
		Width:    640,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}

	return buf.Bytes(), nil
}

// DailyRevenueLine renders the daily revenue series as a PNG line chart.
// The chart library needs at least two points to draw a line.
func DailyRevenueLine(series []kpi.DayRevenue) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least two days of data, got %d", len(series))
	}

	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))

	for _, d := range series {
		xs = append(xs, d.Date)
		ys = append(ys, float64(d.Revenue)/100)
	}

	graph := gochart.Chart{
		Title:  "Revenue by Day",
		Width:  640,
		Height: 360,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "Revenue",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}

	return buf.Bytes(), nil
}
