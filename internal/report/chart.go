package report

import (
	"bytes"

	"github.com/aaronromeo/wodtimer/internal/rounds"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	barColor  = drawing.ColorFromHex("2f6f4f")
	textColor = drawing.ColorFromHex("333333")
)

// Chart renders round durations as a PNG bar chart.
func Chart(results []rounds.RoundResult) ([]byte, error) {
	if len(results) == 0 {
		return renderNoData()
	}

	bars := make([]chart.Value, len(results))
	lo, hi := 0.0, 1.0
	for i, r := range results {
		v := float64(r.DurationSeconds)
		lo = min(lo, v)
		hi = max(hi, v)
		bars[i] = chart.Value{
			Label: r.Label,
			Value: v,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		}
	}

	graph := chart.BarChart{
		Title:        "Round Time",
		Width:        max(400, 80*len(results)),
		Height:       400,
		BarWidth:     40,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return rounds.FormatTime(int(f))
				}
				return ""
			},
			Style: chart.Style{FontColor: textColor},
		},
		Bars: bars,
	}

	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderNoData draws a single empty bar; go-chart refuses to render a chart
// without series or bars.
func renderNoData() ([]byte, error) {
	graph := chart.BarChart{
		Title:    "No rounds to chart",
		Width:    400,
		Height:   200,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Bars:  []chart.Value{{Label: "-", Value: 0}},
	}
	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
