// v1
// internal/render/chart.go
package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"thermoview/analysis/internal/core"
)

// ChartMinSamples is the shortest series the chart draws; a line needs two points.
const ChartMinSamples = 2

// WriteChartPNG renders the two measured series plus the derived ambient estimate
// over the sample index and writes the PNG to path. Series shorter than
// ChartMinSamples are skipped with ok=false and no error, so early frames don't
// fail the refresh.
func WriteChartPNG(path string, s core.Series) (bool, error) {
	if len(s) < ChartMinSamples {
		return false, nil
	}
	xs := make([]float64, len(s))
	local := make([]float64, len(s))
	battery := make([]float64, len(s))
	ambient := make([]float64, len(s))
	for i, smp := range s {
		xs[i] = float64(i)
		local[i] = smp.LocalTemp
		battery[i] = smp.BatteryTemp
		ambient[i] = core.EstimateAmbient(smp.LocalTemp, smp.BatteryTemp)
	}

	ch := chart.Chart{
		Title: "thermoview temperatures",
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "sample"},
		YAxis: chart.YAxis{Name: "°C"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "local", XValues: xs, YValues: local},
			chart.ContinuousSeries{Name: "battery", XValues: xs, YValues: battery},
			chart.ContinuousSeries{Name: "ambient est", XValues: xs, YValues: ambient},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return false, fmt.Errorf("chart render: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("chart write: %w", err)
	}
	return true, nil
}
