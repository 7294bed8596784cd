// v1
// internal/render/render.go
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"thermoview/analysis/internal/core"
)

// Frame is one fully computed dashboard refresh, ready for display. The renderer
// only formats: every value here was derived by the analysis functions, and
// nothing is recomputed at display time. Nil trends mean the window is still too
// short for trend detection.
type Frame struct {
	Series       core.Series
	Ambient      float64
	LocalStats   core.StatSummary
	BatteryStats core.StatSummary
	LocalTrend   *core.Trend
	BatteryTrend *core.Trend
	Alerts       []core.Alert
	GeneratedAt  time.Time
}

// WriteText writes the frame as a fixed-layout text block.
func WriteText(w io.Writer, f Frame) error {
	latest, ok := f.Series.Latest()
	if !ok {
		_, err := fmt.Fprintln(w, "no samples yet")
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== thermoview %s (%d samples) ===\n", f.GeneratedAt.Format("15:04:05"), len(f.Series))
	fmt.Fprintf(&b, "latest %s  local %.1f°C  battery %.1f°C  ambient est %.1f°C\n",
		latest.Time, latest.LocalTemp, latest.BatteryTemp, f.Ambient)
	fmt.Fprintf(&b, "local   min %.1f  avg %.1f  max %.1f  %s\n",
		f.LocalStats.Min, f.LocalStats.Avg, f.LocalStats.Max, trendLabel(f.LocalTrend))
	fmt.Fprintf(&b, "battery min %.1f  avg %.1f  max %.1f  %s\n",
		f.BatteryStats.Min, f.BatteryStats.Avg, f.BatteryStats.Max, trendLabel(f.BatteryTrend))
	if len(f.Alerts) == 0 {
		b.WriteString("no active alerts\n")
	}
	for _, a := range f.Alerts {
		fmt.Fprintf(&b, "ALERT [%s] %s\n", a.ID, a.Message)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func trendLabel(t *core.Trend) string {
	if t == nil {
		return "trend n/a"
	}
	return fmt.Sprintf("trend %s %.1f", t.Direction, t.Magnitude)
}
