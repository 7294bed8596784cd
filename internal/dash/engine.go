// v1
// internal/dash/engine.go
package dash

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"thermoview/analysis/internal/config"
	"thermoview/analysis/internal/core"
	"thermoview/analysis/internal/feed"
	"thermoview/analysis/internal/render"
	"thermoview/analysis/internal/store"
)

// Engine drives the dashboard refresh: each tick pulls one sample from the feed,
// appends it to the window, recomputes every derived value from a snapshot, and
// hands the frame to the renderer. The analysis itself is stateless; the engine
// only owns cadence and wiring.
type Engine struct {
	cfg        *config.AppConfig
	lg         *slog.Logger
	win        *store.Window
	src        feed.Source
	out        io.Writer
	frames     int64
	lastAlerts int
}

func New(cfg *config.AppConfig, lg *slog.Logger, win *store.Window, src feed.Source, out io.Writer) *Engine {
	return &Engine{cfg: cfg, lg: lg, win: win, src: src, out: out}
}

// Run ticks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	t := time.NewTicker(e.cfg.RefreshInterval)
	defer t.Stop()
	e.lg.Info("engine start", "interval", e.cfg.RefreshInterval, "window", e.cfg.WindowSize, "feed", e.cfg.Feed)
	for {
		select {
		case <-ctx.Done():
			e.lg.Info("engine stop", "frames", e.frames)
			return
		case now := <-t.C:
			if err := e.Refresh(now); err != nil {
				e.lg.Error("refresh", "error", err)
			}
		}
	}
}

// Refresh performs one full dashboard recomputation for the tick at now.
func (e *Engine) Refresh(now time.Time) error {
	smp, err := e.src.Next(now)
	if err != nil {
		return err
	}
	e.win.Append(smp)
	series := e.win.Snapshot()

	localStats, err := core.ComputeStats(series, core.FieldLocal)
	if err != nil {
		return err
	}
	batteryStats, err := core.ComputeStats(series, core.FieldBattery)
	if err != nil {
		return err
	}
	alerts, err := core.EvaluateAlerts(series)
	if err != nil {
		return err
	}

	frame := render.Frame{
		Series:       series,
		Ambient:      core.EstimateAmbient(smp.LocalTemp, smp.BatteryTemp),
		LocalStats:   localStats,
		BatteryStats: batteryStats,
		Alerts:       alerts,
		GeneratedAt:  now,
	}
	// trend stays absent until the window holds two samples
	if lt, err := core.ComputeTrend(series, core.FieldLocal); err == nil {
		frame.LocalTrend = &lt
	} else if !errors.Is(err, core.ErrInsufficientData) {
		return err
	}
	if bt, err := core.ComputeTrend(series, core.FieldBattery); err == nil {
		frame.BatteryTrend = &bt
	} else if !errors.Is(err, core.ErrInsufficientData) {
		return err
	}

	if err := render.WriteText(e.out, frame); err != nil {
		return err
	}
	e.frames++

	if len(alerts) != e.lastAlerts {
		e.lg.Info("alerts changed", "active", len(alerts), "previous", e.lastAlerts)
		for _, a := range alerts {
			e.lg.Warn("alert", "id", a.ID, "message", a.Message)
		}
	}
	e.lastAlerts = len(alerts)

	if e.cfg.ChartFile != "" && e.frames%int64(e.cfg.ChartEvery) == 0 {
		ok, err := render.WriteChartPNG(e.cfg.ChartFile, series)
		if err != nil {
			e.lg.Error("chart", "error", err)
		} else if ok {
			e.lg.Info("chart written", "path", e.cfg.ChartFile, "samples", len(series))
		}
	}
	return nil
}

// Frames reports completed refreshes.
func (e *Engine) Frames() int64 { return e.frames }
