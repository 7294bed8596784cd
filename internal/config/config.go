// v1
// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Feed source selectors.
const (
	FeedSynth  = "synth"
	FeedReplay = "replay"
)

// AppConfig carries the daemon settings. Everything has a usable default so the
// demo runs with a bare environment.
type AppConfig struct {
	RefreshInterval time.Duration // engine tick
	WindowSize      int           // samples kept for the dashboard view
	Feed            string        // synth | replay
	ScenarioFile    string        // replay scenario path
	SynthBaseC      float64       // synth local-temperature band center
	SynthSpreadC    float64       // synth band half-width
	SynthSeed       int64         // 0 = time-derived
	ChartFile       string        // PNG output path, empty disables charting
	ChartEvery      int           // render the chart every N frames
	LogFile         string        // dual-logger file target
}

// Load reads the environment. A .env in the working directory is applied first
// when present; real environment variables win over it.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		RefreshInterval: getd("ANALYSIS_REFRESH_INTERVAL", 2*time.Second),
		WindowSize:      geti("ANALYSIS_WINDOW_SIZE", 60),
		Feed:            strings.ToLower(getenv("ANALYSIS_FEED", FeedSynth)),
		ScenarioFile:    getenv("ANALYSIS_SCENARIO_FILE", ""),
		SynthBaseC:      getf("ANALYSIS_SYNTH_BASE_C", 21.0),
		SynthSpreadC:    getf("ANALYSIS_SYNTH_SPREAD_C", 4.0),
		SynthSeed:       int64(geti("ANALYSIS_SYNTH_SEED", 0)),
		ChartFile:       getenv("ANALYSIS_CHART_FILE", ""),
		ChartEvery:      geti("ANALYSIS_CHART_EVERY", 5),
		LogFile:         getenv("ANALYSIS_LOGFILE", "./analysis.log"),
	}

	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", cfg.RefreshInterval)
	}
	if cfg.WindowSize < 1 {
		return nil, fmt.Errorf("window size must be at least 1, got %d", cfg.WindowSize)
	}
	switch cfg.Feed {
	case FeedSynth:
	case FeedReplay:
		if cfg.ScenarioFile == "" {
			return nil, fmt.Errorf("feed %q needs ANALYSIS_SCENARIO_FILE", cfg.Feed)
		}
	default:
		return nil, fmt.Errorf("unknown feed %q (want %s or %s)", cfg.Feed, FeedSynth, FeedReplay)
	}
	if cfg.ChartEvery < 1 {
		cfg.ChartEvery = 1
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func geti(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getf(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func getd(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}
