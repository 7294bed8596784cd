// v1
// cmd/analysis/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"thermoview/analysis/internal/config"
	"thermoview/analysis/internal/dash"
	"thermoview/analysis/internal/feed"
	"thermoview/analysis/internal/logging"
	"thermoview/analysis/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	dl := logging.New(cfg.LogFile)
	lg := dl.Logger
	defer func() {
		if err := dl.Close(); err != nil {
			lg.Error("log file close", "error", err)
		}
	}()
	lg.Info("thermoview analysis starting", "feed", cfg.Feed, "interval", cfg.RefreshInterval, "window", cfg.WindowSize)

	var src feed.Source
	switch cfg.Feed {
	case config.FeedReplay:
		rp, err := feed.LoadReplay(cfg.ScenarioFile)
		if err != nil {
			lg.Error("scenario", "error", err)
			os.Exit(1)
		}
		lg.Info("scenario loaded", "path", cfg.ScenarioFile, "samples", rp.Len())
		src = rp
	default:
		src = feed.NewSynth(cfg.SynthBaseC, cfg.SynthSpreadC, cfg.SynthSeed)
	}

	win := store.New(cfg.WindowSize)
	eng := dash.New(cfg, lg, win, src, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		eng.Run(ctx)
		close(done)
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	cancel()
	<-done
	lg.Info("thermoview analysis stopped", "frames", eng.Frames())
}
