// v0
// internal/feed/replay.go
package feed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"thermoview/analysis/internal/core"
)

// Replay serves a fixed scenario in file order, wrapping around at the end so a
// demo keeps producing samples. Scenario files look like:
//
//	samples:
//	  - time: "10:00:00"
//	    localTemp: 21.5
//	    batteryTemp: 26.0
//
// The time label is optional; samples without one get the tick time.
type Replay struct {
	samples []core.Sample
	next    int
}

type scenarioFile struct {
	Samples []scenarioSample `yaml:"samples"`
}

type scenarioSample struct {
	Time        string  `yaml:"time"`
	LocalTemp   float64 `yaml:"localTemp"`
	BatteryTemp float64 `yaml:"batteryTemp"`
}

// LoadReplay reads a YAML scenario. Empty or unparsable scenarios are rejected
// here so the daemon fails at startup rather than on its first tick.
func LoadReplay(path string) (*Replay, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario read: %w", err)
	}
	var sc scenarioFile
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("scenario parse %s: %w", path, err)
	}
	if len(sc.Samples) == 0 {
		return nil, fmt.Errorf("scenario %s holds no samples", path)
	}
	out := make([]core.Sample, len(sc.Samples))
	for i, s := range sc.Samples {
		out[i] = core.Sample{Time: s.Time, LocalTemp: s.LocalTemp, BatteryTemp: s.BatteryTemp}
	}
	return &Replay{samples: out}, nil
}

// Len reports the scenario length.
func (r *Replay) Len() int { return len(r.samples) }

// Next serves the following scenario sample.
func (r *Replay) Next(now time.Time) (core.Sample, error) {
	s := r.samples[r.next]
	r.next = (r.next + 1) % len(r.samples)
	if s.Time == "" {
		s.Time = now.Format(timeLayout)
	}
	return s, nil
}
