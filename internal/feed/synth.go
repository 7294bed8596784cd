// v0
// internal/feed/synth.go
package feed

import (
	"math/rand"
	"time"

	"thermoview/analysis/internal/core"
)

// Synth generates a random-walk pair of readings for demonstration. The local
// temperature wanders inside [base-spread, base+spread]; the battery reading
// follows it with a drifting self-heating offset between minHeat and maxHeat, so
// both alert rules trip now and then without a real sensor.
type Synth struct {
	rng    *rand.Rand
	base   float64
	spread float64
	local  float64
	heat   float64
}

const (
	minHeat   = 2.0
	maxHeat   = 12.0
	localStep = 1.6 // widest local move per tick (°C)
	heatStep  = 2.0 // widest self-heating move per tick (°C)
)

// NewSynth seeds the generator. A zero seed derives one from the wall clock, so
// demos differ run to run while tests stay reproducible with a fixed seed.
func NewSynth(base, spread float64, seed int64) *Synth {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if spread < 0 {
		spread = -spread
	}
	return &Synth{
		rng:    rand.New(rand.NewSource(seed)),
		base:   base,
		spread: spread,
		local:  base,
		heat:   (minHeat + maxHeat) / 2,
	}
}

// Next advances the walk one step and labels the sample with the tick time.
func (g *Synth) Next(now time.Time) (core.Sample, error) {
	g.local += (g.rng.Float64() - 0.5) * localStep
	g.local = clamp(g.local, g.base-g.spread, g.base+g.spread)
	g.heat += (g.rng.Float64() - 0.5) * heatStep
	g.heat = clamp(g.heat, minHeat, maxHeat)
	return core.Sample{
		Time:        now.Format(timeLayout),
		LocalTemp:   g.local,
		BatteryTemp: g.local + g.heat,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
