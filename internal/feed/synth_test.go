// v0
// internal/feed/synth_test.go
package feed

import (
	"math"
	"testing"
	"time"
)

func TestSynthDeterministicForSeed(t *testing.T) {
	a := NewSynth(21, 4, 7)
	b := NewSynth(21, 4, 7)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		sa, err := a.Next(at)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		sb, err := b.Next(at)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if sa != sb {
			t.Fatalf("step %d diverged: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestSynthStaysInsideBand(t *testing.T) {
	g := NewSynth(21, 4, 42)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		s, err := g.Next(at)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if math.IsNaN(s.LocalTemp) || math.IsInf(s.LocalTemp, 0) || math.IsNaN(s.BatteryTemp) || math.IsInf(s.BatteryTemp, 0) {
			t.Fatalf("step %d produced non-finite readings: %+v", i, s)
		}
		if s.LocalTemp < 17-1e-9 || s.LocalTemp > 25+1e-9 {
			t.Fatalf("step %d local %v left band [17, 25]", i, s.LocalTemp)
		}
		if s.BatteryTemp < s.LocalTemp {
			t.Fatalf("step %d battery %v below local %v, self-heating must be non-negative", i, s.BatteryTemp, s.LocalTemp)
		}
	}
}

func TestSynthLabelsWithTickTime(t *testing.T) {
	g := NewSynth(21, 4, 1)
	s, err := g.Next(time.Date(2025, 3, 1, 9, 8, 7, 0, time.UTC))
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Time != "09:08:07" {
		t.Fatalf("time label got %q want 09:08:07", s.Time)
	}
}
