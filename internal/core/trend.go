// v1
// internal/core/trend.go
package core

import (
	"fmt"
	"math"
)

// ComputeTrend compares the last sample of the series against the one before it
// for the selected field. Direction is up when the last value exceeds the previous
// one and down otherwise; equal consecutive values read as down, so the function
// stays total over any two samples. Magnitude is the absolute change, rounded to
// one decimal place. Fewer than two samples fail with ErrInsufficientData.
func ComputeTrend(s Series, f Field) (Trend, error) {
	if len(s) < 2 {
		return Trend{}, fmt.Errorf("%w: trend needs two samples, have %d", ErrInsufficientData, len(s))
	}
	last := f.value(s[len(s)-1])
	prev := f.value(s[len(s)-2])
	dir := TrendDown
	if last > prev {
		dir = TrendUp
	}
	return Trend{Direction: dir, Magnitude: round1(math.Abs(last - prev))}, nil
}
