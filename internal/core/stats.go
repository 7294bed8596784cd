// v1
// internal/core/stats.go
package core

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ComputeStats reduces the selected field across the whole series to min, max and
// average. Min and max keep the full precision of the inputs; the arithmetic mean
// is rounded to one decimal place. A singleton series is valid and yields
// min = max = avg. An empty series fails with ErrEmptySeries instead of letting a
// NaN reach the display layer.
func ComputeStats(s Series, f Field) (StatSummary, error) {
	if len(s) == 0 {
		return StatSummary{}, fmt.Errorf("%w: stats need at least one sample", ErrEmptySeries)
	}
	vals := f.project(s)
	// the reductions only error on empty input, which the guard above excludes
	mn, _ := stats.Min(vals)
	mx, _ := stats.Max(vals)
	avg, _ := stats.Mean(vals)
	return StatSummary{Min: mn, Max: mx, Avg: round1(avg)}, nil
}
