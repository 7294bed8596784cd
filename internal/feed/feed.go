// v0
// internal/feed/feed.go
package feed

import (
	"time"

	"thermoview/analysis/internal/core"
)

// Source produces one sample per refresh tick. Sources are pull-driven: the
// engine owns the cadence and passes the tick time, which becomes the sample's
// display label when the source has none of its own.
type Source interface {
	Next(now time.Time) (core.Sample, error)
}

// Samples carry a clock label; ordering comes from arrival, so a plain
// time-of-day string is enough for display.
const timeLayout = "15:04:05"
