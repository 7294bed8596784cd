// v1
// internal/core/model.go
package core

import "errors"

// Sample is one observation: an ordering label plus the two sensor readings.
// Time is opaque to the analysis functions; it orders samples for display and is
// never parsed as a calendar value here.
type Sample struct {
	Time        string  `json:"time"`
	LocalTemp   float64 `json:"localTemp"`   // ambient-adjacent sensor (°C)
	BatteryTemp float64 `json:"batteryTemp"` // battery sensor, runs hot (°C)
}

// Series is a chronologically ordered sequence of samples, insertion order =
// chronological order. The series belongs to the caller; analysis functions only
// read it and never mutate it, so concurrent calls over the same series are safe.
type Series []Sample

// Latest returns the last sample. ok is false on an empty series.
func (s Series) Latest() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[len(s)-1], true
}

// Field selects which of the two readings an operation reduces over.
type Field string

const (
	FieldLocal   Field = "localTemp"
	FieldBattery Field = "batteryTemp"
)

// value returns the reading f selects from one sample. FieldBattery selects the
// battery reading, anything else the local one.
func (f Field) value(s Sample) float64 {
	if f == FieldBattery {
		return s.BatteryTemp
	}
	return s.LocalTemp
}

// project copies the selected reading of every sample, preserving series order.
func (f Field) project(s Series) []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = f.value(smp)
	}
	return out
}

// StatSummary reduces one field of a whole series. Min and max keep the full
// precision of the inputs; Avg is rounded to one decimal place. Recomputed on
// demand, never stored.
type StatSummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Direction is the sign of the movement between the last two samples.
type Direction string

const (
	TrendUp   Direction = "up"
	TrendDown Direction = "down"
)

// Trend compares the last two samples of a series for one field.
type Trend struct {
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"` // absolute change, one decimal
}

// Alert is one fired rule for the latest sample. IDs are unique within an
// evaluation and not stable across evaluations; every evaluation replaces the
// previous set in full.
type Alert struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

var (
	// ErrEmptySeries rejects stats and alert evaluation over zero samples.
	ErrEmptySeries = errors.New("empty series")
	// ErrInsufficientData rejects trend detection over fewer than two samples.
	ErrInsufficientData = errors.New("insufficient data")
)
