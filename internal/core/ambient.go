// v1
// internal/core/ambient.go
package core

import "math"

// EstimateAmbient derives an ambient temperature estimate from one sample's two
// readings as the weighted average (2·local + battery) / 3, rounded to one decimal
// place. The battery sensor self-heats above true ambient, so its reading carries
// half the weight of the local one. Pure; inputs arrive pre-validated as finite.
func EstimateAmbient(localTemp, batteryTemp float64) float64 {
	return round1((2*localTemp + batteryTemp) / 3)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
