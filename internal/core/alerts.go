// v1
// internal/core/alerts.go
package core

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Alert thresholds, fixed in this version.
const (
	batteryHighC  = 30.0
	differentialC = 10.0
)

const (
	msgBatteryHigh  = "Battery temperature exceeding normal range"
	msgDifferential = "Large temperature differential detected"
)

// EvaluateAlerts applies the two alert rules to the latest sample and returns one
// alert per fired rule: battery temperature above 30 °C first, then a
// battery/local differential above 10 °C. The rules are independent and both may
// fire on the same sample. Each evaluation mints fresh IDs and fully replaces the
// previous alert set; nothing accumulates or expires. An empty series fails with
// ErrEmptySeries.
func EvaluateAlerts(s Series) ([]Alert, error) {
	latest, ok := s.Latest()
	if !ok {
		return nil, fmt.Errorf("%w: alerts need a latest sample", ErrEmptySeries)
	}
	var alerts []Alert
	if latest.BatteryTemp > batteryHighC {
		alerts = append(alerts, Alert{ID: uuid.New().String(), Message: msgBatteryHigh})
	}
	if math.Abs(latest.BatteryTemp-latest.LocalTemp) > differentialC {
		alerts = append(alerts, Alert{ID: uuid.New().String(), Message: msgDifferential})
	}
	return alerts, nil
}
