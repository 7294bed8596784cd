// v1
// internal/core/trend_test.go
package core

import (
	"errors"
	"math"
	"testing"
)

func TestComputeTrendBatteryFalling(t *testing.T) {
	s := Series{
		{Time: "10:00:00", LocalTemp: 28, BatteryTemp: 35},
		{Time: "10:00:02", LocalTemp: 25, BatteryTemp: 30},
	}
	got, err := ComputeTrend(s, FieldBattery)
	if err != nil {
		t.Fatalf("battery trend: %v", err)
	}
	if got.Direction != TrendDown {
		t.Fatalf("direction got %s want down", got.Direction)
	}
	if math.Abs(got.Magnitude-5.0) > 1e-9 {
		t.Fatalf("magnitude got %v want 5.0", got.Magnitude)
	}
}

func TestComputeTrendRising(t *testing.T) {
	s := Series{
		{Time: "a", LocalTemp: 20.0, BatteryTemp: 24},
		{Time: "b", LocalTemp: 21.26, BatteryTemp: 24},
	}
	got, err := ComputeTrend(s, FieldLocal)
	if err != nil {
		t.Fatalf("local trend: %v", err)
	}
	if got.Direction != TrendUp {
		t.Fatalf("direction got %s want up", got.Direction)
	}
	if math.Abs(got.Magnitude-1.3) > 1e-9 {
		t.Fatalf("magnitude got %v want 1.3 (one decimal)", got.Magnitude)
	}
}

func TestComputeTrendEqualReadsDown(t *testing.T) {
	s := Series{
		{Time: "a", LocalTemp: 22, BatteryTemp: 26},
		{Time: "b", LocalTemp: 22, BatteryTemp: 26},
	}
	for _, f := range []Field{FieldLocal, FieldBattery} {
		got, err := ComputeTrend(s, f)
		if err != nil {
			t.Fatalf("field %s: %v", f, err)
		}
		if got.Direction != TrendDown || got.Magnitude != 0 {
			t.Fatalf("field %s: equal values got %+v want {down 0}", f, got)
		}
	}
}

func TestComputeTrendUsesLastTwoOnly(t *testing.T) {
	s := Series{
		{Time: "a", LocalTemp: 99, BatteryTemp: 99},
		{Time: "b", LocalTemp: -40, BatteryTemp: -40},
		{Time: "c", LocalTemp: 21, BatteryTemp: 25},
		{Time: "d", LocalTemp: 22.5, BatteryTemp: 24},
	}
	local, err := ComputeTrend(s, FieldLocal)
	if err != nil {
		t.Fatalf("local trend: %v", err)
	}
	if local.Direction != TrendUp || math.Abs(local.Magnitude-1.5) > 1e-9 {
		t.Fatalf("local trend got %+v want {up 1.5}", local)
	}
	battery, err := ComputeTrend(s, FieldBattery)
	if err != nil {
		t.Fatalf("battery trend: %v", err)
	}
	if battery.Direction != TrendDown || math.Abs(battery.Magnitude-1.0) > 1e-9 {
		t.Fatalf("battery trend got %+v want {down 1.0}", battery)
	}
}

func TestComputeTrendInsufficientData(t *testing.T) {
	for name, s := range map[string]Series{
		"empty":     {},
		"singleton": {{Time: "a", LocalTemp: 21, BatteryTemp: 25}},
	} {
		if _, err := ComputeTrend(s, FieldLocal); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("%s series: got %v want ErrInsufficientData", name, err)
		}
	}
}
