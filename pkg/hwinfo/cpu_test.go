package hwinfo

import (
	"context"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/sensors"
)

// --- Temperature selection ---

func TestPickCPUTemperaturePrefersPackageSensors(t *testing.T) {
	readings := []sensors.TemperatureStat{
		{SensorKey: "acpitz", Temperature: 27.8},
		{SensorKey: "nvme_composite", Temperature: 38.9},
		{SensorKey: "coretemp_package_id_0", Temperature: 54.0},
	}
	got := hwPickCPUTemperature(readings)
	if got == nil || *got != 54.0 {
		t.Errorf("picked %v, want 54.0 from coretemp", got)
	}
}

func TestPickCPUTemperatureK10Temp(t *testing.T) {
	readings := []sensors.TemperatureStat{
		{SensorKey: "iwlwifi_1", Temperature: 41.0},
		{SensorKey: "k10temp_tctl", Temperature: 62.5},
	}
	got := hwPickCPUTemperature(readings)
	if got == nil || *got != 62.5 {
		t.Errorf("picked %v, want 62.5 from k10temp", got)
	}
}

func TestPickCPUTemperatureFallsBackToFirstPlausible(t *testing.T) {
	readings := []sensors.TemperatureStat{
		{SensorKey: "coretemp_package_id_0", Temperature: 0}, // unpopulated sensor
		{SensorKey: "acpitz", Temperature: 33.0},
	}
	got := hwPickCPUTemperature(readings)
	if got == nil || *got != 33.0 {
		t.Errorf("picked %v, want fallback 33.0", got)
	}
}

func TestPickCPUTemperatureRejectsJunk(t *testing.T) {
	readings := []sensors.TemperatureStat{
		{SensorKey: "coretemp", Temperature: -1},
		{SensorKey: "acpitz", Temperature: 255},
		{SensorKey: "other", Temperature: 0},
	}
	if got := hwPickCPUTemperature(readings); got != nil {
		t.Errorf("picked %v from junk readings, want nil", *got)
	}
}

func TestPlausibleTemp(t *testing.T) {
	tests := []struct {
		temp float64
		want bool
	}{
		{0, false},
		{-5, false},
		{0.1, true},
		{45, true},
		{150, true},
		{151, false},
	}
	for _, tc := range tests {
		if got := hwPlausibleTemp(tc.temp); got != tc.want {
			t.Errorf("hwPlausibleTemp(%v) = %v, want %v", tc.temp, got, tc.want)
		}
	}
}

// --- Core counts ---

func TestEnforceCoreOrderCapsPhysical(t *testing.T) {
	c := &CPUInfo{CoresPhysical: hwPtr(16), CoresLogical: hwPtr(8)}
	hwEnforceCoreOrder(c)
	if *c.CoresPhysical != 8 {
		t.Errorf("CoresPhysical = %d, want capped to 8", *c.CoresPhysical)
	}
}

func TestEnforceCoreOrderLeavesValidCounts(t *testing.T) {
	c := &CPUInfo{CoresPhysical: hwPtr(8), CoresLogical: hwPtr(16)}
	hwEnforceCoreOrder(c)
	if *c.CoresPhysical != 8 || *c.CoresLogical != 16 {
		t.Errorf("counts changed: physical=%d logical=%d", *c.CoresPhysical, *c.CoresLogical)
	}
}

func TestEnforceCoreOrderHandlesAbsentCounts(t *testing.T) {
	hwEnforceCoreOrder(&CPUInfo{})
	hwEnforceCoreOrder(&CPUInfo{CoresPhysical: hwPtr(4)})
	hwEnforceCoreOrder(&CPUInfo{CoresLogical: hwPtr(4)})
}

// --- Live collection ---

func TestCollectCPULive(t *testing.T) {
	opts := Options{CPUSampleInterval: 50 * time.Millisecond}.withDefaults()
	c := hwCollectCPU(context.Background(), opts)
	if c == nil {
		t.Fatal("hwCollectCPU returned nil")
	}
	if c.Name == "" {
		t.Error("CPU name is empty, want at least the placeholder")
	}
	if c.CoresPhysical != nil && c.CoresLogical != nil && *c.CoresPhysical > *c.CoresLogical {
		t.Errorf("physical cores %d > logical cores %d", *c.CoresPhysical, *c.CoresLogical)
	}
	if c.UsagePercent != nil && (*c.UsagePercent < 0 || *c.UsagePercent > 100) {
		t.Errorf("UsagePercent = %v", *c.UsagePercent)
	}
	if c.TemperatureC != nil && !hwPlausibleTemp(*c.TemperatureC) {
		t.Errorf("TemperatureC = %v, outside plausible range", *c.TemperatureC)
	}
}
