package hwinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/sensors"
)

// hwCPUSensorPreference orders the sensor families that report a
// package-level CPU temperature. Checked before falling back to the first
// plausible reading of any sensor.
var hwCPUSensorPreference = []string{
	"coretemp",
	"k10temp",
	"zenpower",
	"cpu_thermal",
	"package",
	"tctl",
}

// hwCollectCPU reports processor topology, frequency, utilization and
// temperature. The usage sample blocks for opts.CPUSampleInterval; an
// instantaneous read would only ever see 0% or a scheduler spike.
func hwCollectCPU(ctx context.Context, opts Options) *CPUInfo {
	c := &CPUInfo{Name: "Unknown CPU"}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		opts.logger().Debug("cpu info unavailable", "err", err)
	} else if len(infos) > 0 {
		if name := strings.TrimSpace(infos[0].ModelName); name != "" {
			c.Name = name
		}
		if infos[0].Mhz > 0 {
			c.CurrentFreqMHz = hwPtr(infos[0].Mhz)
			c.MaxFreqMHz = hwPtr(infos[0].Mhz)
		}
	}

	if n, err := cpu.CountsWithContext(ctx, false); err == nil && n > 0 {
		c.CoresPhysical = hwPtr(n)
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		c.CoresLogical = hwPtr(n)
	}
	hwEnforceCoreOrder(c)

	hwRefineCPUFreq(c)

	if pcts, err := cpu.PercentWithContext(ctx, opts.CPUSampleInterval, false); err == nil && len(pcts) > 0 {
		c.UsagePercent = hwPtr(hwClampPercent(pcts[0]))
	} else if err != nil {
		opts.logger().Debug("cpu usage sample failed", "err", err)
	}

	c.TemperatureC = hwCPUTemperature(ctx, opts)
	return c
}

// hwEnforceCoreOrder keeps physical <= logical. Some hypervisors report a
// physical count above the logical one for pinned vCPUs.
func hwEnforceCoreOrder(c *CPUInfo) {
	if c.CoresPhysical != nil && c.CoresLogical != nil && *c.CoresPhysical > *c.CoresLogical {
		c.CoresPhysical = hwPtr(*c.CoresLogical)
	}
}

// hwCPUTemperature picks one reading from the sensor list: preferred
// package-level families first, then the first plausible entry.
func hwCPUTemperature(ctx context.Context, opts Options) *float64 {
	readings, err := sensors.TemperaturesWithContext(ctx)
	if err != nil || len(readings) == 0 {
		if err != nil {
			opts.logger().Debug("temperature sensors unavailable", "err", err)
		}
		return nil
	}
	return hwPickCPUTemperature(readings)
}

func hwPickCPUTemperature(readings []sensors.TemperatureStat) *float64 {
	for _, pattern := range hwCPUSensorPreference {
		for _, r := range readings {
			if strings.Contains(strings.ToLower(r.SensorKey), pattern) && hwPlausibleTemp(r.Temperature) {
				return hwPtr(r.Temperature)
			}
		}
	}
	for _, r := range readings {
		if hwPlausibleTemp(r.Temperature) {
			return hwPtr(r.Temperature)
		}
	}
	return nil
}

// hwPlausibleTemp rejects the zero readings and junk values some sensors
// emit when idle or unpopulated.
func hwPlausibleTemp(t float64) bool {
	return t > 0 && t <= 150
}
