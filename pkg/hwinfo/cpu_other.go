//go:build !linux

package hwinfo

// hwRefineCPUFreq is a no-op where cpufreq sysfs does not exist; the
// gopsutil baseline stands.
func hwRefineCPUFreq(c *CPUInfo) {}
