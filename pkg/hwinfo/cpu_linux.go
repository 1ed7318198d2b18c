//go:build linux

package hwinfo

// hwRefineCPUFreq upgrades the /proc/cpuinfo baseline with cpufreq sysfs
// readings, which track the live governor state instead of the nominal
// clock. Values are reported in kHz.
func hwRefineCPUFreq(c *CPUInfo) {
	if s, ok := hwReadSysfs("/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"); ok {
		if khz, ok := hwParseFloat(s); ok && khz > 0 {
			c.CurrentFreqMHz = hwPtr(khz / 1000)
		}
	}
	if s, ok := hwReadSysfs("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"); ok {
		if khz, ok := hwParseFloat(s); ok && khz > 0 {
			c.MaxFreqMHz = hwPtr(khz / 1000)
		}
	}
}
