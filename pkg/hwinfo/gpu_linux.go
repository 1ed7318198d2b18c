//go:build linux

package hwinfo

import (
	"context"
	"path/filepath"
)

// hwDetectPlatformGPUs runs the dedicated vendor tools in priority order
// and falls back to a PCI-level DRM scan only when none of them saw an
// adapter.
func hwDetectPlatformGPUs(ctx context.Context, opts Options) []GPUInfo {
	gpus := hwRunBackends(ctx, opts, nvidiaSMI{}, rocmSMI{}, syclLS{})
	if len(gpus) == 0 {
		gpus = hwRunBackends(ctx, opts, drmSysfs{})
	}
	return gpus
}

// drmSysfs reads PCI vendor IDs from /sys/class/drm. It only knows the
// vendor, so entries carry a generic name and no VRAM numbers.
type drmSysfs struct{}

func (drmSysfs) Name() string { return "drm-sysfs" }

func (drmSysfs) Detect(ctx context.Context, opts Options) []GPUInfo {
	paths, err := filepath.Glob("/sys/class/drm/card[0-9]*/device/vendor")
	if err != nil || len(paths) == 0 {
		return nil
	}

	var gpus []GPUInfo
	for _, vendorPath := range paths {
		id, ok := hwReadSysfs(vendorPath)
		if !ok {
			continue
		}
		vendor := hwVendorFromPCIID(id)
		if vendor == VendorUnknown {
			continue
		}
		gpus = append(gpus, GPUInfo{Vendor: vendor, Name: string(vendor) + " GPU"})
	}
	return gpus
}
