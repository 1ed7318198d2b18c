//go:build windows

package hwinfo

import (
	"context"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// hwDetectPlatformGPUs runs the vendor tools first; the WMI display
// enumeration is a last resort for adapters without dedicated tooling.
func hwDetectPlatformGPUs(ctx context.Context, opts Options) []GPUInfo {
	gpus := hwRunBackends(ctx, opts, nvidiaSMI{}, rocmSMI{}, syclLS{})
	if len(gpus) == 0 {
		gpus = hwRunBackends(ctx, opts, wmiVideo{})
	}
	return gpus
}

// win32VideoController mirrors the WMI class of the same name. AdapterRAM
// is a uint32 in CIM, so cards past 4 GB read low here; the dedicated
// vendor tools take priority for that reason.
type win32VideoController struct {
	Name       string
	AdapterRAM uint32
}

type wmiVideo struct{}

func (wmiVideo) Name() string { return "wmi" }

func (wmiVideo) Detect(ctx context.Context, opts Options) []GPUInfo {
	var controllers []win32VideoController
	if err := wmi.Query("SELECT Name, AdapterRAM FROM Win32_VideoController", &controllers); err != nil {
		opts.logger().Debug("wmi video query failed", "err", err)
		return nil
	}

	var gpus []GPUInfo
	for _, vc := range controllers {
		name := strings.TrimSpace(vc.Name)
		vendor := hwNormalizeGPUVendor(name)
		if name == "" || vendor == VendorUnknown {
			// Virtual and basic display adapters are not inference hardware.
			continue
		}
		gpu := GPUInfo{Vendor: vendor, Name: name}
		if vc.AdapterRAM > 0 {
			gpu.VRAMTotalGB = hwPtr(hwBytesToGB(uint64(vc.AdapterRAM)))
		}
		gpus = append(gpus, gpu)
	}
	return gpus
}
