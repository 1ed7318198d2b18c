//go:build darwin

package hwinfo

import (
	"context"
	"strings"

	"golang.org/x/sys/unix"
)

// hwDetectAppleSilicon reads the chip identity straight from sysctl. MLX
// runs on every M-series part, so detection implies support.
func hwDetectAppleSilicon(ctx context.Context, opts Options) *AppleSiliconInfo {
	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		opts.logger().Debug("cpu brand sysctl failed", "err", err)
		return nil
	}
	brand = strings.TrimSpace(brand)
	if !strings.Contains(brand, "Apple") {
		return nil
	}

	info := &AppleSiliconInfo{
		Chip:        brand,
		Variant:     hwSiliconVariant(brand),
		SupportsMLX: true,
	}
	if memsize, err := unix.SysctlUint64("hw.memsize"); err == nil {
		info.UnifiedMemoryGB = hwBytesToGB(memsize)
	}
	return info
}
