package hwinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"
)

// hwCollectMemory reports RAM and swap. Used RAM is computed as total
// minus available: the kernel's own "used" counter subtracts buffers and
// cache on Linux, which breaks the identity across platforms.
func hwCollectMemory(ctx context.Context, opts Options) *MemoryInfo {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		opts.logger().Debug("virtual memory unavailable", "err", err)
		return nil
	}

	m := &MemoryInfo{
		RAMTotalBytes:     vm.Total,
		RAMAvailableBytes: vm.Available,
	}
	if vm.Available <= vm.Total {
		m.RAMUsedBytes = vm.Total - vm.Available
	}
	if vm.Total > 0 {
		m.RAMPercent = hwClampPercent(float64(m.RAMUsedBytes) / float64(vm.Total) * 100)
	}

	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		m.SwapTotalBytes = sw.Total
		m.SwapUsedBytes = sw.Used
		m.SwapPercent = hwClampPercent(sw.UsedPercent)
	} else {
		opts.logger().Debug("swap memory unavailable", "err", err)
	}
	return m
}
