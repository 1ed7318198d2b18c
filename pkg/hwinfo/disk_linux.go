//go:build linux

package hwinfo

import (
	"path/filepath"
	"strings"
)

// hwClassifyByRotational reads the block-device rotational flag: 0 means
// solid-state, 1 means spinning media. Tries the device name as-is first
// (whole disks, dm-* devices), then its parent without the partition
// suffix.
func hwClassifyByRotational(device string) DiskType {
	base := filepath.Base(strings.TrimSpace(device))
	if base == "" || base == "." || base == "/" {
		return DiskUnknown
	}

	for _, name := range []string{base, hwParentBlockDevice(base)} {
		if name == "" {
			continue
		}
		flag, ok := hwReadSysfs("/sys/block/" + name + "/queue/rotational")
		if !ok {
			continue
		}
		switch flag {
		case "0":
			return DiskSSD
		case "1":
			return DiskHDD
		}
	}
	return DiskUnknown
}
