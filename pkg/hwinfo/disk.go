package hwinfo

import (
	"context"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// hwCollectDisks enumerates mounted volumes, classifies their media and
// puts the system volume first. Remaining volumes keep enumeration order.
func hwCollectDisks(ctx context.Context, opts Options) []DiskInfo {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		opts.logger().Debug("partition enumeration failed", "err", err)
		return []DiskInfo{}
	}

	disks := []DiskInfo{}
	for _, p := range parts {
		if hwSkipPartition(p) {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue // unreadable mounts are not worth an entry
		}

		d := DiskInfo{
			Mountpoint:  p.Mountpoint,
			Device:      p.Device,
			Fstype:      p.Fstype,
			Type:        hwClassifyDisk(p.Device),
			TotalBytes:  usage.Total,
			UsedBytes:   usage.Used,
			FreeBytes:   usage.Free,
			UsedPercent: hwClampPercent(usage.UsedPercent),
			IsSystem:    hwIsSystemMount(p.Mountpoint, p.Opts),
		}
		if d.FreeBytes > d.TotalBytes {
			d.FreeBytes = d.TotalBytes
		}
		if d.UsedBytes > d.TotalBytes {
			d.UsedBytes = d.TotalBytes
		}
		disks = append(disks, d)
	}

	hwSortDisks(disks)
	return disks
}

// hwSortDisks floats system volumes to the front; everything else keeps
// its enumeration order.
func hwSortDisks(disks []DiskInfo) {
	sort.SliceStable(disks, func(i, j int) bool {
		return disks[i].IsSystem && !disks[j].IsSystem
	})
}

// hwSkipPartition filters out pseudo filesystems and loopback/ram devices.
func hwSkipPartition(p disk.PartitionStat) bool {
	if p.Fstype == "" || hwVirtualFS(p.Fstype) {
		return true
	}
	device := strings.ToLower(p.Device)
	return strings.Contains(device, "loop") || strings.HasPrefix(device, "/dev/ram")
}

// hwVirtualFS reports filesystem types that do not represent real storage.
func hwVirtualFS(fstype string) bool {
	switch fstype {
	case "devfs", "devtmpfs", "tmpfs", "sysfs", "proc", "cgroup", "cgroup2",
		"autofs", "mqueue", "hugetlbfs", "debugfs", "tracefs", "securityfs",
		"pstore", "bpf", "fusectl", "configfs", "ramfs", "rpc_pipefs",
		"nfsd", "map", "devpts", "squashfs", "overlay":
		return true
	}
	return false
}

// hwIsSystemMount recognizes the OS/boot volume.
func hwIsSystemMount(mountpoint string, mountOpts []string) bool {
	if mountpoint == "/" || strings.EqualFold(mountpoint, `C:\`) || strings.EqualFold(mountpoint, "C:") {
		return true
	}
	for _, opt := range mountOpts {
		if strings.Contains(opt, "Windows") {
			return true
		}
	}
	return false
}

// hwClassifyDisk decides NVMe/SSD/HDD from the device path and, where the
// platform exposes one, the rotational-media flag. With no signal at all
// the volume stays Unknown rather than guessed.
func hwClassifyDisk(device string) DiskType {
	lower := strings.ToLower(device)
	if strings.Contains(lower, "nvme") {
		return DiskNVMe
	}
	if t := hwClassifyByRotational(device); t != DiskUnknown {
		return t
	}
	if strings.Contains(lower, "ssd") {
		return DiskSSD
	}
	return DiskUnknown
}

// hwParentBlockDevice strips a partition suffix so the name matches the
// /sys/block entry: sda1 -> sda, mmcblk0p2 -> mmcblk0, nvme0n1p1 -> nvme0n1.
func hwParentBlockDevice(dev string) string {
	if i := strings.LastIndex(dev, "p"); i > 0 && i < len(dev)-1 &&
		hwAllDigits(dev[i+1:]) && dev[i-1] >= '0' && dev[i-1] <= '9' {
		return dev[:i]
	}
	return strings.TrimRight(dev, "0123456789")
}

func hwAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
