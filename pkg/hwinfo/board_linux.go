//go:build linux

package hwinfo

import "context"

// hwReadBoard reads the DMI board identity. Both strings must be present;
// a vendor without a product (common in VMs) is not worth reporting.
func hwReadBoard(ctx context.Context, opts Options) string {
	vendor, okVendor := hwReadSysfs("/sys/class/dmi/id/board_vendor")
	name, okName := hwReadSysfs("/sys/class/dmi/id/board_name")
	if !okVendor || !okName {
		return ""
	}
	return vendor + " " + name
}
