//go:build !linux && !windows

package hwinfo

import "context"

// hwReadBoard has no DMI or WMI source on this platform.
func hwReadBoard(ctx context.Context, opts Options) string {
	return ""
}
