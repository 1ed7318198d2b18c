package hwinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// hwCollectOS reports the OS identity and uptime. The runtime package can
// always answer for system/machine/go-version, so the record is never nil;
// host details degrade field by field.
func hwCollectOS(ctx context.Context, opts Options) *OSInfo {
	o := &OSInfo{
		System:    hwSystemName(runtime.GOOS),
		Machine:   runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		opts.logger().Debug("host info unavailable", "err", err)
		return o
	}

	o.Release = info.KernelVersion
	o.Version = info.PlatformVersion
	o.Platform = info.Platform
	o.Hostname = info.Hostname
	o.UptimeSeconds = info.Uptime
	if info.KernelArch != "" {
		o.Machine = info.KernelArch
	}
	return o
}

// hwSystemName maps a GOOS value to the conventional uname-style spelling.
func hwSystemName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return goos
	}
}
