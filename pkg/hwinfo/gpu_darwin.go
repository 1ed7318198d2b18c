//go:build darwin

package hwinfo

import "context"

// hwDetectPlatformGPUs asks system_profiler for the display inventory.
// Modern Macs ship no vendor CLI tools, so this is the only backend.
func hwDetectPlatformGPUs(ctx context.Context, opts Options) []GPUInfo {
	return hwRunBackends(ctx, opts, spDisplays{})
}

type spDisplays struct{}

func (spDisplays) Name() string { return "system_profiler" }

func (spDisplays) Detect(ctx context.Context, opts Options) []GPUInfo {
	out, err := hwRunTool(ctx, opts.ToolTimeout, "system_profiler", "SPDisplaysDataType", "-json")
	if err != nil {
		opts.logger().Debug("display inventory skipped", "err", err)
		return nil
	}
	return hwParseSPDisplays([]byte(out))
}
