//go:build !linux && !darwin && !windows

package hwinfo

import "context"

func hwDetectPlatformGPUs(ctx context.Context, opts Options) []GPUInfo {
	return nil
}
