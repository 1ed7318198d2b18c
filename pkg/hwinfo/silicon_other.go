//go:build !darwin

package hwinfo

import "context"

func hwDetectAppleSilicon(ctx context.Context, opts Options) *AppleSiliconInfo {
	return nil
}
