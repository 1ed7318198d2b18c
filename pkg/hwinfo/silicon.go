package hwinfo

import (
	"context"
	"strings"
)

// hwSiliconVariants are the M-series families, newest first so "M4" wins
// over an "M1" substring elsewhere in the brand string.
var hwSiliconVariants = []string{"M4", "M3", "M2", "M1"}

// hwCollectSilicon reports Apple M-series details. Non-darwin platforms
// and Intel Macs return nil without attempting any detection call.
func hwCollectSilicon(ctx context.Context, opts Options) *AppleSiliconInfo {
	return hwDetectAppleSilicon(ctx, opts)
}

// hwSiliconVariant extracts the family tag from a brand string like
// "Apple M2 Pro".
func hwSiliconVariant(brand string) string {
	for _, v := range hwSiliconVariants {
		if strings.Contains(brand, v) {
			return v
		}
	}
	return "Unknown"
}
