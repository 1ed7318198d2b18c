package hwinfo

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// hwPtr returns a pointer to v, for filling optional snapshot fields.
func hwPtr[T any](v T) *T {
	return &v
}

// hwMiBToGB converts mebibytes to gigabytes, rounded to two decimals.
func hwMiBToGB(mib float64) float64 {
	return hwRound2(mib / 1024)
}

// hwBytesToGB converts bytes to gigabytes, rounded to two decimals.
func hwBytesToGB(b uint64) float64 {
	return hwRound2(float64(b) / (1 << 30))
}

func hwRound2(v float64) float64 {
	return math.Round(v*100) / 100
}

// hwClampPercent forces a percentage into [0, 100].
func hwClampPercent(p float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// hwParseFloat parses a trimmed decimal string, reporting success
// explicitly so callers can distinguish 0 from unparseable.
func hwParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// hwReadSysfs reads a single-value kernel interface file, such as a DMI
// string or a block-device attribute.
func hwReadSysfs(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	s := strings.TrimSpace(string(data))
	return s, s != ""
}
