package hwinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMiBToGB(t *testing.T) {
	tests := []struct {
		mib  float64
		want float64
	}{
		{1024, 1},
		{512, 0.5},
		{24564, 23.99},
		{0, 0},
	}
	for _, tc := range tests {
		if got := hwMiBToGB(tc.mib); got != tc.want {
			t.Errorf("hwMiBToGB(%v) = %v, want %v", tc.mib, got, tc.want)
		}
	}
}

func TestBytesToGB(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  float64
	}{
		{1 << 30, 1},
		{16 << 30, 16},
		{1610612736, 1.5},
		{0, 0},
	}
	for _, tc := range tests {
		if got := hwBytesToGB(tc.bytes); got != tc.want {
			t.Errorf("hwBytesToGB(%d) = %v, want %v", tc.bytes, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := hwRound2(3.14159); got != 3.14 {
		t.Errorf("hwRound2(3.14159) = %v", got)
	}
	if got := hwRound2(-1.234); got != -1.23 {
		t.Errorf("hwRound2(-1.234) = %v", got)
	}
	if got := hwRound2(2.5); got != 2.5 {
		t.Errorf("hwRound2(2.5) = %v", got)
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{105, 100},
	}
	for _, tc := range tests {
		if got := hwClampPercent(tc.input); got != tc.want {
			t.Errorf("hwClampPercent(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, ok := hwParseFloat("42.5"); !ok || v != 42.5 {
		t.Errorf("hwParseFloat(42.5) = (%v, %v)", v, ok)
	}
	if v, ok := hwParseFloat("  7  "); !ok || v != 7 {
		t.Errorf("hwParseFloat('  7  ') = (%v, %v)", v, ok)
	}
	for _, s := range []string{"", "abc", "[N/A]", "NaN", "+Inf"} {
		if _, ok := hwParseFloat(s); ok {
			t.Errorf("hwParseFloat(%q) reported success", s)
		}
	}
}

func TestReadSysfs(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "board_vendor")
	if err := os.WriteFile(path, []byte("ASUSTeK COMPUTER INC.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok := hwReadSysfs(path)
	if !ok || got != "ASUSTeK COMPUTER INC." {
		t.Errorf("hwReadSysfs = (%q, %v), want trimmed content", got, ok)
	}

	if _, ok := hwReadSysfs(filepath.Join(dir, "missing")); ok {
		t.Error("hwReadSysfs reported success for a missing file")
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := hwReadSysfs(empty); ok {
		t.Error("hwReadSysfs reported success for a blank file")
	}
}
