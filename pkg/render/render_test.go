package render

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/config"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/diskbench"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// TestMain pins the color profile so assertions see plain text regardless
// of the terminal the tests run in.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func reportSnapshot() *hwinfo.Snapshot {
	return &hwinfo.Snapshot{
		ID:        "9d2b7e41-3c55-4f6a-8a01-62f4ab9cc001",
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		OS: &hwinfo.OSInfo{
			System:        "Linux",
			Release:       "6.8.0-45-generic",
			Version:       "24.04",
			Machine:       "x86_64",
			Platform:      "Ubuntu",
			GoVersion:     "go1.25.5",
			UptimeSeconds: 93784,
		},
		CPU: &hwinfo.CPUInfo{
			Name:           "AMD Ryzen 9 7950X 16-Core Processor",
			CoresPhysical:  iptr(16),
			CoresLogical:   iptr(32),
			CurrentFreqMHz: fptr(4501.0),
			UsagePercent:   fptr(23.4),
			TemperatureC:   fptr(54.0),
		},
		GPUs: []hwinfo.GPUInfo{
			{
				Vendor:             hwinfo.VendorNVIDIA,
				Name:               "NVIDIA GeForce RTX 4090",
				VRAMTotalGB:        fptr(23.99),
				VRAMUsedGB:         fptr(1.0),
				UtilizationPercent: fptr(5.0),
				TemperatureC:       fptr(45.0),
			},
		},
		Memory: &hwinfo.MemoryInfo{
			RAMTotalBytes:     64 << 30,
			RAMAvailableBytes: 48 << 30,
			RAMUsedBytes:      16 << 30,
			RAMPercent:        25.0,
			SwapTotalBytes:    8 << 30,
			SwapUsedBytes:     2 << 30,
			SwapPercent:       25.0,
		},
		Disks: []hwinfo.DiskInfo{
			{
				Mountpoint:  "/",
				Device:      "/dev/nvme0n1p2",
				Fstype:      "ext4",
				Type:        hwinfo.DiskNVMe,
				TotalBytes:  1 << 40,
				UsedBytes:   512 << 30,
				FreeBytes:   512 << 30,
				UsedPercent: 50.0,
				IsSystem:    true,
			},
		},
		Motherboard: "ASUS ROG STRIX B650E-F GAMING WIFI",
		Benchmark: &diskbench.Result{
			WriteMBps:  2310.5,
			ReadMBps:   3480.2,
			FileSizeMB: 100,
			Path:       "/home/dev/.llm_neofetch_benchmark.tmp",
		},
	}
}

func renderAt(t *testing.T, snap *hwinfo.Snapshot, detail int) string {
	t.Helper()
	var buf bytes.Buffer
	New(&buf, config.Default()).Report(snap, detail)
	return buf.String()
}

// --- Full report ---

func TestReportFullDetail(t *testing.T) {
	out := renderAt(t, reportSnapshot(), DetailFull)

	for _, want := range []string{
		"LLM • NEOFETCH ++",
		"Advanced System Info for Local LLM Usage",
		"System Information",
		"Ubuntu 24.04",
		"6.8.0-45-generic (x86_64)",
		"1d 2h 3m",
		"go1.25.5",
		"ASUS ROG STRIX B650E-F GAMING WIFI",
		"AMD Ryzen 9 7950X 16-Core Processor",
		"16 physical / 32 threads",
		"4501 MHz",
		"54.0°C",
		"🟢 NVIDIA GeForce RTX 4090",
		"VRAM: 24.0 GB total",
		"1.0/24.0 GB",
		"45°C",
		"64 GiB (64.0 GB)",
		"Available:      48 GiB",
		"8.0 GiB (25% used)",
		"[NVMe]",
		"Total: 1.0 TiB  •  Free: 512 GiB",
		"Read:   3480.2 MB/s  Excellent (NVMe)",
		"Write:  2310.5 MB/s  Excellent (NVMe)",
		"Personalized Model Recommendations",
		"Large Models (Superior Performance)",
		"Quantization Guide (GGUF)",
		"Q4_K_M",
		"LLM Backends Comparison",
		"Ollama",
		"macOS, Linux, Window",
		"Optimization Tips",
		"Good RAM - CPU-only inference viable for 13-30B models",
		"Fast storage - Quick model loading and context management",
		"Quick Start Commands",
		"ollama run llama3.2:1b",
		"Tip: Use 'llm-neofetch --help' for more options",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("full report missing %q", want)
		}
	}

	// 23.99 GB VRAM misses the 24 GB floor of the largest tier.
	if strings.Contains(out, "Extra Large Models") {
		t.Error("full report recommends the xlarge tier below its VRAM floor")
	}
	if strings.Contains(out, "On Battery") || strings.Contains(out, "Plugged In") {
		t.Error("full report has battery lines without a battery")
	}
}

func TestReportDetailGating(t *testing.T) {
	snap := reportSnapshot()

	minimal := renderAt(t, snap, DetailMinimal)
	normal := renderAt(t, snap, DetailNormal)

	for _, gated := range []string{
		"Optimization Tips",
		"Quick Start Commands",
		"Personalized Model Recommendations",
		"Temperature:",
		"Available:",
	} {
		if strings.Contains(minimal, gated) {
			t.Errorf("minimal report contains %q, want it gated to level 2", gated)
		}
		if !strings.Contains(normal, gated) {
			t.Errorf("normal report missing %q", gated)
		}
	}

	for _, gated := range []string{
		"Quantization Guide (GGUF)",
		"LLM Backends Comparison",
	} {
		if strings.Contains(normal, gated) {
			t.Errorf("normal report contains %q, want it gated to level 3", gated)
		}
	}
}

func TestReportOutOfRangeDetailClamped(t *testing.T) {
	snap := reportSnapshot()

	low := renderAt(t, snap, 0)
	if strings.Contains(low, "Optimization Tips") {
		t.Error("detail 0 rendered level-2 sections, want clamp to minimal")
	}

	high := renderAt(t, snap, 9)
	if !strings.Contains(high, "Quantization Guide (GGUF)") {
		t.Error("detail 9 missing level-3 sections, want clamp to full")
	}
}

func TestReportEmptySnapshot(t *testing.T) {
	snap := &hwinfo.Snapshot{
		ID:          "bare",
		Timestamp:   time.Now().UTC(),
		GPUs:        []hwinfo.GPUInfo{},
		Disks:       []hwinfo.DiskInfo{},
		Motherboard: hwinfo.BoardUnknown,
	}
	out := renderAt(t, snap, DetailFull)

	for _, want := range []string{
		"No dedicated GPU detected",
		"No volumes detected",
		"N/A",
		"Your system can run basic models with CPU inference.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("empty report missing %q", want)
		}
	}
	if strings.Contains(out, "Motherboard") {
		t.Error("empty report names an unreadable motherboard")
	}
}

func TestReportBatteryStates(t *testing.T) {
	snap := reportSnapshot()
	secs := int64(7200)
	snap.Battery = &hwinfo.BatteryInfo{Percent: 80, Plugged: false, TimeLeft: "2h 0m", TimeLeftSeconds: &secs}

	out := renderAt(t, snap, DetailNormal)
	if !strings.Contains(out, "On Battery (2h 0m)") {
		t.Errorf("report missing discharge status, got:\n%s", out)
	}

	snap.Battery = &hwinfo.BatteryInfo{Percent: 100, Plugged: true, TimeLeft: "Unlimited"}
	out = renderAt(t, snap, DetailNormal)
	if !strings.Contains(out, "Plugged In") {
		t.Error("report missing plugged-in status")
	}
}

func TestReportAppleSilicon(t *testing.T) {
	snap := reportSnapshot()
	snap.GPUs = []hwinfo.GPUInfo{{Vendor: hwinfo.VendorApple, Name: "Apple M3 Max", VRAMTotalGB: fptr(36.0)}}
	snap.AppleSilicon = &hwinfo.AppleSiliconInfo{
		Chip:            "Apple M3 Max",
		Variant:         "M3",
		UnifiedMemoryGB: 36.0,
		SupportsMLX:     true,
	}

	out := renderAt(t, snap, DetailNormal)
	for _, want := range []string{
		"Apple Silicon",
		"Apple M3 Max",
		"36.0 GB",
		"✓ Yes",
		"Apple Silicon - MLX-accelerated inference available",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportHonorsUISettings(t *testing.T) {
	cfg := config.Default()
	cfg.UI.ShowProgressBars = false
	cfg.UI.UseEmoji = false

	var buf bytes.Buffer
	New(&buf, cfg).Report(reportSnapshot(), DetailFull)
	out := buf.String()

	if strings.Contains(out, gaugeFilled) {
		t.Error("report draws gauges with progress bars disabled")
	}
	if strings.Contains(out, "🟢") || strings.Contains(out, "💻") {
		t.Error("report draws emoji icons with emoji disabled")
	}
	if !strings.Contains(out, "▶ CPU") {
		t.Error("report missing plain section marker with emoji disabled")
	}
}

func TestReportCapsDiskList(t *testing.T) {
	cfg := config.Default()
	cfg.UI.MaxDisks = 2

	snap := reportSnapshot()
	snap.Disks = []hwinfo.DiskInfo{
		{Mountpoint: "/", Type: hwinfo.DiskNVMe, TotalBytes: 1 << 40, FreeBytes: 1 << 39, IsSystem: true},
		{Mountpoint: "/data", Type: hwinfo.DiskHDD, TotalBytes: 4 << 40, FreeBytes: 2 << 40},
		{Mountpoint: "/backup", Type: hwinfo.DiskHDD, TotalBytes: 8 << 40, FreeBytes: 6 << 40},
	}

	var buf bytes.Buffer
	New(&buf, cfg).Report(snap, DetailNormal)
	out := buf.String()

	if strings.Contains(out, "/backup") {
		t.Error("report shows volumes past the configured cap")
	}
	if !strings.Contains(out, "and 1 more volumes") {
		t.Error("report missing the truncation note")
	}
}

func TestBenchmarkNotice(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).BenchmarkNotice()

	if !strings.Contains(buf.String(), "Running disk benchmark...") {
		t.Errorf("notice = %q", buf.String())
	}
}

func TestNewWithNilConfigUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).Report(reportSnapshot(), DetailNormal)

	if buf.Len() == 0 {
		t.Fatal("nil-config renderer produced no output")
	}
}
