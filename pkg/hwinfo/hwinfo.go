// Package hwinfo probes the host for the hardware facts that matter when
// sizing local LLM inference: CPU topology, GPUs and their VRAM, memory,
// storage, battery, board and Apple Silicon extras. Probes are independent
// and individually fallible; whatever a platform does not expose is left
// absent (nil) in the snapshot rather than failing the collection.
package hwinfo

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/diskbench"
)

// Vendor identifies a GPU manufacturer.
type Vendor string

const (
	VendorNVIDIA  Vendor = "NVIDIA"
	VendorAMD     Vendor = "AMD"
	VendorIntel   Vendor = "Intel"
	VendorApple   Vendor = "Apple"
	VendorUnknown Vendor = "Unknown"
)

// DiskType classifies the storage medium backing a volume.
type DiskType string

const (
	DiskNVMe    DiskType = "NVMe"
	DiskSSD     DiskType = "SSD"
	DiskHDD     DiskType = "HDD"
	DiskUnknown DiskType = "Unknown"
)

// BoardUnknown is the defined placeholder for an unreadable motherboard,
// distinct from an absent field.
const BoardUnknown = "N/A"

// Snapshot aggregates the output of every probe for one collection run.
// Nil sub-records mean the probe found nothing or failed; empty slices mean
// the probe ran and found no entries.
type Snapshot struct {
	ID           string            `json:"id" yaml:"id" toml:"id"`
	Timestamp    time.Time         `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	OS           *OSInfo           `json:"os" yaml:"os" toml:"os,omitempty"`
	CPU          *CPUInfo          `json:"cpu" yaml:"cpu" toml:"cpu,omitempty"`
	GPUs         []GPUInfo         `json:"gpus" yaml:"gpus" toml:"gpus"`
	Memory       *MemoryInfo       `json:"memory" yaml:"memory" toml:"memory,omitempty"`
	Disks        []DiskInfo        `json:"disks" yaml:"disks" toml:"disks"`
	Battery      *BatteryInfo      `json:"battery" yaml:"battery" toml:"battery,omitempty"`
	Motherboard  string            `json:"motherboard" yaml:"motherboard" toml:"motherboard"`
	AppleSilicon *AppleSiliconInfo `json:"apple_silicon" yaml:"apple_silicon" toml:"apple_silicon,omitempty"`
	Benchmark    *diskbench.Result `json:"benchmark" yaml:"benchmark" toml:"benchmark,omitempty"`
}

// OSInfo describes the operating system and runtime environment.
type OSInfo struct {
	System        string `json:"system" yaml:"system" toml:"system"`                         // "Linux", "Darwin", "Windows"
	Release       string `json:"release" yaml:"release" toml:"release"`                      // kernel release
	Version       string `json:"version" yaml:"version" toml:"version"`                      // platform version, e.g. "24.04"
	Machine       string `json:"machine" yaml:"machine" toml:"machine"`                      // "x86_64", "arm64"
	Platform      string `json:"platform" yaml:"platform" toml:"platform"`                   // distribution or product name
	Hostname      string `json:"hostname" yaml:"hostname" toml:"hostname"`
	GoVersion     string `json:"go_version" yaml:"go_version" toml:"go_version"`
	UptimeSeconds uint64 `json:"uptime_seconds" yaml:"uptime_seconds" toml:"uptime_seconds"`
}

// CPUInfo describes the processor. Pointer fields are nil when the platform
// exposes no value for them.
type CPUInfo struct {
	Name           string   `json:"name" yaml:"name" toml:"name"`
	CoresPhysical  *int     `json:"cores_physical" yaml:"cores_physical" toml:"cores_physical,omitempty"`
	CoresLogical   *int     `json:"cores_logical" yaml:"cores_logical" toml:"cores_logical,omitempty"`
	CurrentFreqMHz *float64 `json:"current_freq_mhz" yaml:"current_freq_mhz" toml:"current_freq_mhz,omitempty"`
	MaxFreqMHz     *float64 `json:"max_freq_mhz" yaml:"max_freq_mhz" toml:"max_freq_mhz,omitempty"`
	UsagePercent   *float64 `json:"usage_percent" yaml:"usage_percent" toml:"usage_percent,omitempty"`
	TemperatureC   *float64 `json:"temperature_c" yaml:"temperature_c" toml:"temperature_c,omitempty"`
}

// GPUInfo describes a single display adapter as reported by one backend.
type GPUInfo struct {
	Vendor             Vendor   `json:"vendor" yaml:"vendor" toml:"vendor"`
	Name               string   `json:"name" yaml:"name" toml:"name"`
	VRAMTotalGB        *float64 `json:"vram_total_gb" yaml:"vram_total_gb" toml:"vram_total_gb,omitempty"`
	VRAMUsedGB         *float64 `json:"vram_used_gb" yaml:"vram_used_gb" toml:"vram_used_gb,omitempty"`
	UtilizationPercent *float64 `json:"utilization_percent" yaml:"utilization_percent" toml:"utilization_percent,omitempty"`
	TemperatureC       *float64 `json:"temperature_c" yaml:"temperature_c" toml:"temperature_c,omitempty"`
}

// MemoryInfo describes RAM and swap. Used RAM is derived as total minus
// available so the identity holds on every platform.
type MemoryInfo struct {
	RAMTotalBytes     uint64  `json:"ram_total_bytes" yaml:"ram_total_bytes" toml:"ram_total_bytes"`
	RAMAvailableBytes uint64  `json:"ram_available_bytes" yaml:"ram_available_bytes" toml:"ram_available_bytes"`
	RAMUsedBytes      uint64  `json:"ram_used_bytes" yaml:"ram_used_bytes" toml:"ram_used_bytes"`
	RAMPercent        float64 `json:"ram_percent" yaml:"ram_percent" toml:"ram_percent"`
	SwapTotalBytes    uint64  `json:"swap_total_bytes" yaml:"swap_total_bytes" toml:"swap_total_bytes"`
	SwapUsedBytes     uint64  `json:"swap_used_bytes" yaml:"swap_used_bytes" toml:"swap_used_bytes"`
	SwapPercent       float64 `json:"swap_percent" yaml:"swap_percent" toml:"swap_percent"`
}

// DiskInfo describes one mounted volume.
type DiskInfo struct {
	Mountpoint  string   `json:"mountpoint" yaml:"mountpoint" toml:"mountpoint"`
	Device      string   `json:"device" yaml:"device" toml:"device"`
	Fstype      string   `json:"fstype" yaml:"fstype" toml:"fstype"`
	Type        DiskType `json:"type" yaml:"type" toml:"type"`
	TotalBytes  uint64   `json:"total_bytes" yaml:"total_bytes" toml:"total_bytes"`
	UsedBytes   uint64   `json:"used_bytes" yaml:"used_bytes" toml:"used_bytes"`
	FreeBytes   uint64   `json:"free_bytes" yaml:"free_bytes" toml:"free_bytes"`
	UsedPercent float64  `json:"percent" yaml:"percent" toml:"percent"`
	IsSystem    bool     `json:"is_system" yaml:"is_system" toml:"is_system"`
}

// BatteryInfo describes charge state on battery-powered hosts.
// TimeLeftSeconds is nil while plugged in or when the OS cannot estimate.
type BatteryInfo struct {
	Percent         float64 `json:"percent" yaml:"percent" toml:"percent"`
	Plugged         bool    `json:"plugged" yaml:"plugged" toml:"plugged"`
	TimeLeft        string  `json:"time_left" yaml:"time_left" toml:"time_left"`
	TimeLeftSeconds *int64  `json:"time_left_seconds" yaml:"time_left_seconds" toml:"time_left_seconds,omitempty"`
}

// AppleSiliconInfo describes an Apple M-series chip and its unified memory.
type AppleSiliconInfo struct {
	Chip            string  `json:"chip" yaml:"chip" toml:"chip"`
	Variant         string  `json:"variant" yaml:"variant" toml:"variant"` // "M1".."M4" or "Unknown"
	UnifiedMemoryGB float64 `json:"unified_memory_gb" yaml:"unified_memory_gb" toml:"unified_memory_gb"`
	SupportsMLX     bool    `json:"supports_mlx" yaml:"supports_mlx" toml:"supports_mlx"`
}

// Options tunes a collection run. The zero value is usable.
type Options struct {
	// CPUSampleInterval is the blocking window for the CPU usage sample.
	// Kept sub-second so collection stays snappy. Default 500ms.
	CPUSampleInterval time.Duration

	// ToolTimeout bounds each external vendor-tool invocation so a wedged
	// nvidia-smi or system_profiler cannot hang collection. Default 5s.
	ToolTimeout time.Duration

	// Logger receives probe diagnostics at debug level. Nil discards them.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.CPUSampleInterval <= 0 {
		o.CPUSampleInterval = 500 * time.Millisecond
	}
	if o.CPUSampleInterval > time.Second {
		o.CPUSampleInterval = time.Second
	}
	if o.ToolTimeout <= 0 {
		o.ToolTimeout = 5 * time.Second
	}
	return o
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Collect runs every probe and assembles the snapshot. Probes are
// independent, so they run concurrently; each one is fenced so a panic or
// failure inside it only blanks its own section. Collect itself never
// fails: a snapshot with every field absent is still a valid result.
func Collect(ctx context.Context, opts Options) *Snapshot {
	opts = opts.withDefaults()

	snap := &Snapshot{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		GPUs:        []GPUInfo{},
		Disks:       []DiskInfo{},
		Motherboard: BoardUnknown,
	}

	var wg sync.WaitGroup
	probe := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hwFence(opts.logger(), name, fn)
		}()
	}

	probe("os", func() { snap.OS = hwCollectOS(ctx, opts) })
	probe("cpu", func() { snap.CPU = hwCollectCPU(ctx, opts) })
	probe("gpu", func() { snap.GPUs = hwCollectGPUs(ctx, opts) })
	probe("memory", func() { snap.Memory = hwCollectMemory(ctx, opts) })
	probe("disk", func() { snap.Disks = hwCollectDisks(ctx, opts) })
	probe("battery", func() { snap.Battery = hwCollectBattery(ctx, opts) })
	probe("board", func() { snap.Motherboard = hwCollectBoard(ctx, opts) })
	probe("silicon", func() { snap.AppleSilicon = hwCollectSilicon(ctx, opts) })
	wg.Wait()

	if snap.GPUs == nil {
		snap.GPUs = []GPUInfo{}
	}
	if snap.Disks == nil {
		snap.Disks = []DiskInfo{}
	}
	return snap
}

// hwFence runs one probe and absorbs any panic, so a misbehaving backend
// can only blank its own section.
func hwFence(logger *log.Logger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("probe panicked", "probe", name, "panic", r)
		}
	}()
	fn()
}
