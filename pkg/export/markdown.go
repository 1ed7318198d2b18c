package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/diskbench"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// MarkdownFormatter writes a human-readable report covering the same
// sections as the terminal output, minus the guidance tables.
type MarkdownFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *MarkdownFormatter) Format(w *bytes.Buffer, snap *hwinfo.Snapshot) error {
	fmt.Fprintf(w, "# LLM-Neofetch++ System Report\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", snap.Timestamp.Format(time.RFC3339))

	f.writeSystem(w, snap)
	f.writeCPU(w, snap.CPU)
	f.writeGPUs(w, snap.GPUs)
	f.writeMemory(w, snap.Memory)
	f.writeDisks(w, snap.Disks)
	f.writeBattery(w, snap.Battery)
	f.writeSilicon(w, snap.AppleSilicon)
	f.writeBenchmark(w, snap.Benchmark)
	return nil
}

func (f *MarkdownFormatter) writeSystem(w *bytes.Buffer, snap *hwinfo.Snapshot) {
	fmt.Fprintf(w, "## System Information\n\n")
	if os := snap.OS; os != nil {
		platform := os.Platform
		if platform == "" {
			platform = os.System
		}
		fmt.Fprintf(w, "- **OS**: %s %s\n", platform, os.Version)
		fmt.Fprintf(w, "- **Kernel**: %s\n", os.Release)
		fmt.Fprintf(w, "- **Architecture**: %s\n", os.Machine)
		if os.Hostname != "" {
			fmt.Fprintf(w, "- **Hostname**: %s\n", os.Hostname)
		}
		fmt.Fprintf(w, "- **Uptime**: %s\n", formatUptime(os.UptimeSeconds))
	} else {
		fmt.Fprintf(w, "- **OS**: N/A\n")
	}
	if snap.Motherboard != "" && snap.Motherboard != hwinfo.BoardUnknown {
		fmt.Fprintf(w, "- **Motherboard**: %s\n", snap.Motherboard)
	}
	fmt.Fprintf(w, "\n")
}

func (f *MarkdownFormatter) writeCPU(w *bytes.Buffer, cpu *hwinfo.CPUInfo) {
	fmt.Fprintf(w, "## CPU\n\n")
	if cpu == nil {
		fmt.Fprintf(w, "- **Model**: N/A\n\n")
		return
	}
	fmt.Fprintf(w, "- **Model**: %s\n", cpu.Name)
	if cpu.CoresPhysical != nil && cpu.CoresLogical != nil {
		fmt.Fprintf(w, "- **Cores**: %d physical / %d logical\n", *cpu.CoresPhysical, *cpu.CoresLogical)
	}
	if cpu.CurrentFreqMHz != nil {
		fmt.Fprintf(w, "- **Frequency**: %.0f MHz\n", *cpu.CurrentFreqMHz)
	}
	if cpu.UsagePercent != nil {
		fmt.Fprintf(w, "- **Usage**: %.1f%%\n", *cpu.UsagePercent)
	}
	if cpu.TemperatureC != nil {
		fmt.Fprintf(w, "- **Temperature**: %.1f C\n", *cpu.TemperatureC)
	}
	fmt.Fprintf(w, "\n")
}

func (f *MarkdownFormatter) writeGPUs(w *bytes.Buffer, gpus []hwinfo.GPUInfo) {
	fmt.Fprintf(w, "## GPU\n\n")
	if len(gpus) == 0 {
		fmt.Fprintf(w, "No dedicated GPU detected.\n\n")
		return
	}
	for i, gpu := range gpus {
		fmt.Fprintf(w, "### GPU %d: %s\n\n", i+1, gpu.Name)
		fmt.Fprintf(w, "- **Vendor**: %s\n", gpu.Vendor)
		if gpu.VRAMTotalGB != nil {
			fmt.Fprintf(w, "- **VRAM**: %.1f GB\n", *gpu.VRAMTotalGB)
		}
		if gpu.VRAMUsedGB != nil {
			fmt.Fprintf(w, "- **VRAM Used**: %.1f GB\n", *gpu.VRAMUsedGB)
		}
		if gpu.UtilizationPercent != nil {
			fmt.Fprintf(w, "- **Utilization**: %.0f%%\n", *gpu.UtilizationPercent)
		}
		if gpu.TemperatureC != nil {
			fmt.Fprintf(w, "- **Temperature**: %.0f C\n", *gpu.TemperatureC)
		}
		fmt.Fprintf(w, "\n")
	}
}

func (f *MarkdownFormatter) writeMemory(w *bytes.Buffer, mem *hwinfo.MemoryInfo) {
	fmt.Fprintf(w, "## Memory\n\n")
	if mem == nil {
		fmt.Fprintf(w, "- **RAM**: N/A\n\n")
		return
	}
	fmt.Fprintf(w, "- **RAM**: %s\n", humanize.IBytes(mem.RAMTotalBytes))
	fmt.Fprintf(w, "- **Available**: %s\n", humanize.IBytes(mem.RAMAvailableBytes))
	fmt.Fprintf(w, "- **Usage**: %.1f%%\n", mem.RAMPercent)
	if mem.SwapTotalBytes > 0 {
		fmt.Fprintf(w, "- **Swap**: %s (%.0f%% used)\n", humanize.IBytes(mem.SwapTotalBytes), mem.SwapPercent)
	} else {
		fmt.Fprintf(w, "- **Swap**: none\n")
	}
	fmt.Fprintf(w, "\n")
}

func (f *MarkdownFormatter) writeDisks(w *bytes.Buffer, disks []hwinfo.DiskInfo) {
	fmt.Fprintf(w, "## Storage\n\n")
	if len(disks) == 0 {
		fmt.Fprintf(w, "No volumes detected.\n\n")
		return
	}
	for _, d := range disks {
		fmt.Fprintf(w, "### %s [%s]\n\n", d.Mountpoint, d.Type)
		fmt.Fprintf(w, "- **Total**: %s\n", humanize.IBytes(d.TotalBytes))
		fmt.Fprintf(w, "- **Free**: %s\n", humanize.IBytes(d.FreeBytes))
		fmt.Fprintf(w, "- **Usage**: %.1f%%\n\n", d.UsedPercent)
	}
}

func (f *MarkdownFormatter) writeBattery(w *bytes.Buffer, bat *hwinfo.BatteryInfo) {
	if bat == nil {
		return
	}
	fmt.Fprintf(w, "## Battery\n\n")
	status := "On Battery"
	if bat.Plugged {
		status = "Plugged In"
	}
	fmt.Fprintf(w, "- **Status**: %s\n", status)
	fmt.Fprintf(w, "- **Charge**: %.0f%%\n", bat.Percent)
	fmt.Fprintf(w, "- **Time Left**: %s\n\n", bat.TimeLeft)
}

func (f *MarkdownFormatter) writeSilicon(w *bytes.Buffer, si *hwinfo.AppleSiliconInfo) {
	if si == nil {
		return
	}
	fmt.Fprintf(w, "## Apple Silicon\n\n")
	fmt.Fprintf(w, "- **Chip**: %s\n", si.Chip)
	fmt.Fprintf(w, "- **Unified Memory**: %.1f GB\n", si.UnifiedMemoryGB)
	mlx := "No"
	if si.SupportsMLX {
		mlx = "Yes"
	}
	fmt.Fprintf(w, "- **MLX Support**: %s\n\n", mlx)
}

func (f *MarkdownFormatter) writeBenchmark(w *bytes.Buffer, bench *diskbench.Result) {
	if bench == nil {
		return
	}
	fmt.Fprintf(w, "## Disk Benchmark\n\n")
	fmt.Fprintf(w, "- **Write Speed**: %.1f MB/s\n", bench.WriteMBps)
	fmt.Fprintf(w, "- **Read Speed**: %.1f MB/s\n", bench.ReadMBps)
	fmt.Fprintf(w, "- **Test Size**: %d MB (%s)\n\n", bench.FileSizeMB, bench.Path)
}

func formatUptime(secs uint64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

func init() {
	factory := func() Formatter { return &MarkdownFormatter{} }
	Register(".md", factory)
	Register(".markdown", factory)
}

// Ensure MarkdownFormatter implements Formatter.
var _ Formatter = (*MarkdownFormatter)(nil)
