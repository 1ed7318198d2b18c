// Package render draws the terminal report: styled hardware sections,
// usage gauges and the model guidance blocks. It consumes a snapshot and
// the loaded configuration; nothing here probes the host.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/config"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/diskbench"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// Detail levels for the report. Higher levels render strict supersets.
const (
	DetailMinimal = 1
	DetailNormal  = 2
	DetailFull    = 3
)

// sectionIcons maps section title keywords to their emoji.
var sectionIcons = map[string]string{
	"system":          "💻",
	"cpu":             "🔧",
	"gpu":             "🎮",
	"memory":          "🧠",
	"storage":         "💾",
	"battery":         "🔋",
	"performance":     "📊",
	"recommendations": "🎯",
	"benchmarks":      "⚡",
	"llm backends":    "🚀",
	"quick start":     "🏁",
	"apple":           "🍎",
}

// vendorIcons marks GPU vendors in the adapter list.
var vendorIcons = map[hwinfo.Vendor]string{
	hwinfo.VendorNVIDIA: "🟢",
	hwinfo.VendorAMD:    "🔴",
	hwinfo.VendorIntel:  "🔵",
}

// Renderer writes the report to a single destination. Construct with New;
// the zero value is not usable.
type Renderer struct {
	w     io.Writer
	ui    config.UIConfig
	guide config.GuideConfig
}

// New builds a renderer over w using the UI and guide settings from cfg.
// A nil cfg falls back to the built-in defaults.
func New(w io.Writer, cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	ui := cfg.UI
	if ui.BoxWidth <= 0 {
		ui.BoxWidth = 76
	}
	return &Renderer{w: w, ui: ui, guide: cfg.Guide}
}

// Report renders the snapshot at the given detail level. Levels outside
// 1..3 are clamped.
func (r *Renderer) Report(snap *hwinfo.Snapshot, detail int) {
	if detail < DetailMinimal {
		detail = DetailMinimal
	}
	if detail > DetailFull {
		detail = DetailFull
	}

	r.banner()
	r.systemSection(snap)
	r.cpuSection(snap.CPU, detail)
	r.gpuSection(snap.GPUs)
	r.memorySection(snap.Memory, detail)
	r.storageSection(snap.Disks)
	r.benchmarkSection(snap.Benchmark)
	r.batterySection(snap.Battery, detail)
	r.siliconSection(snap.AppleSilicon)

	vramGB := MaxVRAM(snap.GPUs)
	ramGB, swapGB := 0.0, 0.0
	if snap.Memory != nil {
		ramGB = gb(snap.Memory.RAMTotalBytes)
		swapGB = gb(snap.Memory.SwapTotalBytes)
	}
	diskType := PrimaryDiskType(snap.Disks)

	if detail >= DetailNormal {
		r.recommendations(vramGB, ramGB)
	}
	if detail >= DetailFull {
		r.quantizationGuide()
		r.backendComparison()
	}
	if detail >= DetailNormal {
		r.tips(vramGB, ramGB, swapGB, diskType, snap.AppleSilicon)
		r.quickStart()
	}

	r.footer()
}

// BenchmarkNotice announces the blocking benchmark run before it starts.
func (r *Renderer) BenchmarkNotice() {
	fmt.Fprintf(r.w, "\n%s\n", InfoStyle.Render("Running disk benchmark..."))
}

// --- Sections ---

func (r *Renderer) banner() {
	inner := r.ui.BoxWidth - 2
	top := BorderStyle.Render("╔" + strings.Repeat("═", inner) + "╗")
	bottom := BorderStyle.Render("╚" + strings.Repeat("═", inner) + "╝")
	side := BorderStyle.Render("║")

	line := func(text string, style lipgloss.Style) string {
		return side + style.Render(centerText(text, inner)) + side
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, top)
	fmt.Fprintln(r.w, line("🗲 LLM • NEOFETCH ++ 🗲", BannerStyle))
	fmt.Fprintln(r.w, line("Advanced System Info for Local LLM Usage", lipgloss.NewStyle()))
	fmt.Fprintln(r.w, line("2026 Edition", lipgloss.NewStyle()))
	fmt.Fprintln(r.w, bottom)
}

func (r *Renderer) section(title string) {
	rule := RuleStyle.Render(strings.Repeat("─", r.ui.BoxWidth))
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintf(r.w, "%s\n", TitleStyle.Render(r.sectionIcon(title)+" "+title))
	fmt.Fprintf(r.w, "%s\n", rule)
}

func (r *Renderer) sectionIcon(title string) string {
	if !r.ui.UseEmoji {
		return "▶"
	}
	lower := strings.ToLower(title)
	for key, icon := range sectionIcons {
		if strings.Contains(lower, key) {
			return icon
		}
	}
	return "▶"
}

func (r *Renderer) kv(key, value string) {
	fmt.Fprintf(r.w, "  %s %s\n", LabelStyle.Render(fmt.Sprintf("%-14s", key)), value)
}

func (r *Renderer) systemSection(snap *hwinfo.Snapshot) {
	r.section("System Information")

	if os := snap.OS; os != nil {
		platform := os.Platform
		if platform == "" {
			platform = os.System
		}
		if os.Version != "" {
			platform += " " + os.Version
		}
		r.kv("OS", platform)
		r.kv("Kernel", fmt.Sprintf("%s (%s)", os.Release, os.Machine))
		r.kv("Uptime", formatUptime(os.UptimeSeconds))
		r.kv("Go", os.GoVersion)
	} else {
		r.kv("OS", "N/A")
	}

	if snap.Motherboard != "" && snap.Motherboard != hwinfo.BoardUnknown {
		r.kv("Motherboard", snap.Motherboard)
	}
}

func (r *Renderer) cpuSection(cpu *hwinfo.CPUInfo, detail int) {
	r.section("CPU")

	if cpu == nil {
		r.kv("Model", "N/A")
		return
	}

	r.kv("Model", cpu.Name)
	if cpu.CoresPhysical != nil && cpu.CoresLogical != nil {
		r.kv("Cores", fmt.Sprintf("%d physical / %d threads", *cpu.CoresPhysical, *cpu.CoresLogical))
	}
	if cpu.CurrentFreqMHz != nil {
		r.kv("Frequency", fmt.Sprintf("%.0f MHz", *cpu.CurrentFreqMHz))
	}

	if detail >= DetailNormal {
		if cpu.UsagePercent != nil && *cpu.UsagePercent > 0 && r.ui.ShowProgressBars {
			bar := Gauge{Width: 30, Label: "Usage", ShowPercent: true}
			fmt.Fprintf(r.w, "  %s\n", bar.Render(*cpu.UsagePercent, 100))
		}
		if cpu.TemperatureC != nil {
			style := lipgloss.NewStyle().Bold(true).Foreground(tempColor(*cpu.TemperatureC))
			fmt.Fprintf(r.w, "  Temperature:    %s\n", style.Render(fmt.Sprintf("%.1f°C", *cpu.TemperatureC)))
		}
	}
}

func (r *Renderer) gpuSection(gpus []hwinfo.GPUInfo) {
	r.section("GPU")

	if len(gpus) == 0 {
		fmt.Fprintf(r.w, "    %s\n", MutedStyle.Render("No dedicated GPU detected"))
		return
	}

	for _, gpu := range gpus {
		r.gpu(gpu)
		fmt.Fprintln(r.w)
	}
}

func (r *Renderer) gpu(gpu hwinfo.GPUInfo) {
	icon := ""
	if r.ui.UseEmoji {
		icon = vendorIcons[gpu.Vendor]
		if icon == "" {
			icon = "⚪"
		}
		icon += " "
	}
	fmt.Fprintf(r.w, "    %s%s\n", icon, BoldStyle.Render(gpu.Name))

	if gpu.VRAMTotalGB != nil && *gpu.VRAMTotalGB > 0 {
		fmt.Fprintf(r.w, "      VRAM: %.1f GB total\n", *gpu.VRAMTotalGB)
		if gpu.VRAMUsedGB != nil && *gpu.VRAMUsedGB > 0 && r.ui.ShowProgressBars {
			bar := Gauge{Width: 25}
			fmt.Fprintf(r.w, "            %s %.1f/%.1f GB\n",
				bar.Render(*gpu.VRAMUsedGB, *gpu.VRAMTotalGB), *gpu.VRAMUsedGB, *gpu.VRAMTotalGB)
		}
	}

	if gpu.UtilizationPercent != nil && *gpu.UtilizationPercent > 0 && r.ui.ShowProgressBars {
		bar := Gauge{Width: 25, Label: "Usage", ShowPercent: true}
		fmt.Fprintf(r.w, "      %s\n", bar.Render(*gpu.UtilizationPercent, 100))
	}

	if gpu.TemperatureC != nil {
		style := lipgloss.NewStyle().Bold(true).Foreground(tempColor(*gpu.TemperatureC))
		fmt.Fprintf(r.w, "      Temp: %s\n", style.Render(fmt.Sprintf("%.0f°C", *gpu.TemperatureC)))
	}
}

func (r *Renderer) memorySection(mem *hwinfo.MemoryInfo, detail int) {
	r.section("Memory")

	if mem == nil {
		r.kv("Total RAM", "N/A")
		return
	}

	r.kv("Total RAM", fmt.Sprintf("%s (%.1f GB)", humanize.IBytes(mem.RAMTotalBytes), gb(mem.RAMTotalBytes)))

	if detail >= DetailNormal {
		if r.ui.ShowProgressBars {
			bar := Gauge{Width: 30, Label: "Usage", ShowPercent: true}
			fmt.Fprintf(r.w, "  %s\n", bar.Render(float64(mem.RAMUsedBytes), float64(mem.RAMTotalBytes)))
		}
		fmt.Fprintf(r.w, "  Available:      %s\n", humanize.IBytes(mem.RAMAvailableBytes))
	}

	if mem.SwapTotalBytes > 0 {
		r.kv("Swap", fmt.Sprintf("%s (%.0f%% used)", humanize.IBytes(mem.SwapTotalBytes), mem.SwapPercent))
	} else {
		r.kv("Swap", WarningStyle.Render("None / Disabled"))
	}
}

func (r *Renderer) storageSection(disks []hwinfo.DiskInfo) {
	r.section("Storage")

	if len(disks) == 0 {
		fmt.Fprintf(r.w, "    %s\n", MutedStyle.Render("No volumes detected"))
		return
	}

	shown := disks
	if r.ui.MaxDisks > 0 && len(shown) > r.ui.MaxDisks {
		shown = shown[:r.ui.MaxDisks]
	}

	for _, d := range shown {
		r.disk(d)
		fmt.Fprintln(r.w)
	}

	if rest := len(disks) - len(shown); rest > 0 {
		fmt.Fprintf(r.w, "    %s\n", MutedStyle.Render(fmt.Sprintf("… and %d more volumes", rest)))
	}
}

func (r *Renderer) disk(d hwinfo.DiskInfo) {
	badge := fmt.Sprintf("[%s]", d.Type)
	switch d.Type {
	case hwinfo.DiskNVMe:
		badge = SuccessStyle.Render("[NVMe]")
	case hwinfo.DiskSSD:
		badge = InfoStyle.Render("[SSD]")
	case hwinfo.DiskHDD:
		badge = MutedStyle.Render("[HDD]")
	}

	fmt.Fprintf(r.w, "    %s %s\n", BoldStyle.Render(d.Mountpoint), badge)
	fmt.Fprintf(r.w, "      Total: %s  •  Free: %s\n", humanize.IBytes(d.TotalBytes), humanize.IBytes(d.FreeBytes))

	if r.ui.ShowProgressBars {
		bar := Gauge{Width: 30, Label: "Usage", ShowPercent: true}
		fmt.Fprintf(r.w, "      %s\n", bar.Render(float64(d.UsedBytes), float64(d.TotalBytes)))
	}
}

func (r *Renderer) benchmarkSection(bench *diskbench.Result) {
	if bench == nil {
		return
	}
	r.section("Benchmarks")

	readLabel, readLevel := ClassifyDiskSpeed(bench.ReadMBps)
	writeLabel, writeLevel := ClassifyDiskSpeed(bench.WriteMBps)

	fmt.Fprintf(r.w, "    Read:  %7.1f MB/s  %s\n", bench.ReadMBps, levelStyle(readLevel).Render(readLabel))
	fmt.Fprintf(r.w, "    Write: %7.1f MB/s  %s\n", bench.WriteMBps, levelStyle(writeLevel).Render(writeLabel))
	fmt.Fprintf(r.w, "    %s\n", MutedStyle.Render(fmt.Sprintf("%d MB sample at %s", bench.FileSizeMB, bench.Path)))
}

func (r *Renderer) batterySection(bat *hwinfo.BatteryInfo, detail int) {
	if bat == nil {
		return
	}
	r.section("Battery")

	status := fmt.Sprintf("🔋 On Battery (%s)", bat.TimeLeft)
	if bat.Plugged {
		status = "⚡ Plugged In"
	}
	r.kv("Status", status)

	if detail >= DetailNormal && r.ui.ShowProgressBars {
		bar := Gauge{Width: 30, Label: "Charge", ShowPercent: true}
		fmt.Fprintf(r.w, "  %s\n", bar.Render(bat.Percent, 100))
	}
}

func (r *Renderer) siliconSection(si *hwinfo.AppleSiliconInfo) {
	if si == nil {
		return
	}
	r.section("Apple Silicon")

	r.kv("Chip", si.Chip)
	r.kv("Unified Memory", fmt.Sprintf("%.1f GB", si.UnifiedMemoryGB))
	if si.SupportsMLX {
		r.kv("MLX Support", "✓ Yes")
	} else {
		r.kv("MLX Support", "✗ No")
	}
}

// --- Guidance ---

func (r *Renderer) recommendations(vramGB, ramGB float64) {
	rule := WarningStyle.Render(strings.Repeat("─", r.ui.BoxWidth))
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintf(r.w, "%s\n", WarningStyle.Render("🎯 Personalized Model Recommendations"))
	fmt.Fprintf(r.w, "%s\n\n", rule)

	fit := Recommend(r.guide.Models, vramGB, ramGB)
	if len(fit) == 0 {
		fmt.Fprintf(r.w, "  %s\n", MutedStyle.Render("Your system can run basic models with CPU inference."))
		return
	}

	for _, tier := range fit {
		fmt.Fprintf(r.w, "  %s %s (%s)\n", SuccessStyle.Render("▸"), BoldStyle.Render(tier.Title), tier.SizeRange)
		examples := tier.Examples
		if len(examples) > 3 {
			examples = examples[:3]
		}
		for _, example := range examples {
			fmt.Fprintf(r.w, "    • %s\n", example)
		}
		fmt.Fprintln(r.w)
	}
}

func (r *Renderer) quantizationGuide() {
	fmt.Fprintf(r.w, "\n%s\n", InfoStyle.Render("📊 Quantization Guide (GGUF)"))
	fmt.Fprintf(r.w, "%s\n\n", MutedStyle.Render(strings.Repeat("─", 60)))

	for _, q := range r.guide.Quantization {
		fmt.Fprintf(r.w, "  %s  %-15s  %s\n",
			BoldStyle.Render(fmt.Sprintf("%-8s", q.Name)), q.Quality, MutedStyle.Render(q.UseCase))
	}
}

func (r *Renderer) backendComparison() {
	r.section("LLM Backends Comparison")

	fmt.Fprintf(r.w, "  %-15s %-6s %-6s %-8s %s\n", "Backend", "Ease", "Speed", "Features", "Platforms")
	fmt.Fprintf(r.w, "  %s\n", MutedStyle.Render(strings.Repeat("-", 70)))

	for _, b := range r.guide.Backends {
		platforms := strings.Join(b.Platforms, ", ")
		if len(platforms) > 20 {
			platforms = platforms[:20]
		}
		fmt.Fprintf(r.w, "  %s %-6s %-6s %-8s %s\n",
			BoldStyle.Render(fmt.Sprintf("%-15s", b.Name)),
			stars(b.EaseOfUse), stars(b.Performance), stars(b.Features),
			MutedStyle.Render(platforms))
	}
}

func (r *Renderer) tips(vramGB, ramGB, swapGB float64, diskType hwinfo.DiskType, silicon *hwinfo.AppleSiliconInfo) {
	tips := Tips(vramGB, ramGB, swapGB, diskType, silicon)
	if len(tips) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\n%s\n\n", RuleStyle.Bold(true).Render("💡 Optimization Tips:"))
	for _, tip := range tips {
		fmt.Fprintf(r.w, "  %s  %s\n", levelStyle(tip.Level).Render(levelIcon(tip.Level)), tip.Text)
	}
}

func (r *Renderer) quickStart() {
	r.section("Quick Start Commands")

	fmt.Fprintf(r.w, "\n  %s\n\n", MutedStyle.Render("Try these commands:"))
	for _, cmd := range QuickStart() {
		fmt.Fprintf(r.w, "  %s %-25s %s %s\n",
			SuccessStyle.Render("▸"), cmd.Desc, MutedStyle.Render("$"), BoldStyle.Render(cmd.Command))
	}
}

func (r *Renderer) footer() {
	fmt.Fprintf(r.w, "\n%s\n", MutedStyle.Render(strings.Repeat("─", r.ui.BoxWidth)))
	fmt.Fprintf(r.w, "%s\n", MutedStyle.Render("Tip: Use 'llm-neofetch --help' for more options"))
}

// --- Helpers ---

func levelIcon(l TipLevel) string {
	switch l {
	case TipGood:
		return "✓"
	case TipInfo:
		return "ℹ"
	case TipWarn:
		return "⚠"
	default:
		return "✗"
	}
}

func levelStyle(l TipLevel) lipgloss.Style {
	switch l {
	case TipGood:
		return SuccessStyle
	case TipInfo:
		return InfoStyle
	case TipWarn:
		return WarningStyle
	default:
		return DangerStyle
	}
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("⭐", n)
}

func gb(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

func formatUptime(secs uint64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

// centerText pads text with spaces to sit centered in width display cells.
func centerText(text string, width int) string {
	pad := width - lipgloss.Width(text)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
