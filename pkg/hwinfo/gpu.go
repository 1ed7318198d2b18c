package hwinfo

import (
	"context"
	"encoding/json"
	"strings"
)

// gpuBackend is one vendor-specific detection strategy. Implementations
// report zero adapters for "nothing here" and must swallow their own
// failures; the dispatcher treats every backend as optional.
type gpuBackend interface {
	Name() string
	Detect(ctx context.Context, opts Options) []GPUInfo
}

// hwCollectGPUs merges every platform backend's findings into one list.
// Backends run in a fixed order and results are concatenated as-is: an
// adapter visible to two backends is listed twice rather than merged.
// No adapters is a valid outcome and yields an empty, non-nil list.
func hwCollectGPUs(ctx context.Context, opts Options) []GPUInfo {
	gpus := hwDetectPlatformGPUs(ctx, opts)
	if gpus == nil {
		gpus = []GPUInfo{}
	}
	for i := range gpus {
		hwClampVRAM(&gpus[i])
	}
	return gpus
}

func hwRunBackends(ctx context.Context, opts Options, backends ...gpuBackend) []GPUInfo {
	var gpus []GPUInfo
	for _, b := range backends {
		found := b.Detect(ctx, opts)
		if len(found) == 0 {
			continue
		}
		opts.logger().Debug("gpu backend reported adapters", "backend", b.Name(), "count", len(found))
		gpus = append(gpus, found...)
	}
	return gpus
}

// hwClampVRAM tolerates driver rounding that would report more VRAM in use
// than the card carries.
func hwClampVRAM(g *GPUInfo) {
	if g.VRAMTotalGB != nil && *g.VRAMTotalGB < 0 {
		g.VRAMTotalGB = hwPtr(0.0)
	}
	if g.VRAMUsedGB != nil && *g.VRAMUsedGB < 0 {
		g.VRAMUsedGB = hwPtr(0.0)
	}
	if g.VRAMTotalGB != nil && g.VRAMUsedGB != nil && *g.VRAMUsedGB > *g.VRAMTotalGB {
		g.VRAMUsedGB = hwPtr(*g.VRAMTotalGB)
	}
	if g.UtilizationPercent != nil {
		g.UtilizationPercent = hwPtr(hwClampPercent(*g.UtilizationPercent))
	}
}

// nvidiaSMI queries the NVIDIA management tool.
type nvidiaSMI struct{}

func (nvidiaSMI) Name() string { return "nvidia-smi" }

func (nvidiaSMI) Detect(ctx context.Context, opts Options) []GPUInfo {
	out, err := hwRunTool(ctx, opts.ToolTimeout, "nvidia-smi",
		"--query-gpu=name,memory.total,memory.used,utilization.gpu,temperature.gpu",
		"--format=csv,noheader,nounits")
	if err != nil {
		opts.logger().Debug("nvidia detection skipped", "err", err)
		return nil
	}
	return hwParseNvidiaSMI(out)
}

// hwParseNvidiaSMI parses the CSV output of:
//
//	nvidia-smi --query-gpu=name,memory.total,memory.used,utilization.gpu,temperature.gpu --format=csv,noheader,nounits
//
// Each line reads "name, vram_total_mib, vram_used_mib, util_pct, temp_c".
// Temperature may be reported as "[N/A]" on passively sensed cards.
func hwParseNvidiaSMI(output string) []GPUInfo {
	var gpus []GPUInfo
	for _, line := range strings.Split(output, "\n") {
		if gpu, ok := hwParseNvidiaSMILine(line); ok {
			gpus = append(gpus, gpu)
		}
	}
	return gpus
}

func hwParseNvidiaSMILine(line string) (GPUInfo, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return GPUInfo{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	total, okTotal := hwParseFloat(parts[1])
	used, okUsed := hwParseFloat(parts[2])
	util, okUtil := hwParseFloat(parts[3])
	if parts[0] == "" || !okTotal || !okUsed || !okUtil {
		return GPUInfo{}, false
	}

	gpu := GPUInfo{
		Vendor:             VendorNVIDIA,
		Name:               parts[0],
		VRAMTotalGB:        hwPtr(hwMiBToGB(total)),
		VRAMUsedGB:         hwPtr(hwMiBToGB(used)),
		UtilizationPercent: hwPtr(hwClampPercent(util)),
	}
	if temp, ok := hwParseFloat(parts[4]); ok {
		gpu.TemperatureC = hwPtr(temp)
	}
	return gpu, true
}

// rocmSMI queries the AMD ROCm management tool. The tool reports the
// product name only in this mode; VRAM and utilization stay absent.
type rocmSMI struct{}

func (rocmSMI) Name() string { return "rocm-smi" }

func (rocmSMI) Detect(ctx context.Context, opts Options) []GPUInfo {
	out, err := hwRunTool(ctx, opts.ToolTimeout, "rocm-smi", "--showproductname")
	if err != nil {
		opts.logger().Debug("amd detection skipped", "err", err)
		return nil
	}
	return hwParseRocmSMI(out)
}

// hwParseRocmSMI extracts the card name from rocm-smi --showproductname
// output, lines shaped like:
//
//	GPU[0]		: Card series:		Navi 31 [Radeon RX 7900 XTX]
func hwParseRocmSMI(output string) []GPUInfo {
	if strings.TrimSpace(output) == "" {
		return nil
	}
	name := "AMD GPU"
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "GPU") && !strings.Contains(line, "Card") {
			continue
		}
		i := strings.LastIndex(line, ":")
		if i < 0 {
			continue
		}
		if v := strings.TrimSpace(line[i+1:]); v != "" {
			name = v
			break
		}
	}
	return []GPUInfo{{Vendor: VendorAMD, Name: name}}
}

// syclLS detects Intel Arc/Xe parts through the oneAPI device lister.
type syclLS struct{}

func (syclLS) Name() string { return "sycl-ls" }

func (syclLS) Detect(ctx context.Context, opts Options) []GPUInfo {
	out, err := hwRunTool(ctx, opts.ToolTimeout, "sycl-ls")
	if err != nil {
		opts.logger().Debug("intel detection skipped", "err", err)
		return nil
	}
	return hwParseSyclLS(out)
}

func hwParseSyclLS(output string) []GPUInfo {
	if !strings.Contains(output, "Intel") {
		return nil
	}
	return []GPUInfo{{Vendor: VendorIntel, Name: "Intel GPU (Arc/Xe)"}}
}

// hwSPDisplays mirrors the JSON emitted by
// system_profiler SPDisplaysDataType -json on macOS.
type hwSPDisplays struct {
	SPDisplaysDataType []hwSPDisplayEntry `json:"SPDisplaysDataType"`
}

type hwSPDisplayEntry struct {
	Model      string `json:"sppci_model"`
	Vendor     string `json:"spdisplays_vendor"`
	VRAM       string `json:"spdisplays_vram"`        // e.g. "8 GB"
	VRAMShared string `json:"spdisplays_vram_shared"` // integrated adapters
}

func hwParseSPDisplays(data []byte) []GPUInfo {
	var payload hwSPDisplays
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}

	var gpus []GPUInfo
	for _, entry := range payload.SPDisplaysDataType {
		name := strings.TrimSpace(entry.Model)
		if name == "" {
			continue
		}
		gpu := GPUInfo{
			Name:   name,
			Vendor: hwNormalizeGPUVendor(entry.Vendor + " " + name),
		}
		vram := entry.VRAM
		if vram == "" {
			vram = entry.VRAMShared
		}
		if gb, ok := hwParseVRAMString(vram); ok {
			gpu.VRAMTotalGB = hwPtr(gb)
		}
		gpus = append(gpus, gpu)
	}
	return gpus
}

// hwParseVRAMString converts human-readable VRAM strings like "8 GB" or
// "1536 MB" to gigabytes.
func hwParseVRAMString(s string) (float64, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(lower, " gb"):
		if v, ok := hwParseFloat(strings.TrimSuffix(lower, " gb")); ok && v > 0 {
			return hwRound2(v), true
		}
	case strings.HasSuffix(lower, " mb"):
		if v, ok := hwParseFloat(strings.TrimSuffix(lower, " mb")); ok && v > 0 {
			return hwMiBToGB(v), true
		}
	}
	return 0, false
}

// hwNormalizeGPUVendor classifies an adapter by its vendor or marketing
// string. Check order matters: "Corporation" contains "ati", so Intel must
// be checked before AMD/ATI.
func hwNormalizeGPUVendor(s string) Vendor {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "nvidia"), strings.Contains(lower, "geforce"), strings.Contains(lower, "quadro"):
		return VendorNVIDIA
	case strings.Contains(lower, "intel"), strings.Contains(lower, "iris"), strings.Contains(lower, "arc"):
		return VendorIntel
	case strings.Contains(lower, "apple"):
		return VendorApple
	case strings.Contains(lower, "amd"), strings.Contains(lower, "radeon"), strings.Contains(lower, "ati"):
		return VendorAMD
	default:
		return VendorUnknown
	}
}

// hwVendorFromPCIID maps the PCI vendor IDs that show up under
// /sys/class/drm to their canonical vendors.
func hwVendorFromPCIID(id string) Vendor {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "0x10de":
		return VendorNVIDIA
	case "0x1002":
		return VendorAMD
	case "0x8086":
		return VendorIntel
	default:
		return VendorUnknown
	}
}
