package render

import (
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/config"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// TipLevel grades a piece of advice or a measurement.
type TipLevel int

const (
	TipGood TipLevel = iota
	TipInfo
	TipWarn
	TipBad
)

// Tip is one line of hardware advice.
type Tip struct {
	Level TipLevel
	Text  string
}

// Recommend filters the model tiers down to those the hardware can hold.
// Order is preserved, smallest tier first.
func Recommend(tiers []config.ModelTier, vramGB, ramGB float64) []config.ModelTier {
	var fit []config.ModelTier
	for _, tier := range tiers {
		if vramGB >= tier.VRAMMinGB && ramGB >= tier.RAMMinGB {
			fit = append(fit, tier)
		}
	}
	return fit
}

// Tips derives optimization advice from the measured hardware.
func Tips(vramGB, ramGB, swapGB float64, diskType hwinfo.DiskType, silicon *hwinfo.AppleSiliconInfo) []Tip {
	var tips []Tip

	if vramGB < 8 {
		tips = append(tips, Tip{TipWarn, "Low VRAM - Use CPU inference or smaller quantized models"})
	} else if vramGB >= 24 {
		tips = append(tips, Tip{TipGood, "Excellent VRAM - Can run 70B models with Q4 quantization"})
	}

	if ramGB >= 32 {
		tips = append(tips, Tip{TipGood, "Good RAM - CPU-only inference viable for 13-30B models"})
	}

	if swapGB < 16 && ramGB < 64 {
		tips = append(tips, Tip{TipWarn, "Consider increasing swap/pagefile to 16-32 GB for large models"})
	}

	if diskType == hwinfo.DiskNVMe || diskType == hwinfo.DiskSSD {
		tips = append(tips, Tip{TipGood, "Fast storage - Quick model loading and context management"})
	} else {
		tips = append(tips, Tip{TipInfo, "Consider SSD/NVMe for faster model loading"})
	}

	if silicon != nil && silicon.SupportsMLX {
		tips = append(tips, Tip{TipGood, "Apple Silicon - MLX-accelerated inference available"})
	}

	return tips
}

// ClassifyDiskSpeed grades a sequential throughput figure in MB/s.
func ClassifyDiskSpeed(mbps float64) (string, TipLevel) {
	switch {
	case mbps >= 2000:
		return "Excellent (NVMe)", TipGood
	case mbps >= 500:
		return "Good (SATA SSD)", TipInfo
	case mbps >= 100:
		return "Moderate", TipWarn
	default:
		return "Slow (HDD)", TipBad
	}
}

// MaxVRAM returns the largest VRAM capacity across the detected GPUs,
// zero when none report one.
func MaxVRAM(gpus []hwinfo.GPUInfo) float64 {
	max := 0.0
	for _, gpu := range gpus {
		if gpu.VRAMTotalGB != nil && *gpu.VRAMTotalGB > max {
			max = *gpu.VRAMTotalGB
		}
	}
	return max
}

// PrimaryDiskType returns the type of the first listed volume, the system
// volume by ordering, or Unknown when no volumes were detected.
func PrimaryDiskType(disks []hwinfo.DiskInfo) hwinfo.DiskType {
	if len(disks) == 0 {
		return hwinfo.DiskUnknown
	}
	return disks[0].Type
}

// QuickStartCommand pairs a short description with a shell command.
type QuickStartCommand struct {
	Desc    string
	Command string
}

// QuickStart returns the suggested first commands for running local models.
func QuickStart() []QuickStartCommand {
	return []QuickStartCommand{
		{"Test with tiny model", "ollama run llama3.2:1b"},
		{"Run popular 7B model", "ollama run qwen2.5:7b"},
		{"Try coding assistant", "ollama run deepseek-coder:6.7b"},
		{"Best quality 9B", "ollama run gemma2:9b"},
	}
}
