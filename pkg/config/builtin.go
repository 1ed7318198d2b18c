package config

import "time"

// Default returns the built-in configuration. Guide tables reflect the
// current local-inference ecosystem; a config file may replace them.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			BoxWidth:         76,
			UseEmoji:         true,
			ShowProgressBars: true,
			MaxDisks:         3,
		},
		Probe: ProbeConfig{
			CPUSampleInterval: 500 * time.Millisecond,
			ToolTimeout:       5 * time.Second,
		},
		Benchmark: BenchmarkConfig{
			SizeMB:  100,
			Timeout: 30 * time.Second,
		},
		Guide: GuideConfig{
			Models:       builtinModelTiers(),
			Quantization: builtinQuantLevels(),
			Backends:     builtinBackends(),
		},
	}
}

// builtinModelTiers returns the model classes ordered smallest to largest.
// Minimums assume Q4 quantization; examples use ollama tag spelling so
// they paste straight into a terminal.
func builtinModelTiers() []ModelTier {
	return []ModelTier{
		{
			Category:  "tiny",
			Title:     "Tiny Models (Lightning Fast)",
			VRAMMinGB: 0,
			RAMMinGB:  4,
			SizeRange: "1B-3B",
			Examples:  []string{"llama3.2:1b", "qwen2.5:1.5b", "gemma2:2b"},
		},
		{
			Category:  "small",
			Title:     "Small Models (Excellent Balance)",
			VRAMMinGB: 4,
			RAMMinGB:  8,
			SizeRange: "3B-9B",
			Examples:  []string{"llama3.1:8b", "qwen2.5:7b", "gemma2:9b"},
		},
		{
			Category:  "medium",
			Title:     "Medium Models (High Quality)",
			VRAMMinGB: 8,
			RAMMinGB:  16,
			SizeRange: "10B-15B",
			Examples:  []string{"qwen2.5:14b", "phi4:14b", "mistral-nemo:12b"},
		},
		{
			Category:  "large",
			Title:     "Large Models (Superior Performance)",
			VRAMMinGB: 16,
			RAMMinGB:  32,
			SizeRange: "20B-35B",
			Examples:  []string{"qwen2.5:32b", "gemma2:27b", "mixtral:8x7b"},
		},
		{
			Category:  "xlarge",
			Title:     "Extra Large Models (Maximum Capability)",
			VRAMMinGB: 24,
			RAMMinGB:  64,
			SizeRange: "40B-75B",
			Examples:  []string{"llama3.3:70b", "qwen2.5:72b", "deepseek-r1:70b"},
		},
	}
}

// builtinQuantLevels returns the GGUF quantization guide, lowest quality
// first.
func builtinQuantLevels() []QuantLevel {
	return []QuantLevel{
		{Name: "Q2_K", Quality: "Low", UseCase: "Last resort under extreme VRAM pressure"},
		{Name: "Q3_K_M", Quality: "Fair", UseCase: "Tight VRAM, noticeable quality loss"},
		{Name: "Q4_K_M", Quality: "Good", UseCase: "Best size/quality trade-off for most setups"},
		{Name: "Q5_K_M", Quality: "Very good", UseCase: "When a little extra VRAM is available"},
		{Name: "Q6_K", Quality: "Near lossless", UseCase: "Quality-sensitive work with VRAM to spare"},
		{Name: "Q8_0", Quality: "Lossless", UseCase: "Maximum quality, double the footprint"},
	}
}

// builtinBackends returns the inference runtime comparison.
func builtinBackends() []Backend {
	return []Backend{
		{Name: "Ollama", EaseOfUse: 5, Performance: 4, Features: 4, Platforms: []string{"macOS", "Linux", "Windows"}},
		{Name: "llama.cpp", EaseOfUse: 3, Performance: 5, Features: 5, Platforms: []string{"macOS", "Linux", "Windows"}},
		{Name: "vLLM", EaseOfUse: 2, Performance: 5, Features: 4, Platforms: []string{"Linux"}},
		{Name: "LM Studio", EaseOfUse: 5, Performance: 3, Features: 3, Platforms: []string{"macOS", "Windows", "Linux"}},
		{Name: "MLX", EaseOfUse: 3, Performance: 5, Features: 3, Platforms: []string{"macOS"}},
	}
}
