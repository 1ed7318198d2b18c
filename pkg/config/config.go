// Package config loads the tool configuration: UI options, probe tunables,
// benchmark defaults and the LLM guidance tables. Everything ships with a
// built-in default, so running without a config file is the normal case.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appDirName = "llm-neofetch"

// flagBindings maps CLI flag names to the config keys they override.
var flagBindings = map[string]string{
	"bench-size":    "benchmark.size_mb",
	"bench-timeout": "benchmark.timeout",
	"bench-path":    "benchmark.path",
}

// UIConfig controls the terminal report.
type UIConfig struct {
	BoxWidth         int  `mapstructure:"box_width"`
	UseEmoji         bool `mapstructure:"use_emoji"`
	ShowProgressBars bool `mapstructure:"show_progress_bars"`
	MaxDisks         int  `mapstructure:"max_disks"`
}

// ProbeConfig tunes hardware collection.
type ProbeConfig struct {
	CPUSampleInterval time.Duration `mapstructure:"cpu_sample_interval"`
	ToolTimeout       time.Duration `mapstructure:"tool_timeout"`
}

// BenchmarkConfig holds disk benchmark defaults. An empty Path targets the
// user's home directory.
type BenchmarkConfig struct {
	SizeMB  int           `mapstructure:"size_mb"`
	Timeout time.Duration `mapstructure:"timeout"`
	Path    string        `mapstructure:"path"`
}

// ModelTier describes one class of local models and the hardware floor it
// needs. Tiers are ordered smallest to largest.
type ModelTier struct {
	Category  string   `mapstructure:"category"`
	Title     string   `mapstructure:"title"`
	VRAMMinGB float64  `mapstructure:"vram_min"`
	RAMMinGB  float64  `mapstructure:"ram_min"`
	SizeRange string   `mapstructure:"size_range"`
	Examples  []string `mapstructure:"examples"`
}

// QuantLevel describes one GGUF quantization format.
type QuantLevel struct {
	Name    string `mapstructure:"name"`
	Quality string `mapstructure:"quality"`
	UseCase string `mapstructure:"use_case"`
}

// Backend describes one inference runtime. Star ratings run 1 to 5.
type Backend struct {
	Name        string   `mapstructure:"name"`
	EaseOfUse   int      `mapstructure:"ease_of_use"`
	Performance int      `mapstructure:"performance"`
	Features    int      `mapstructure:"features"`
	Platforms   []string `mapstructure:"platforms"`
}

// GuideConfig carries the LLM guidance tables rendered at higher detail
// levels. A config file may replace any table wholesale.
type GuideConfig struct {
	Models       []ModelTier  `mapstructure:"models"`
	Quantization []QuantLevel `mapstructure:"quantization"`
	Backends     []Backend    `mapstructure:"backends"`
}

// Config is the root configuration.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Probe     ProbeConfig     `mapstructure:"probe"`
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Guide     GuideConfig     `mapstructure:"guide"`
}

// Load reads configuration from path, or when path is empty from the
// standard locations:
//  1. $XDG_CONFIG_HOME/llm-neofetch/config.yaml
//  2. ~/.config/llm-neofetch/config.yaml
//
// Environment variables override file values with the LLM_NEOFETCH prefix,
// e.g. LLM_NEOFETCH_UI_BOX_WIDTH=100. A missing file in the standard
// locations yields the defaults; an explicit path that does not exist is
// an error.
func Load(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadWithFlags is Load with CLI flag overrides bound at the highest
// precedence: a flag set on the command line beats both the file and the
// environment for its key.
func LoadWithFlags(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appDirName))
		// If XDG_CONFIG_HOME points elsewhere, still honor the default spot.
		if home, err := os.UserHomeDir(); err == nil {
			if fallback := filepath.Join(home, ".config", appDirName); fallback != filepath.Join(xdg.ConfigHome, appDirName) {
				v.AddConfigPath(fallback)
			}
		}
	}

	v.SetEnvPrefix("LLM_NEOFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := Default()
	setScalarDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path != "":
			return nil, fmt.Errorf("read config %s: %w", path, err)
		case errors.As(err, &notFound):
			// No file anywhere is fine; defaults carry the tool.
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Decoding into the prefilled struct keeps defaults for absent keys
	// and lets a file replace the guide tables wholesale.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// setScalarDefaults registers the flat keys with viper so environment
// overrides resolve even without a config file. The guide tables stay out:
// they are struct-shaped and override per-file only.
func setScalarDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("ui.box_width", cfg.UI.BoxWidth)
	v.SetDefault("ui.use_emoji", cfg.UI.UseEmoji)
	v.SetDefault("ui.show_progress_bars", cfg.UI.ShowProgressBars)
	v.SetDefault("ui.max_disks", cfg.UI.MaxDisks)
	v.SetDefault("probe.cpu_sample_interval", cfg.Probe.CPUSampleInterval)
	v.SetDefault("probe.tool_timeout", cfg.Probe.ToolTimeout)
	v.SetDefault("benchmark.size_mb", cfg.Benchmark.SizeMB)
	v.SetDefault("benchmark.timeout", cfg.Benchmark.Timeout)
	v.SetDefault("benchmark.path", cfg.Benchmark.Path)
}

// DefaultPath returns the primary config file location for help text.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "config.yaml")
}
