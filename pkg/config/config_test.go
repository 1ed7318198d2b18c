package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
)

// isolate points the XDG config home at an empty directory so a developer's
// real config file cannot leak into assertions.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	xdg.Reload()
}

func TestDefaultTables(t *testing.T) {
	cfg := Default()

	if len(cfg.Guide.Models) != 5 {
		t.Fatalf("expected 5 model tiers, got %d", len(cfg.Guide.Models))
	}
	if cfg.Guide.Models[0].Category != "tiny" {
		t.Errorf("first tier = %q, want tiny", cfg.Guide.Models[0].Category)
	}
	if cfg.Guide.Models[4].Category != "xlarge" {
		t.Errorf("last tier = %q, want xlarge", cfg.Guide.Models[4].Category)
	}

	// Tiers must be ordered by ascending hardware demand so the renderer
	// can walk them without sorting.
	for i := 1; i < len(cfg.Guide.Models); i++ {
		prev, cur := cfg.Guide.Models[i-1], cfg.Guide.Models[i]
		if cur.VRAMMinGB < prev.VRAMMinGB || cur.RAMMinGB < prev.RAMMinGB {
			t.Errorf("tier %s demands less hardware than %s", cur.Category, prev.Category)
		}
	}

	for _, tier := range cfg.Guide.Models {
		if len(tier.Examples) == 0 {
			t.Errorf("tier %s has no example models", tier.Category)
		}
		if tier.Title == "" {
			t.Errorf("tier %s has no title", tier.Category)
		}
	}

	if len(cfg.Guide.Quantization) == 0 {
		t.Error("no quantization levels")
	}
	if len(cfg.Guide.Backends) == 0 {
		t.Error("no backends")
	}
	for _, b := range cfg.Guide.Backends {
		if b.EaseOfUse < 1 || b.EaseOfUse > 5 || b.Performance < 1 || b.Performance > 5 || b.Features < 1 || b.Features > 5 {
			t.Errorf("backend %s has ratings outside 1-5", b.Name)
		}
		if len(b.Platforms) == 0 {
			t.Errorf("backend %s lists no platforms", b.Name)
		}
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.BoxWidth != 76 {
		t.Errorf("BoxWidth = %d, want 76", cfg.UI.BoxWidth)
	}
	if cfg.Probe.CPUSampleInterval != 500*time.Millisecond {
		t.Errorf("CPUSampleInterval = %v, want 500ms", cfg.Probe.CPUSampleInterval)
	}
	if cfg.Benchmark.SizeMB != 100 {
		t.Errorf("Benchmark.SizeMB = %d, want 100", cfg.Benchmark.SizeMB)
	}
	if len(cfg.Guide.Models) != 5 {
		t.Errorf("guide tables not populated, got %d tiers", len(cfg.Guide.Models))
	}
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := `
ui:
  box_width: 100
  max_disks: 5
probe:
  cpu_sample_interval: 250ms
benchmark:
  size_mb: 50
guide:
  quantization:
    - name: Q4_0
      quality: Good
      use_case: Legacy format
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.BoxWidth != 100 {
		t.Errorf("BoxWidth = %d, want 100", cfg.UI.BoxWidth)
	}
	if cfg.UI.MaxDisks != 5 {
		t.Errorf("MaxDisks = %d, want 5", cfg.UI.MaxDisks)
	}
	if !cfg.UI.UseEmoji {
		t.Error("UseEmoji lost its default when the file omitted it")
	}
	if cfg.Probe.CPUSampleInterval != 250*time.Millisecond {
		t.Errorf("CPUSampleInterval = %v, want 250ms", cfg.Probe.CPUSampleInterval)
	}
	if cfg.Benchmark.SizeMB != 50 {
		t.Errorf("Benchmark.SizeMB = %d, want 50", cfg.Benchmark.SizeMB)
	}

	// A table in the file replaces the built-in one wholesale.
	if len(cfg.Guide.Quantization) != 1 || cfg.Guide.Quantization[0].Name != "Q4_0" {
		t.Errorf("Quantization = %+v, want the single file-provided entry", cfg.Guide.Quantization)
	}
	// Tables the file omitted keep their defaults.
	if len(cfg.Guide.Models) != 5 {
		t.Errorf("Models table lost defaults, got %d tiers", len(cfg.Guide.Models))
	}
}

func TestLoadDiscoversFileInXDGPath(t *testing.T) {
	isolate(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "llm-neofetch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  box_width: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.BoxWidth != 90 {
		t.Errorf("BoxWidth = %d, want 90 from discovered file", cfg.UI.BoxWidth)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("LLM_NEOFETCH_UI_BOX_WIDTH", "120")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.BoxWidth != 120 {
		t.Errorf("BoxWidth = %d, want 120 from environment", cfg.UI.BoxWidth)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ui: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestDefaultPathUnderConfigHome(t *testing.T) {
	isolate(t)

	got := DefaultPath()
	want := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "llm-neofetch", "config.yaml")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func benchFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("bench-size", 100, "")
	fs.Duration("bench-timeout", 30*time.Second, "")
	fs.String("bench-path", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoadWithFlagsChangedFlagWins(t *testing.T) {
	isolate(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "llm-neofetch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "benchmark:\n  size_mb: 50\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithFlags("", benchFlags(t, "--bench-size=250", "--bench-timeout=5s"))
	if err != nil {
		t.Fatalf("LoadWithFlags: %v", err)
	}
	if cfg.Benchmark.SizeMB != 250 {
		t.Errorf("SizeMB = %d, want 250 from flag over file", cfg.Benchmark.SizeMB)
	}
	if cfg.Benchmark.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s from flag", cfg.Benchmark.Timeout)
	}
}

func TestLoadWithFlagsUnchangedFlagYieldsToFile(t *testing.T) {
	isolate(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "llm-neofetch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "benchmark:\n  size_mb: 50\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithFlags("", benchFlags(t))
	if err != nil {
		t.Fatalf("LoadWithFlags: %v", err)
	}
	if cfg.Benchmark.SizeMB != 50 {
		t.Errorf("SizeMB = %d, want 50 from file over unset flag", cfg.Benchmark.SizeMB)
	}
}

func TestLoadWithFlagsNilFlagSet(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithFlags("", nil)
	if err != nil {
		t.Fatalf("LoadWithFlags(nil): %v", err)
	}
	if cfg.Benchmark.SizeMB != Default().Benchmark.SizeMB {
		t.Errorf("SizeMB = %d, want default", cfg.Benchmark.SizeMB)
	}
}
