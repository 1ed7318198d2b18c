package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/config"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/diskbench"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/export"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/picker"
	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/render"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "llm-neofetch",
		Short: "System information tuned for local LLM workloads",
		Long: `llm-neofetch inspects the host's CPU, GPU, memory, storage, and battery,
then reports what that hardware can realistically run locally: which model
sizes fit, which quantization to pick, and which inference backend matches
the machine.

Examples:
  llm-neofetch                    # normal detail
  llm-neofetch -d 1               # minimal output
  llm-neofetch -d 3               # full report with model guidance
  llm-neofetch -b                 # include a disk benchmark
  llm-neofetch -i                 # pick the detail level interactively
  llm-neofetch --export out.json  # write the snapshot to a file`,
		Args:         cobra.NoArgs,
		RunE:         runReport,
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.IntP("detail", "d", 2, "detail level: 1=minimal, 2=normal, 3=detailed")
	flags.BoolP("benchmark", "b", false, "measure disk write/read throughput with a temporary file")
	flags.Int("bench-size", 100, "benchmark file size in MB")
	flags.Duration("bench-timeout", 30*time.Second, "benchmark time budget")
	flags.String("bench-path", "", "directory for the benchmark file (default: home directory)")
	flags.BoolP("interactive", "i", false, "choose the detail level from a menu")
	flags.String("export", "", "write the snapshot to a file (.json, .yaml, .toml, .md)")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "log probe failures and timings")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultPath()+")")
}

func runReport(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	detail, _ := flags.GetInt("detail")
	if detail < 1 || detail > 3 {
		return fmt.Errorf("invalid detail level %d: must be 1, 2, or 3", detail)
	}
	benchmark, _ := flags.GetBool("benchmark")
	interactive, _ := flags.GetBool("interactive")
	exportPath, _ := flags.GetString("export")
	noColor, _ := flags.GetBool("no-color")
	verbose, _ := flags.GetBool("verbose")

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.LoadWithFlags(cfgFile, flags)
	if err != nil {
		return err
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if noColor || !stdoutTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && w < cfg.UI.BoxWidth {
		cfg.UI.BoxWidth = w
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := hwinfo.Options{
		CPUSampleInterval: cfg.Probe.CPUSampleInterval,
		ToolTimeout:       cfg.Probe.ToolTimeout,
		Logger:            logger,
	}

	var snap *hwinfo.Snapshot
	if interactive && stdoutTTY && isatty.IsTerminal(os.Stdin.Fd()) {
		picked, err := picker.Run(ctx, opts)
		if err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
		detail = picked.Detail
		snap = picked.Snapshot
	} else {
		snap = hwinfo.Collect(ctx, opts)
	}

	out := render.New(os.Stdout, cfg)

	if benchmark {
		out.BenchmarkNotice()
		res, err := diskbench.Run(ctx, diskbench.Options{
			Path:    cfg.Benchmark.Path,
			SizeMB:  cfg.Benchmark.SizeMB,
			Timeout: cfg.Benchmark.Timeout,
		})
		if err != nil {
			logger.Warn("disk benchmark failed", "err", err)
		} else {
			snap.Benchmark = res
		}
	}

	out.Report(snap, detail)

	if exportPath != "" {
		if err := export.WriteFile(exportPath, snap); err != nil {
			return err
		}
		fmt.Printf("%s Exported to %s\n", render.SuccessStyle.Render("✓"), exportPath)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
