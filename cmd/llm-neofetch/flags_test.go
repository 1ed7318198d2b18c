package main

import (
	"io"
	"strings"
	"testing"
)

func TestRootFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		def  string
	}{
		{"detail", "2"},
		{"benchmark", "false"},
		{"bench-size", "100"},
		{"bench-timeout", "30s"},
		{"bench-path", ""},
		{"interactive", "false"},
		{"export", ""},
		{"no-color", "false"},
		{"verbose", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := rootCmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.flag)
			}
			if f.DefValue != tt.def {
				t.Errorf("flag %q default = %q, want %q", tt.flag, f.DefValue, tt.def)
			}
		})
	}
}

func TestRootFlagShorthands(t *testing.T) {
	tests := []struct {
		short string
		long  string
	}{
		{"d", "detail"},
		{"b", "benchmark"},
		{"i", "interactive"},
		{"v", "verbose"},
	}
	for _, tt := range tests {
		f := rootCmd.Flags().ShorthandLookup(tt.short)
		if f == nil {
			t.Fatalf("shorthand -%s not registered", tt.short)
		}
		if f.Name != tt.long {
			t.Errorf("shorthand -%s points at %q, want %q", tt.short, f.Name, tt.long)
		}
	}
}

func TestRunReportRejectsInvalidDetail(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--detail", "9"})
	defer func() {
		rootCmd.SetArgs(nil)
		if err := rootCmd.Flags().Set("detail", "2"); err != nil {
			t.Fatalf("reset detail flag: %v", err)
		}
	}()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for detail level 9")
	}
	if !strings.Contains(err.Error(), "detail level") {
		t.Errorf("error = %q, want mention of the detail level", err)
	}
}

func TestVersionCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "version" {
			return
		}
	}
	t.Fatal("version subcommand not registered")
}
