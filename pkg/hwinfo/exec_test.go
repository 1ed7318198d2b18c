//go:build !windows

package hwinfo

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunToolCapturesOutput(t *testing.T) {
	out, err := hwRunTool(context.Background(), 5*time.Second, "echo", "hello")
	if err != nil {
		t.Fatalf("hwRunTool(echo): %v", err)
	}
	if out != "hello" {
		t.Errorf("output = %q, want hello", out)
	}
}

func TestRunToolMissingBinary(t *testing.T) {
	_, err := hwRunTool(context.Background(), 5*time.Second, "no-such-tool-zz9")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "not installed") {
		t.Errorf("error = %v, want a not-installed error", err)
	}
}

func TestRunToolTimeout(t *testing.T) {
	_, err := hwRunTool(context.Background(), 50*time.Millisecond, "sleep", "5")
	if err == nil {
		t.Fatal("expected error for a wedged tool")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %v, want a timeout error", err)
	}
}

func TestRunToolNonzeroExit(t *testing.T) {
	if _, err := hwRunTool(context.Background(), 5*time.Second, "false"); err == nil {
		t.Fatal("expected error for nonzero exit")
	}
}
