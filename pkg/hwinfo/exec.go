package hwinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// hwRunTool invokes an external detection tool and returns its trimmed
// stdout. The invocation is bounded by timeout so a wedged tool cannot
// stall collection; any failure (not installed, nonzero exit, timeout)
// comes back as an error for the caller to treat as absence.
func hwRunTool(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%s not installed: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%s timed out after %s: %w", name, timeout, ctxErr)
	}
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
