package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// execRunner is the default ToolRunner, backed by os/exec. A per-invocation
// deadline distinguishes timeouts from ordinary failures: a killed-by-deadline
// process surfaces symbol.ErrToolTimeout, never a plain exit error.
type execRunner struct {
	timeout time.Duration
}

var _ symbol.ToolRunner = (*execRunner)(nil)

func (r *execRunner) Run(ctx context.Context, exe string, args ...string) (symbol.ToolResult, error) {
	runCtx := ctx
	cancel := func() {}
	if r.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(runCtx, exe, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return symbol.ToolResult{}, fmt.Errorf("%w: %q after %s", symbol.ErrToolTimeout, exe, r.timeout)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return symbol.ToolResult{}, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return symbol.ToolResult{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return symbol.ToolResult{}, fmt.Errorf("dump loader: run %q: %w", exe, err)
	}

	return symbol.ToolResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
