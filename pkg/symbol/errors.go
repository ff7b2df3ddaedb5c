package symbol

import (
	"errors"
	"fmt"
)

// Sentinel failures surfaced by tool-backed loaders. Timeout and non-zero exit
// are distinct kinds so callers can report them differently.
var (
	// ErrToolNotFound indicates the dump tool executable could not be
	// resolved in the toolchain directory or on PATH.
	ErrToolNotFound = errors.New("symbol: dump tool not found")

	// ErrToolTimeout indicates the dump tool exceeded its configured
	// execution deadline and was killed.
	ErrToolTimeout = errors.New("symbol: dump tool timed out")
)

// ToolExitError reports a dump tool that ran to completion but exited with a
// non-zero status. Stderr is trimmed output captured from the process.
type ToolExitError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("symbol: tool %q exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("symbol: tool %q exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
}
