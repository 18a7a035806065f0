// Package power provides access to the system power profiles managed by
// power-profiles-daemon.
// This file contains the default os/exec-backed command runner.
package power

import (
	"context"
	"os/exec"
)

// execRunner is the production common.CommandRunner implementation.
// It captures stdout only; stderr is attached to the returned
// *exec.ExitError so callers can classify failures.
type execRunner struct{}

// Output runs the command and returns its standard output.
func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		// The process was killed by the context; report the deadline
		// rather than the resulting signal error.
		return out, ctxErr
	}
	return out, err
}

// checkCommandExists reports whether a command is resolvable in PATH.
func checkCommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
