// Package power provides access to the system power profiles managed by
// power-profiles-daemon.
// This file contains the Ctl type which wraps powerprofilesctl invocations.
package power

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yllada/power-profiles-tray/common"
)

// Common errors - re-exported from common package for convenience.
var (
	ErrToolUnavailable  = common.ErrToolUnavailable
	ErrParse            = common.ErrParse
	ErrPermissionDenied = common.ErrPermissionDenied
)

// excludedPrefixes are driver detail lines powerprofilesctl prints under
// each profile entry. They carry no profile name and are skipped.
var excludedPrefixes = []string{
	"CpuDriver:",
	"PlatformDriver:",
	"Degraded:",
	"Driver:",
}

// Ctl queries and switches power profiles through powerprofilesctl.
// Every call shells out; nothing is cached, so results always reflect
// live system state.
type Ctl struct {
	runner  common.CommandRunner
	command string
	timeout time.Duration
}

// NewCtl creates a Ctl using the real powerprofilesctl binary.
func NewCtl() *Ctl {
	return NewCtlWithRunner(execRunner{})
}

// NewCtlWithRunner creates a Ctl with a custom command runner.
// Tests use this to substitute a fake runner.
func NewCtlWithRunner(runner common.CommandRunner) *Ctl {
	return &Ctl{
		runner:  runner,
		command: common.CtlCommand,
		timeout: common.CtlTimeout,
	}
}

// Available reports whether powerprofilesctl is resolvable in PATH.
// Used as a startup preflight; individual calls still classify their
// own failures.
func (c *Ctl) Available() bool {
	return checkCommandExists(c.command)
}

// List returns the profiles supported on this machine in the tool's own
// listing order, plus the profile marked active. Exactly one entry must
// carry the active marker.
func (c *Ctl) List(ctx context.Context) ([]Profile, Profile, error) {
	out, err := c.run(ctx, common.CtlList)
	if err != nil {
		return nil, "", err
	}
	return parseList(out)
}

// Active returns the currently active profile.
func (c *Ctl) Active(ctx context.Context) (Profile, error) {
	out, err := c.run(ctx, common.CtlGet)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := ParseProfile(line)
		if err != nil {
			return "", fmt.Errorf("%w: unrecognized active profile %q", ErrParse, line)
		}
		return p, nil
	}

	return "", fmt.Errorf("%w: empty output from %s %s", ErrParse, c.command, common.CtlGet)
}

// Set requests a system-wide switch to the given profile. The change
// outlives this process; callers should re-query to observe the result.
func (c *Ctl) Set(ctx context.Context, p Profile) error {
	if !p.Known() {
		return fmt.Errorf("%w: %q", common.ErrUnknownProfile, p)
	}

	common.LogInfo("Setting power profile: %s", p)
	_, err := c.run(ctx, common.CtlSet, p.String())
	return err
}

// run invokes powerprofilesctl with a bounded timeout and classifies
// failures into the adapter's error taxonomy.
func (c *Ctl) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.runner.Output(ctx, c.command, args...)
	if err != nil {
		return nil, c.classify(err, args)
	}
	return out, nil
}

// classify maps subprocess failures onto the sentinel errors.
func (c *Ctl) classify(err error, args []string) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, execErr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s", common.ErrTimeout, c.command, strings.Join(args, " "))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.ToLower(string(exitErr.Stderr))
		if strings.Contains(stderr, "not authorized") ||
			strings.Contains(stderr, "permission denied") ||
			strings.Contains(stderr, "polkit") {
			return fmt.Errorf("%w: %s", ErrPermissionDenied, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return common.WrapError(err, fmt.Sprintf("%s %s failed", c.command, strings.Join(args, " ")))
	}

	return common.WrapError(err, fmt.Sprintf("%s %s failed", c.command, strings.Join(args, " ")))
}

// parseList parses `powerprofilesctl list` output. The expected format is
// line-oriented: one entry per profile, the active one prefixed with '*',
// each followed by indented driver detail lines:
//
//	  performance:
//	    CpuDriver:    intel_pstate
//
//	* balanced:
//	    CpuDriver:    intel_pstate
//
// Unrecognized profile names are skipped so a newer daemon doesn't break
// the menu; driver detail lines are always ignored.
func parseList(out []byte) ([]Profile, Profile, error) {
	var (
		profiles []Profile
		active   Profile
		actives  int
	)

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isExcludedLine(line) {
			continue
		}

		isActive := strings.HasPrefix(line, "*")
		name := strings.TrimSpace(strings.TrimPrefix(line, "*"))
		name = strings.TrimSuffix(name, ":")

		p, err := ParseProfile(name)
		if err != nil {
			common.LogDebug("Skipping unrecognized list entry: %q", line)
			continue
		}

		profiles = append(profiles, p)
		if isActive {
			active = p
			actives++
		}
	}

	if len(profiles) == 0 {
		return nil, "", fmt.Errorf("%w in list output", common.ErrNoProfiles)
	}
	if actives != 1 {
		return nil, "", fmt.Errorf("%w: expected exactly one active profile, found %d", ErrParse, actives)
	}

	return profiles, active, nil
}

// isExcludedLine reports whether the line is a driver detail line.
func isExcludedLine(line string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.Contains(line, prefix) {
			return true
		}
	}
	return false
}
