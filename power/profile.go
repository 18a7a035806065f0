// Package power provides access to the system power profiles managed by
// power-profiles-daemon.
package power

import (
	"fmt"
	"strings"

	"github.com/yllada/power-profiles-tray/common"
)

// Profile is a named system-wide power/performance tuning mode.
// The values mirror the profiles exposed by power-profiles-daemon.
type Profile string

const (
	// Performance favors responsiveness over battery life.
	Performance Profile = "performance"
	// Balanced is the default trade-off between the two.
	Balanced Profile = "balanced"
	// PowerSaver favors battery life over responsiveness.
	PowerSaver Profile = "power-saver"
)

// Known reports whether p is one of the profiles the daemon exposes.
func (p Profile) Known() bool {
	switch p {
	case Performance, Balanced, PowerSaver:
		return true
	}
	return false
}

// String returns the profile name as powerprofilesctl spells it.
func (p Profile) String() string {
	return string(p)
}

// DisplayName returns a human-readable name for menus and notifications.
func (p Profile) DisplayName() string {
	switch p {
	case Performance:
		return "Performance"
	case Balanced:
		return "Balanced"
	case PowerSaver:
		return "Power Saver"
	default:
		return string(p)
	}
}

// ParseProfile parses a profile name from powerprofilesctl output or user
// input. It is tolerant of surrounding whitespace and case differences.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if !p.Known() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownProfile, s)
	}
	return p, nil
}
