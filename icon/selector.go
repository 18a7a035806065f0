// Package icon renders and selects the tray icons.
// This file contains the three-step icon resolution.
package icon

import (
	"os"
	"path/filepath"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
)

// Selector resolves the icon to display for a profile. Resolution order:
// user override directory, bundled directory, built-in generic icon. The
// last step renders in memory, so selection never fails.
type Selector struct {
	overrideDir string
	bundledDir  string
}

// NewSelector creates a selector. overrideDir may be empty when the user
// has not configured one; bundledDir is where MaterializeBundled wrote
// the generated set.
func NewSelector(overrideDir, bundledDir string) *Selector {
	return &Selector{overrideDir: overrideDir, bundledDir: bundledDir}
}

// Select returns PNG bytes for the profile in the given appearance mode.
func (s *Selector) Select(p power.Profile, mode theme.Mode) []byte {
	rel := filepath.Join(mode.String(), p.String()+".png")

	if data, ok := s.read(rel); ok {
		return data
	}

	common.LogDebug("No icon for %s/%s, using generic", mode, p)
	return s.Generic(mode)
}

// Generic returns the fallback icon shown when no profile-specific icon
// resolves or no profile state is known, for example while the profile
// tool is unavailable. It walks the same directories as Select, so a
// user can replace the generic badge too; the in-memory render is the
// step that cannot fail.
func (s *Selector) Generic(mode theme.Mode) []byte {
	if data, ok := s.read("generic.png"); ok {
		return data
	}
	return GenerateGeneric(mode)
}

// read resolves a relative icon path against the override directory
// first, then the bundled directory.
func (s *Selector) read(rel string) ([]byte, bool) {
	for _, dir := range []string{s.overrideDir, s.bundledDir} {
		if dir == "" {
			continue
		}
		if data, err := os.ReadFile(filepath.Join(dir, rel)); err == nil {
			return data, true
		}
	}
	return nil, false
}
