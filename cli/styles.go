// Package cli provides command-line access to power profiles.
// This file contains the terminal styling.
package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
)

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	performanceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("208"))

	balancedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	powerSaverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// renderActiveMarker renders the active-profile marker for the list view.
func renderActiveMarker() string {
	return activeStyle.Render("● active")
}

// renderProfile renders a profile name in its accent color.
func renderProfile(p power.Profile) string {
	switch p {
	case power.Performance:
		return performanceStyle.Render(p.DisplayName())
	case power.PowerSaver:
		return powerSaverStyle.Render(p.DisplayName())
	default:
		return balancedStyle.Render(p.DisplayName())
	}
}

// describeErr rewrites adapter errors into actionable terminal messages.
func describeErr(err error) error {
	switch {
	case errors.Is(err, common.ErrToolUnavailable):
		return fmt.Errorf("%s", errorStyle.Render(
			"powerprofilesctl not found: install power-profiles-daemon"))
	case errors.Is(err, common.ErrPermissionDenied):
		return fmt.Errorf("%s", errorStyle.Render(
			"not authorized to change the power profile"))
	case errors.Is(err, common.ErrTimeout):
		return fmt.Errorf("%s", errorStyle.Render(
			"the profile tool did not respond in time"))
	default:
		return err
	}
}
