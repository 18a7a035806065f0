// Package ui provides the system tray interface for Power Profiles Tray.
//
// This package implements the tray indicator and its supporting pieces:
//
//   - System tray icon reflecting the active profile and desktop theme
//   - Radio-style menu for switching between supported profiles
//   - Periodic resync so external switches are picked up
//   - Desktop notifications for switch results
//
// # Architecture
//
// The UI is built on fyne.io/systray. Key components:
//
//   - Application: Wires configuration, the profile adapter, theme
//     resolution, icon selection and the switch history together
//   - TrayIndicator: The tray icon and menu lifecycle
//
// # Degraded Mode
//
// When powerprofilesctl cannot be queried the tray stays up: the icon
// falls back to the generic badge, profile entries are disabled, and
// the status line reports the problem. Normal operation resumes on the
// next successful resync.
//
// # File Organization
//
//   - app.go: Application wiring and lifecycle
//   - tray.go: System tray indicator and menu
//   - notifications.go: Desktop notification integration
package ui
