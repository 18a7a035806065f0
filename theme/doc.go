// Package theme detects whether the desktop environment prefers a light
// or dark appearance, so the tray icon can be drawn with matching colors.
//
// Detection runs through an ordered chain of probes, each covering one
// desktop convention:
//
//   - PortalProbe: the XDG desktop portal settings interface (D-Bus)
//   - GSettingsProbe: GNOME's gsettings color-scheme and gtk-theme keys
//   - KDEProbe: the ColorScheme entry in ~/.config/kdeglobals
//   - EnvProbe: the GTK_THEME environment variable
//
// The first probe that is available and returns a conclusive answer wins.
// An explicit user override bypasses the chain entirely, and when nothing
// answers the resolver falls back to light.
package theme
