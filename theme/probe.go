package theme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/power-profiles-tray/common"
)

// ErrInconclusive is returned by a probe that ran but could not decide.
// The resolver moves on to the next probe in the chain.
var ErrInconclusive = errors.New("theme preference inconclusive")

// Probe detects the desktop appearance preference through one mechanism.
type Probe interface {
	// Name identifies the probe in log output.
	Name() string
	// Available reports whether the mechanism exists on this system.
	Available() bool
	// Detect returns the detected mode, or ErrInconclusive when the
	// mechanism exists but gives no usable answer.
	Detect() (Mode, error)
}

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalReadOne   = "org.freedesktop.portal.Settings.ReadOne"
	portalNamespace = "org.freedesktop.appearance"
	portalKey       = "color-scheme"
)

// PortalProbe asks the XDG desktop portal for the appearance preference.
// This is the desktop-agnostic mechanism and runs first in the chain.
type PortalProbe struct {
	conn *dbus.Conn
}

// NewPortalProbe connects to the session bus. A nil connection marks the
// probe unavailable rather than failing construction.
func NewPortalProbe() *PortalProbe {
	conn, err := dbus.SessionBus()
	if err != nil {
		common.LogDebug("Portal probe: session bus unavailable: %v", err)
		return &PortalProbe{}
	}
	return &PortalProbe{conn: conn}
}

func (p *PortalProbe) Name() string { return "xdg-portal" }

func (p *PortalProbe) Available() bool { return p.conn != nil }

// Detect reads org.freedesktop.appearance/color-scheme. The portal spec
// defines 0 as no preference, 1 as prefer dark and 2 as prefer light.
func (p *PortalProbe) Detect() (Mode, error) {
	if p.conn == nil {
		return "", ErrInconclusive
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	obj := p.conn.Object(portalDest, dbus.ObjectPath(portalPath))
	var value dbus.Variant
	call := obj.CallWithContext(ctx, portalReadOne, 0, portalNamespace, portalKey)
	if call.Err != nil {
		return "", fmt.Errorf("portal settings read: %w", call.Err)
	}
	if err := call.Store(&value); err != nil {
		return "", fmt.Errorf("portal settings read: %w", err)
	}

	// Older portals wrap the result in a nested variant.
	inner := value.Value()
	if v, ok := inner.(dbus.Variant); ok {
		inner = v.Value()
	}

	scheme, ok := inner.(uint32)
	if !ok {
		return "", fmt.Errorf("portal settings read: unexpected type %T", inner)
	}

	switch scheme {
	case 1:
		return Dark, nil
	case 2:
		return Light, nil
	default:
		return "", ErrInconclusive
	}
}

// GSettingsProbe shells out to gsettings, reading GNOME's color-scheme
// key and falling back to the legacy gtk-theme name.
type GSettingsProbe struct {
	runner common.CommandRunner
}

// NewGSettingsProbe creates a probe backed by the real gsettings binary.
func NewGSettingsProbe(runner common.CommandRunner) *GSettingsProbe {
	return &GSettingsProbe{runner: runner}
}

func (g *GSettingsProbe) Name() string { return "gsettings" }

func (g *GSettingsProbe) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

func (g *GSettingsProbe) Detect() (Mode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := g.runner.Output(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err == nil {
		scheme := strings.ToLower(strings.Trim(strings.TrimSpace(string(out)), "'"))
		switch {
		case strings.Contains(scheme, "prefer-dark"):
			return Dark, nil
		case strings.Contains(scheme, "prefer-light"):
			return Light, nil
		}
	}

	out, err = g.runner.Output(ctx, "gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return "", fmt.Errorf("gsettings get: %w", err)
	}
	if strings.Contains(strings.ToLower(string(out)), "dark") {
		return Dark, nil
	}
	return "", ErrInconclusive
}

// KDEProbe reads the ColorScheme entry from ~/.config/kdeglobals.
type KDEProbe struct {
	path string
}

// NewKDEProbe creates a probe for the user's kdeglobals file.
func NewKDEProbe() *KDEProbe {
	home, err := os.UserHomeDir()
	if err != nil {
		return &KDEProbe{}
	}
	return &KDEProbe{path: filepath.Join(home, ".config", "kdeglobals")}
}

func (k *KDEProbe) Name() string { return "kdeglobals" }

func (k *KDEProbe) Available() bool {
	return k.path != "" && common.FileExists(k.path)
}

func (k *KDEProbe) Detect() (Mode, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		return "", fmt.Errorf("read kdeglobals: %w", err)
	}

	inGeneral := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inGeneral = line == "[General]"
			continue
		}
		if !inGeneral {
			continue
		}
		if name, ok := strings.CutPrefix(line, "ColorScheme="); ok {
			if strings.Contains(strings.ToLower(name), "dark") {
				return Dark, nil
			}
			return Light, nil
		}
	}

	return "", ErrInconclusive
}

// EnvProbe inspects the GTK_THEME environment variable. It is the last
// resort before the light fallback.
type EnvProbe struct{}

func (EnvProbe) Name() string { return "env" }

func (EnvProbe) Available() bool {
	return os.Getenv("GTK_THEME") != ""
}

func (EnvProbe) Detect() (Mode, error) {
	value := os.Getenv("GTK_THEME")
	if value == "" {
		return "", ErrInconclusive
	}
	if strings.Contains(strings.ToLower(value), "dark") {
		return Dark, nil
	}
	return Light, nil
}

// probeTimeout bounds any single probe so a hung desktop service cannot
// stall tray startup.
const probeTimeout = 2 * time.Second
