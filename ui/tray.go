// Package ui provides the system tray interface for Power Profiles Tray.
// This file contains the system tray indicator functionality.
package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/systray"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/history"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
)

// defaultProfileOrder is the menu order used when the daemon cannot be
// queried at startup; otherwise the daemon's own listing order wins.
var defaultProfileOrder = []power.Profile{power.Performance, power.Balanced, power.PowerSaver}

// TrayIndicator manages the system tray icon and menu. The menu shows
// one radio-style entry per supported profile; clicking one requests a
// switch, and a ticker resyncs the display with live system state so
// external switches and desktop theme changes are picked up too.
type TrayIndicator struct {
	app *Application

	statusItem   *systray.MenuItem
	profileItems map[power.Profile]*systray.MenuItem
	cycleItem    *systray.MenuItem
	refreshItem  *systray.MenuItem
	aboutItem    *systray.MenuItem

	mu        sync.Mutex
	supported []power.Profile
	active    power.Profile
	mode      theme.Mode
	degraded  bool

	stopCh chan struct{}
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:          app,
		profileItems: make(map[power.Profile]*systray.MenuItem),
		stopCh:       make(chan struct{}),
	}
}

// Run starts the system tray indicator. It blocks until Quit is chosen.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// menuOrder decides the order of profile menu entries: the daemon's own
// listing when available, the conventional order otherwise.
func menuOrder(listed []power.Profile) []power.Profile {
	if len(listed) > 0 {
		return listed
	}
	return defaultProfileOrder
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	t.mode = t.app.currentMode()

	systray.SetIcon(t.app.selector.Generic(t.mode))
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.statusItem = systray.AddMenuItem("Profile: …", "Current power profile")
	t.statusItem.Disable()

	systray.AddSeparator()

	// Ask the daemon once up front so the menu mirrors its listing
	// order; a failure here just means the default order and an
	// immediate degraded refresh.
	ctx, cancel := context.WithTimeout(context.Background(), common.CtlTimeout)
	listed, _, _ := t.app.ctl.List(ctx)
	cancel()

	for _, p := range menuOrder(listed) {
		profile := p
		item := systray.AddMenuItemCheckbox(profile.DisplayName(), "Switch to "+profile.DisplayName(), false)
		t.profileItems[profile] = item
		go func() {
			for range item.ClickedCh {
				t.switchTo(profile)
			}
		}()
	}

	systray.AddSeparator()

	t.cycleItem = systray.AddMenuItem("Cycle Profile", "Switch to the next profile")
	go func() {
		for range t.cycleItem.ClickedCh {
			t.cycle()
		}
	}()

	t.refreshItem = systray.AddMenuItem("Refresh Now", "Resync with system state")
	go func() {
		for range t.refreshItem.ClickedCh {
			t.refresh()
		}
	}()

	systray.AddSeparator()

	t.aboutItem = systray.AddMenuItem("About", "Version information")
	go func() {
		for range t.aboutItem.ClickedCh {
			ShowNotification(Notification{
				Title:   common.AppName,
				Message: "Version " + t.app.GetVersion(),
				Type:    NotificationInfo,
			})
		}
	}()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			systray.Quit()
		}
	}()

	t.refresh()
	go t.resyncLoop()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	close(t.stopCh)
	t.app.Quit()
	common.LogInfo("Tray indicator cleanup completed")
}

// resyncLoop periodically resyncs the menu with live system state.
func (t *TrayIndicator) resyncLoop() {
	interval := time.Duration(t.app.config.RefreshIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = common.RefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.refresh()
			common.GetLogger().CheckRotation()
		case <-t.stopCh:
			return
		}
	}
}

// refresh queries live state and updates icon and menu. The appearance
// mode is re-derived on every pass so the icon follows a desktop
// light/dark switch. On failure the tray degrades: generic icon,
// disabled profile entries, and an error status line. It recovers
// automatically once queries succeed again.
func (t *TrayIndicator) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), common.CtlTimeout)
	defer cancel()

	mode := t.app.currentMode()

	profiles, active, err := t.app.ctl.List(ctx)
	if err != nil {
		t.setDegraded(err, mode)
		return
	}

	t.mu.Lock()
	wasDegraded := t.degraded
	prev := t.active
	prevMode := t.mode
	t.supported = profiles
	t.active = active
	t.mode = mode
	t.degraded = false
	t.mu.Unlock()

	if wasDegraded {
		common.LogInfo("Profile tool reachable again")
	}
	if prev != "" && prev != active {
		// The profile changed without a click here: switched elsewhere.
		common.LogInfo("External switch observed: %s -> %s", prev, active)
		t.app.recordSwitch(prev, active, history.SourceExternal)
	}
	if prevMode != mode {
		common.LogInfo("Desktop theme changed: %s -> %s", prevMode, mode)
	}
	if prev != active || prevMode != mode || wasDegraded {
		systray.SetIcon(t.app.selector.Select(active, mode))
		systray.SetTooltip(fmt.Sprintf("Active profile: %s", active.DisplayName()))
	}

	t.statusItem.SetTitle("Profile: " + active.DisplayName())

	supported := make(map[power.Profile]bool, len(profiles))
	for _, p := range profiles {
		supported[p] = true
	}

	for profile, item := range t.profileItems {
		if !supported[profile] {
			item.Hide()
			continue
		}
		item.Show()
		item.Enable()
		if profile == active {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	t.cycleItem.Enable()
}

// setDegraded puts the tray into its unavailable state.
func (t *TrayIndicator) setDegraded(err error, mode theme.Mode) {
	t.mu.Lock()
	wasDegraded := t.degraded
	modeChanged := t.mode != mode
	t.mode = mode
	t.degraded = true
	t.mu.Unlock()

	if wasDegraded && !modeChanged {
		return
	}
	if !wasDegraded {
		common.LogWarn("Profile query failed: %v", err)
	}

	systray.SetIcon(t.app.selector.Generic(mode))
	systray.SetTooltip(common.AppName + " - Unavailable")
	t.statusItem.SetTitle("Profile: unavailable")

	for _, item := range t.profileItems {
		item.Disable()
	}
	t.cycleItem.Disable()

	if !wasDegraded && errors.Is(err, common.ErrToolUnavailable) && t.app.config.ShowNotifications {
		NotifyToolUnavailable()
	}
}

// switchTo requests a profile switch and resyncs on success.
func (t *TrayIndicator) switchTo(target power.Profile) {
	t.mu.Lock()
	from := t.active
	mode := t.mode
	t.mu.Unlock()

	if target == from {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), common.CtlTimeout)
	defer cancel()

	if err := t.app.ctl.Set(ctx, target); err != nil {
		common.LogError("Switch to %s failed: %v", target, err)
		if t.app.config.ShowNotifications {
			NotifySwitchFailed(target, switchErrorMessage(err))
		}
		t.refresh()
		return
	}

	// Claim the transition before the next resync so it is not
	// double-counted as an external switch.
	t.mu.Lock()
	t.active = target
	t.mu.Unlock()
	systray.SetIcon(t.app.selector.Select(target, mode))
	systray.SetTooltip(fmt.Sprintf("Active profile: %s", target.DisplayName()))

	t.app.recordSwitch(from, target, history.SourceTray)
	if t.app.config.ShowNotifications {
		NotifySwitched(target)
	}
	t.refresh()
}

// cycle switches to the adjacent profile in the menu's order, wrapping
// at the ends. MouseReverse flips the direction.
func (t *TrayIndicator) cycle() {
	t.mu.Lock()
	supported := t.supported
	active := t.active
	degraded := t.degraded
	t.mu.Unlock()

	if degraded || len(supported) == 0 {
		return
	}

	t.switchTo(nextProfile(supported, active, t.app.config.MouseReverse))
}

// nextProfile picks the neighbor of active within supported, wrapping
// around; reverse walks the other way.
func nextProfile(supported []power.Profile, active power.Profile, reverse bool) power.Profile {
	idx := 0
	for i, p := range supported {
		if p == active {
			idx = i
			break
		}
	}

	step := 1
	if reverse {
		step = -1
	}
	return supported[(idx+step+len(supported))%len(supported)]
}

// switchErrorMessage renders an error for notification text.
func switchErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrPermissionDenied):
		return "not authorized to change the profile"
	case errors.Is(err, common.ErrToolUnavailable):
		return "powerprofilesctl not found"
	case errors.Is(err, common.ErrTimeout):
		return "the profile tool did not respond"
	default:
		return err.Error()
	}
}
