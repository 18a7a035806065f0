// Package ui provides the system tray interface for Power Profiles Tray.
// This file contains the notification system for profile switch events.
package ui

import (
	"os/exec"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// ShowNotification displays a system notification using notify-send
func ShowNotification(n Notification) {
	icon := n.Icon
	if icon == "" {
		switch n.Type {
		case NotificationWarning:
			icon = "dialog-warning"
		case NotificationError:
			icon = "dialog-error"
		default:
			icon = "battery-profile-performance"
		}
	}

	urgency := "normal"
	switch n.Type {
	case NotificationError:
		urgency = "critical"
	case NotificationWarning:
		urgency = "normal"
	default:
		urgency = "low"
	}

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+icon,
		"--urgency="+urgency,
		n.Title,
		n.Message,
	)

	if err := cmd.Run(); err != nil {
		common.LogDebug("Error showing notification: %v", err)
	}
}

// NotifySwitched shows a notification after a successful profile switch
func NotifySwitched(p power.Profile) {
	ShowNotification(Notification{
		Title:   "Power Profile Changed",
		Message: "Now using " + p.DisplayName(),
		Type:    NotificationSuccess,
	})
}

// NotifySwitchFailed shows a notification when a profile switch fails
func NotifySwitchFailed(p power.Profile, errorMsg string) {
	ShowNotification(Notification{
		Title:   "Profile Switch Failed",
		Message: p.DisplayName() + ": " + errorMsg,
		Type:    NotificationError,
	})
}

// NotifyToolUnavailable warns that powerprofilesctl cannot be found
func NotifyToolUnavailable() {
	ShowNotification(Notification{
		Title:   "Power Profiles Unavailable",
		Message: "powerprofilesctl was not found; is power-profiles-daemon installed?",
		Type:    NotificationWarning,
	})
}
