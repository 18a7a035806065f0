// Package common provides shared constants, types, and utilities
// used across Power Profiles Tray.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.powerprofilestray.app"
	// AppName is the display name of the application.
	AppName = "Power Profiles Tray"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "power-profiles-tray"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history.db"
	LogFileName     = "power-profiles-tray.log"
)

// powerprofilesctl invocation.
const (
	// CtlCommand is the power-profiles-daemon control tool.
	CtlCommand = "powerprofilesctl"
	// CtlList lists the profiles supported on this machine.
	CtlList = "list"
	// CtlGet prints the currently active profile.
	CtlGet = "get"
	// CtlSet switches the active profile.
	CtlSet = "set"
)

// Default timeouts and intervals.
const (
	// CtlTimeout is the maximum time to wait for a powerprofilesctl call.
	CtlTimeout = 1 * time.Second
	// RefreshInterval is how often the tray resyncs profile and theme state.
	RefreshInterval = 3 * time.Second
)

// UI constants.
const (
	// TrayIconSize is the edge size in pixels of generated tray icons.
	TrayIconSize = 22
	// HistoryDisplayLimit is how many switch records the CLI shows.
	HistoryDisplayLimit = 20
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
