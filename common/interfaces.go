// Package common provides shared constants, types, and utilities
// used across Power Profiles Tray.
package common

import "context"

// CommandRunner executes an external command and captures its standard
// output. Implementations wrap os/exec so packages shelling out to
// powerprofilesctl (and friends) can be tested against a fake runner.
type CommandRunner interface {
	// Output runs name with args and returns its stdout. The context
	// bounds the call; implementations kill the process on expiry.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
	// NotifyWithIcon sends a notification with a custom icon.
	NotifyWithIcon(title, message, icon string) error
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
