// Package common provides shared constants, types, and utilities
// used across Power Profiles Tray.
package common

import "errors"

// Sentinel errors for powerprofilesctl operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Adapter errors.
	ErrToolUnavailable  = errors.New("powerprofilesctl is not available")
	ErrParse            = errors.New("unexpected powerprofilesctl output")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("operation timed out")

	// Profile errors.
	ErrUnknownProfile = errors.New("unknown power profile")
	ErrNoProfiles     = errors.New("no power profiles reported")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
