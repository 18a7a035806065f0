// Package power provides access to the system power profiles managed by
// power-profiles-daemon.
//
// This package implements the core profile functionality including:
//
//   - Profile enumeration: Listing the profiles supported on this machine
//   - Active profile queries: Reading the currently active profile
//   - Profile switching: Requesting a system-wide profile change
//   - Output parsing: Interpreting powerprofilesctl's line-oriented output
//
// # Architecture
//
// The package is organized around two main types:
//
//   - Ctl: Wraps powerprofilesctl invocations and parses their output
//   - Profile: The fixed enumeration of power profiles the daemon exposes
//
// # powerprofilesctl Integration
//
// Every operation shells out to powerprofilesctl; nothing is cached, so
// each query reflects live system state at call time. The subprocess is
// executed through the common.CommandRunner abstraction so tests can
// substitute a fake runner without spawning real processes.
//
// # Error Handling
//
// Failures map onto the sentinel errors in the common package:
// common.ErrToolUnavailable when the tool is missing, common.ErrParse when
// its output doesn't match the expected format, and
// common.ErrPermissionDenied when system policy rejects a profile change.
package power
