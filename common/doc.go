// Package common provides shared constants, types, utilities, and interfaces
// used throughout Power Profiles Tray.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like timeouts, file names, and tool arguments
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for process execution, notifications, and logging
//   - Logger: Structured logging with multiple output destinations
//   - Utils: Common utility functions for file and directory handling
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/yllada/power-profiles-tray/common"
//
//	// Use constants
//	timeout := common.CtlTimeout
//
//	// Use logger
//	common.LogInfo("Active profile: %s", profile)
//
//	// Check errors
//	if errors.Is(err, common.ErrToolUnavailable) {
//	    // Handle missing powerprofilesctl
//	}
//
// # Design Principles
//
// This package follows several design principles:
//
//   - Single Responsibility: Each file handles one concern
//   - Interface Segregation: Small, focused interfaces
//   - Open/Closed: Extensible through interfaces, not modification
//   - Dependency Inversion: High-level modules depend on abstractions
package common
