// Package main provides the entry point for Power Profiles Tray.
// Power Profiles Tray is a Linux system tray utility for viewing and
// switching power profiles through powerprofilesctl, with the tray icon
// reflecting both the active profile and the desktop's light/dark theme.
//
// Features:
//   - Radio-style tray menu for switching between supported profiles
//   - Theme-aware generated icons with a user override directory
//   - Periodic resync so switches made elsewhere are picked up
//   - Local history of profile switches
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	power-profiles-tray [options]
//
// Environment:
//
//	The application requires power-profiles-daemon (powerprofilesctl)
//	to be installed on the system.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yllada/power-profiles-tray/cli"
	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
	"github.com/yllada/power-profiles-tray/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// Tray/General flags
	showVersion  = flag.Bool("version", false, "Show version and exit")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp     = flag.Bool("help", false, "Show help message")
	mouseReverse = flag.Bool("mouse-reverse", false, "Reverse the cycle direction in the tray")
	forceTheme   = flag.String("force-theme", "", "Force icon theme: dark or light")
	iconDir      = flag.String("icon-dir", "", "Directory with override icons")
	interval     = flag.Int("interval", 0, "Tray resync interval in seconds")

	// CLI flags
	listProfiles = flag.Bool("list", false, "List supported power profiles")
	showActive   = flag.Bool("get", false, "Print the active profile")
	setProfile   = flag.String("set", "", "Switch to a profile")
	showHistory  = flag.Bool("history", false, "Show recent profile switches")
)

func main() {
	// Short aliases kept from the original AppIndicator tool.
	flag.BoolVar(mouseReverse, "m", false, "Reverse the cycle direction in the tray (shorthand)")
	flag.StringVar(forceTheme, "f", "", "Force icon theme: dark or light (shorthand)")
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	forced, err := parseForceTheme(*forceTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	// A missing tool is fatal for CLI operations but only degrades the
	// tray, which keeps retrying on its resync ticker.
	toolPresent := power.NewCtl().Available()

	if *listProfiles || *showActive || *setProfile != "" || *showHistory {
		if !toolPresent && !*showHistory {
			fmt.Fprintln(os.Stderr, "Error: powerprofilesctl is not installed on the system.")
			os.Exit(1)
		}
		runCLI(ctx)
		return
	}

	if !toolPresent {
		common.LogWarn("powerprofilesctl not found; tray starting in degraded mode")
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(appVersion, ui.Options{
		ForceTheme:   forced,
		IconDir:      *iconDir,
		MouseReverse: *mouseReverse,
		Interval:     time.Duration(*interval) * time.Second,
	})
	app.Run()
}

// parseForceTheme validates the --force-theme flag. An empty value means
// no override.
func parseForceTheme(value string) (theme.Mode, error) {
	if value == "" {
		return "", nil
	}
	return theme.ParseMode(value)
}

// runCLI handles command-line interface operations.
// It accepts a context for graceful shutdown support.
func runCLI(ctx context.Context) {
	cliApp := cli.New()

	select {
	case <-ctx.Done():
		common.LogInfo("Operation cancelled before execution")
		return
	default:
	}

	var cliErr error

	switch {
	case *listProfiles:
		cliErr = cliApp.ListProfiles(ctx)
	case *showActive:
		cliErr = cliApp.ShowActive(ctx)
	case *setProfile != "":
		cliErr = cliApp.Switch(ctx, *setProfile)
	case *showHistory:
		cliErr = cliApp.ShowHistory(ctx)
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
