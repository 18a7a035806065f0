// Package cli provides command-line access to power profiles. This lets
// users inspect and switch profiles from the terminal without a running
// tray indicator.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/history"
	"github.com/yllada/power-profiles-tray/power"
)

// CLI represents the command-line interface.
type CLI struct {
	ctl *power.Ctl
}

// New creates a new CLI instance.
func New() *CLI {
	return &CLI{ctl: power.NewCtl()}
}

// ListProfiles lists the profiles supported on this machine, marking the
// active one.
func (c *CLI) ListProfiles(ctx context.Context) error {
	profiles, active, err := c.ctl.List(ctx)
	if err != nil {
		return describeErr(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tNAME\tACTIVE")
	fmt.Fprintln(w, "-------\t----\t------")

	for _, p := range profiles {
		marker := ""
		if p == active {
			marker = renderActiveMarker()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p, p.DisplayName(), marker)
	}

	w.Flush()
	return nil
}

// ShowActive prints the currently active profile.
func (c *CLI) ShowActive(ctx context.Context) error {
	active, err := c.ctl.Active(ctx)
	if err != nil {
		return describeErr(err)
	}

	fmt.Println(active)
	return nil
}

// Switch changes the active profile and records the switch.
func (c *CLI) Switch(ctx context.Context, name string) error {
	target, err := power.ParseProfile(name)
	if err != nil {
		return fmt.Errorf("unknown profile %q: use performance, balanced or power-saver", name)
	}

	from, err := c.ctl.Active(ctx)
	if err != nil {
		return describeErr(err)
	}
	if from == target {
		fmt.Printf("Already using %s\n", renderProfile(target))
		return nil
	}

	if err := c.ctl.Set(ctx, target); err != nil {
		return describeErr(err)
	}

	c.recordSwitch(from, target)
	fmt.Printf("Switched to %s\n", renderProfile(target))
	return nil
}

// ShowHistory prints recent profile switches, newest first.
func (c *CLI) ShowHistory(ctx context.Context) error {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return fmt.Errorf("config directory unavailable: %w", err)
	}

	path := filepath.Join(configDir, common.HistoryFileName)
	if !common.FileExists(path) {
		fmt.Println("No switch history recorded yet.")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(common.HistoryDisplayLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No switch history recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFROM\tTO\tSOURCE")
	fmt.Fprintln(w, "----\t----\t--\t------")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.At.Format("2006-01-02 15:04:05"), e.From, e.To, e.Source)
	}

	w.Flush()
	return nil
}

// recordSwitch appends to the switch log. Failures only log; a missing
// database must not break the switch itself.
func (c *CLI) recordSwitch(from, to power.Profile) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return
	}

	store, err := history.Open(filepath.Join(configDir, common.HistoryFileName))
	if err != nil {
		common.LogDebug("History unavailable: %v", err)
		return
	}
	defer store.Close()

	err = store.Append(history.Entry{From: from, To: to, Source: history.SourceCLI})
	if err != nil {
		common.LogDebug("Could not record switch: %v", err)
	}
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Power Profiles Tray - Command Line Interface

Usage:
  power-profiles-tray [OPTIONS]

Options:
  --list              List supported power profiles
  --get               Print the active profile
  --set PROFILE       Switch to a profile (performance, balanced, power-saver)
  --history           Show recent profile switches
  -m, --mouse-reverse Reverse the cycle direction in the tray
  -f, --force-theme T Force icon theme: dark or light
  --icon-dir DIR      Directory with override icons
  --interval N        Tray resync interval in seconds
  --verbose           Enable verbose logging
  --version           Show version and exit
  --help              Show this help message

Examples:
  power-profiles-tray --list
  power-profiles-tray --set power-saver
  power-profiles-tray --history

Notes:
  - Requires powerprofilesctl (power-profiles-daemon)
  - Run without options to launch the tray indicator`)
}
