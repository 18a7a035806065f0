package ui

import (
	"path/filepath"
	"time"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/config"
	"github.com/yllada/power-profiles-tray/history"
	"github.com/yllada/power-profiles-tray/icon"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
)

// Application wires the tray indicator to the profile adapter, theme
// resolution, icon selection and the switch history.
type Application struct {
	ctl      *power.Ctl
	config   *config.Config
	resolver *theme.Resolver
	selector *icon.Selector
	store    *history.Store
	tray     *TrayIndicator
	version  string
}

// Options carries command-line overrides into the application. Zero
// values mean "use the configuration file".
type Options struct {
	ForceTheme   theme.Mode
	IconDir      string
	MouseReverse bool
	Interval     time.Duration
}

// NewApplication creates the tray application.
func NewApplication(version string, opts Options) *Application {
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	if opts.MouseReverse {
		cfg.MouseReverse = true
	}
	if opts.IconDir != "" {
		cfg.IconDir = opts.IconDir
	}
	if opts.Interval > 0 {
		cfg.RefreshIntervalSeconds = int(opts.Interval / time.Second)
	}

	app := &Application{
		ctl:     power.NewCtl(),
		config:  cfg,
		version: version,
	}

	app.resolver = newResolver(opts.ForceTheme, cfg.Theme)
	app.selector = icon.NewSelector(cfg.IconDir, app.bundledIconDir())
	app.openHistory()

	return app
}

// newResolver builds the theme resolver. The command-line override wins
// over the config file; both pin the mode for the process lifetime,
// while "auto" (or anything unparseable) enables desktop detection.
func newResolver(force theme.Mode, configured string) *theme.Resolver {
	if force.Valid() {
		return theme.NewResolver(force)
	}
	if m, err := theme.ParseMode(configured); err == nil {
		return theme.NewResolver(m)
	}
	return theme.NewResolver("")
}

// currentMode re-derives the appearance mode. The tray calls this on
// every resync so icons follow a desktop light/dark switch at runtime;
// only an explicit override is fixed.
func (a *Application) currentMode() theme.Mode {
	return a.resolver.Resolve()
}

// bundledIconDir materializes the generated icon set into the data
// directory and returns its path. Failures degrade to in-memory icons.
func (a *Application) bundledIconDir() string {
	dataDir, err := common.GetDataDir()
	if err != nil {
		common.LogWarn("Data directory unavailable, using in-memory icons: %v", err)
		return ""
	}

	dir := filepath.Join(dataDir, "icons")
	if err := icon.MaterializeBundled(dir); err != nil {
		common.LogWarn("Could not materialize bundled icons: %v", err)
		return ""
	}
	return dir
}

// openHistory opens the switch log. History is best effort; the tray
// runs without it when the database cannot be opened.
func (a *Application) openHistory() {
	if !a.config.HistoryEnabled {
		return
	}

	configDir, err := common.GetConfigDir()
	if err != nil {
		common.LogWarn("Config directory unavailable, history disabled: %v", err)
		return
	}

	store, err := history.Open(filepath.Join(configDir, common.HistoryFileName))
	if err != nil {
		common.LogWarn("History disabled: %v", err)
		return
	}
	a.store = store
}

// Run starts the tray indicator and blocks until quit.
func (a *Application) Run() {
	a.tray = NewTrayIndicator(a)
	a.tray.Run()
}

// Quit releases application resources.
func (a *Application) Quit() {
	if a.store != nil {
		a.store.Close()
	}
	common.LogInfo("Application shutting down")
}

// recordSwitch appends a switch to the history, logging failures
// instead of surfacing them.
func (a *Application) recordSwitch(from, to power.Profile, source string) {
	if a.store == nil {
		return
	}
	err := a.store.Append(history.Entry{From: from, To: to, Source: source})
	if err != nil {
		common.LogWarn("Could not record switch: %v", err)
	}
}

// GetVersion returns the application version.
func (a *Application) GetVersion() string {
	return a.version
}

// GetConfig returns the configuration.
func (a *Application) GetConfig() *config.Config {
	return a.config
}
