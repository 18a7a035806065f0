package theme

import (
	"errors"

	"github.com/yllada/power-profiles-tray/common"
)

// Resolver decides the appearance mode for icon selection. An explicit
// override always wins; otherwise the probes are consulted in order and
// the first conclusive answer is used.
type Resolver struct {
	override Mode
	probes   []Probe
}

// NewResolver builds a resolver with the standard probe chain. Pass an
// empty override to enable detection.
func NewResolver(override Mode) *Resolver {
	return &Resolver{
		override: override,
		probes: []Probe{
			NewPortalProbe(),
			NewGSettingsProbe(execRunner{}),
			NewKDEProbe(),
			EnvProbe{},
		},
	}
}

// NewResolverWithProbes builds a resolver over a custom probe chain.
// Tests use this to substitute fake probes.
func NewResolverWithProbes(override Mode, probes ...Probe) *Resolver {
	return &Resolver{override: override, probes: probes}
}

// Resolve returns the mode to draw icons in. It never fails: when the
// override is unset and every probe is unavailable or inconclusive, the
// result is Light.
func (r *Resolver) Resolve() Mode {
	if r.override.Valid() {
		return r.override
	}

	for _, p := range r.probes {
		if !p.Available() {
			continue
		}
		mode, err := p.Detect()
		if err != nil {
			if !errors.Is(err, ErrInconclusive) {
				common.LogDebug("Theme probe %s failed: %v", p.Name(), err)
			}
			continue
		}
		common.LogDebug("Theme probe %s detected %s", p.Name(), mode)
		return mode
	}

	return Light
}
