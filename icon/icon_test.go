package icon

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
)

var allProfiles = []power.Profile{power.Performance, power.Balanced, power.PowerSaver}
var allModes = []theme.Mode{theme.Light, theme.Dark}

func TestGenerate_ValidPNG(t *testing.T) {
	for _, mode := range allModes {
		for _, p := range allProfiles {
			data := Generate(p, mode)
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Generate(%v, %v) produced invalid PNG: %v", p, mode, err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != common.TrayIconSize || bounds.Dy() != common.TrayIconSize {
				t.Errorf("icon size = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), common.TrayIconSize, common.TrayIconSize)
			}
		}
	}

	if _, err := png.Decode(bytes.NewReader(GenerateGeneric(theme.Light))); err != nil {
		t.Errorf("generic icon is not valid PNG: %v", err)
	}
}

func TestGenerate_ProfilesDiffer(t *testing.T) {
	seen := map[string]power.Profile{}
	for _, p := range allProfiles {
		key := string(Generate(p, theme.Light))
		if other, dup := seen[key]; dup {
			t.Errorf("profiles %v and %v render identical icons", p, other)
		}
		seen[key] = p
	}
}

func TestMaterializeBundled_CompleteSet(t *testing.T) {
	dir := t.TempDir()

	if err := MaterializeBundled(dir); err != nil {
		t.Fatalf("MaterializeBundled() error = %v", err)
	}

	for _, mode := range allModes {
		for _, p := range allProfiles {
			path := filepath.Join(dir, mode.String(), p.String()+".png")
			data, err := os.ReadFile(path)
			if err != nil {
				t.Errorf("missing bundled icon %s: %v", path, err)
				continue
			}
			if _, err := png.Decode(bytes.NewReader(data)); err != nil {
				t.Errorf("bundled icon %s is not valid PNG: %v", path, err)
			}
		}
	}

	if !common.FileExists(filepath.Join(dir, "generic.png")) {
		t.Error("generic.png not materialized")
	}
}

func TestSelector_ResolutionOrder(t *testing.T) {
	bundled := t.TempDir()
	if err := MaterializeBundled(bundled); err != nil {
		t.Fatal(err)
	}

	override := t.TempDir()
	if err := os.MkdirAll(filepath.Join(override, "light"), 0755); err != nil {
		t.Fatal(err)
	}
	custom := []byte("custom-icon-bytes")
	if err := os.WriteFile(filepath.Join(override, "light", "balanced.png"), custom, 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSelector(override, bundled)

	t.Run("override wins when present", func(t *testing.T) {
		got := s.Select(power.Balanced, theme.Light)
		if !bytes.Equal(got, custom) {
			t.Error("expected the override file contents")
		}
	})

	t.Run("partial override falls through to bundled", func(t *testing.T) {
		got := s.Select(power.Performance, theme.Light)
		want, err := os.ReadFile(filepath.Join(bundled, "light", "performance.png"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Error("expected the bundled icon for a profile the override dir lacks")
		}
	})

	t.Run("other mode unaffected by override", func(t *testing.T) {
		got := s.Select(power.Balanced, theme.Dark)
		want, err := os.ReadFile(filepath.Join(bundled, "dark", "balanced.png"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Error("expected the bundled dark icon")
		}
	})
}

func TestSelector_GenericResolvesFromDirectories(t *testing.T) {
	bundled := t.TempDir()
	if err := MaterializeBundled(bundled); err != nil {
		t.Fatal(err)
	}

	t.Run("bundled generic file is used", func(t *testing.T) {
		s := NewSelector("", bundled)

		want, err := os.ReadFile(filepath.Join(bundled, "generic.png"))
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Generic(theme.Light); !bytes.Equal(got, want) {
			t.Error("expected the materialized generic.png")
		}
		if got := s.Select(power.Profile("mystery"), theme.Light); !bytes.Equal(got, want) {
			t.Error("unknown profile should resolve to the materialized generic.png")
		}
	})

	t.Run("override generic wins", func(t *testing.T) {
		override := t.TempDir()
		custom := []byte("custom-generic-bytes")
		if err := os.WriteFile(filepath.Join(override, "generic.png"), custom, 0644); err != nil {
			t.Fatal(err)
		}

		s := NewSelector(override, bundled)
		if got := s.Generic(theme.Light); !bytes.Equal(got, custom) {
			t.Error("expected the override generic.png")
		}
		if got := s.Select(power.Profile("mystery"), theme.Dark); !bytes.Equal(got, custom) {
			t.Error("unknown profile should resolve to the override generic.png")
		}
	})
}

func TestSelector_GenericFallback(t *testing.T) {
	// Neither directory exists; selection must still produce a PNG.
	s := NewSelector("", filepath.Join(t.TempDir(), "nonexistent"))

	data := s.Select(power.Profile("mystery"), theme.Light)
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("fallback icon is not valid PNG: %v", err)
	}
	if !bytes.Equal(data, GenerateGeneric(theme.Light)) {
		t.Error("expected the generic icon when nothing resolves")
	}
}
