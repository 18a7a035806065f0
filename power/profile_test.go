package power

import (
	"errors"
	"testing"

	"github.com/yllada/power-profiles-tray/common"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Profile
		wantErr bool
	}{
		{"performance", "performance", Performance, false},
		{"balanced", "balanced", Balanced, false},
		{"power-saver", "power-saver", PowerSaver, false},
		{"surrounding whitespace", "  balanced\n", Balanced, false},
		{"mixed case", "Performance", Performance, false},
		{"upper case", "POWER-SAVER", PowerSaver, false},
		{"unknown name", "turbo", "", true},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseProfile(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, common.ErrUnknownProfile) {
					t.Errorf("error = %v, want ErrUnknownProfile", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProfile(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseProfile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProfile_Known(t *testing.T) {
	for _, p := range []Profile{Performance, Balanced, PowerSaver} {
		if !p.Known() {
			t.Errorf("%v should be known", p)
		}
	}
	if Profile("quiet").Known() {
		t.Error("quiet should not be known")
	}
	if Profile("").Known() {
		t.Error("empty profile should not be known")
	}
}

func TestProfile_DisplayName(t *testing.T) {
	tests := []struct {
		profile Profile
		want    string
	}{
		{Performance, "Performance"},
		{Balanced, "Balanced"},
		{PowerSaver, "Power Saver"},
		{Profile("custom"), "custom"},
	}

	for _, tt := range tests {
		if got := tt.profile.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%v) = %v, want %v", tt.profile, got, tt.want)
		}
	}
}
