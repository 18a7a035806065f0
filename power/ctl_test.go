package power

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/yllada/power-profiles-tray/common"
)

// fakeRunner replays canned output per subcommand and records Set calls,
// so round-trip behavior can be tested without a real daemon.
type fakeRunner struct {
	listOut string
	getOut  string
	err     error
	setArgs []string
}

func (f *fakeRunner) Output(_ context.Context, _ string, args ...string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(args) == 0 {
		return nil, errors.New("missing subcommand")
	}
	switch args[0] {
	case common.CtlList:
		return []byte(f.listOut), nil
	case common.CtlGet:
		return []byte(f.getOut), nil
	case common.CtlSet:
		f.setArgs = args[1:]
		if len(f.setArgs) == 1 {
			f.getOut = f.setArgs[0] + "\n"
		}
		return nil, nil
	}
	return nil, errors.New("unexpected subcommand")
}

const sampleListOutput = `  performance:
    CpuDriver:	intel_pstate
    PlatformDriver:	platform_profile

* balanced:
    CpuDriver:	intel_pstate
    PlatformDriver:	platform_profile
    Degraded:   no

  power-saver:
    CpuDriver:	intel_pstate
    PlatformDriver:	platform_profile
`

func TestCtl_List(t *testing.T) {
	ctl := NewCtlWithRunner(&fakeRunner{listOut: sampleListOutput})

	profiles, active, err := ctl.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []Profile{Performance, Balanced, PowerSaver}
	if len(profiles) != len(want) {
		t.Fatalf("List() returned %d profiles, want %d", len(profiles), len(want))
	}
	for i, p := range want {
		if profiles[i] != p {
			t.Errorf("profiles[%d] = %v, want %v", i, profiles[i], p)
		}
	}

	if active != Balanced {
		t.Errorf("active = %v, want %v", active, Balanced)
	}
}

func TestCtl_List_ParserRobustness(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantCount  int
		wantActive Profile
	}{
		{
			"extra whitespace around entries",
			"\n\n   performance:  \n\t* balanced:\t\n   power-saver:\n\n",
			3, Balanced,
		},
		{
			"marker directly attached",
			"performance:\n*balanced:\npower-saver:\n",
			3, Balanced,
		},
		{
			"no trailing colon",
			"performance\n* balanced\npower-saver\n",
			3, Balanced,
		},
		{
			"unrecognized entry skipped",
			"performance:\n* balanced:\nquiet-mode:\npower-saver:\n",
			3, Balanced,
		},
		{
			"driver detail lines ignored",
			sampleListOutput,
			3, Balanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, active, err := parseList([]byte(tt.output))
			if err != nil {
				t.Fatalf("parseList() error = %v", err)
			}
			if len(profiles) != tt.wantCount {
				t.Errorf("got %d profiles, want %d", len(profiles), tt.wantCount)
			}
			if active != tt.wantActive {
				t.Errorf("active = %v, want %v", active, tt.wantActive)
			}
		})
	}
}

func TestCtl_List_ExactlyOneActive(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr error
	}{
		{"no active marker", "performance:\nbalanced:\npower-saver:\n", ErrParse},
		{"two active markers", "* performance:\n* balanced:\npower-saver:\n", ErrParse},
		{"empty output", "", common.ErrNoProfiles},
		{"only driver lines", "    CpuDriver:	intel_pstate\n    Degraded:   no\n", common.ErrNoProfiles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseList([]byte(tt.output))
			if err == nil {
				t.Fatal("parseList() expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCtl_Active(t *testing.T) {
	ctl := NewCtlWithRunner(&fakeRunner{getOut: "balanced\n"})

	got, err := ctl.Active(context.Background())
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if got != Balanced {
		t.Errorf("Active() = %v, want %v", got, Balanced)
	}
}

func TestCtl_Active_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"garbage", "no such profile\n"},
		{"empty", ""},
		{"blank lines only", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := NewCtlWithRunner(&fakeRunner{getOut: tt.output})
			_, err := ctl.Active(context.Background())
			if !errors.Is(err, ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}
		})
	}
}

func TestCtl_SetThenActive(t *testing.T) {
	runner := &fakeRunner{getOut: "balanced\n"}
	ctl := NewCtlWithRunner(runner)
	ctx := context.Background()

	for _, p := range []Profile{Performance, PowerSaver, Balanced} {
		if err := ctl.Set(ctx, p); err != nil {
			t.Fatalf("Set(%v) error = %v", p, err)
		}

		got, err := ctl.Active(ctx)
		if err != nil {
			t.Fatalf("Active() after Set(%v) error = %v", p, err)
		}
		if got != p {
			t.Errorf("Active() = %v after Set(%v)", got, p)
		}
	}
}

func TestCtl_Set_UnknownProfile(t *testing.T) {
	runner := &fakeRunner{}
	ctl := NewCtlWithRunner(runner)

	err := ctl.Set(context.Background(), Profile("overdrive"))
	if !errors.Is(err, common.ErrUnknownProfile) {
		t.Errorf("error = %v, want ErrUnknownProfile", err)
	}
	if runner.setArgs != nil {
		t.Error("Set should not invoke the tool for an unknown profile")
	}
}

func TestCtl_ErrorClassification(t *testing.T) {
	permErr := &exec.ExitError{Stderr: []byte("Error: GDBus.Error: not authorized to change profile")}
	genericErr := &exec.ExitError{Stderr: []byte("something else went wrong")}

	tests := []struct {
		name    string
		runErr  error
		wantErr error
	}{
		{"missing binary", &exec.Error{Name: common.CtlCommand, Err: exec.ErrNotFound}, common.ErrToolUnavailable},
		{"timeout", context.DeadlineExceeded, common.ErrTimeout},
		{"polkit denial", permErr, common.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := NewCtlWithRunner(&fakeRunner{err: tt.runErr})
			_, _, err := ctl.List(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("generic exit error keeps context", func(t *testing.T) {
		ctl := NewCtlWithRunner(&fakeRunner{err: genericErr})
		_, _, err := ctl.List(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, common.ErrPermissionDenied) {
			t.Error("generic failure should not classify as permission denied")
		}
		if !strings.Contains(err.Error(), common.CtlList) {
			t.Errorf("error should mention the subcommand: %v", err)
		}
	})
}
