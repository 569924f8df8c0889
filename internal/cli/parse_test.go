package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/commands"
	"todo/internal/task"
)

func TestParseInterspersed(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantPos []string
		wantV   bool
	}{
		{"flags first", []string{"-v", "a", "b"}, []string{"a", "b"}, true},
		{"flags last", []string{"a", "b", "--v"}, []string{"a", "b"}, true},
		{"flags between", []string{"a", "-v", "b"}, []string{"a", "b"}, true},
		{"double dash", []string{"a", "--", "-v", "b"}, []string{"a", "-v", "b"}, false},
		{"none", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("t", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			v := fs.Bool("v", false, "")

			pos, err := parseInterspersed(fs, tc.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.wantPos, pos); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
			if *v != tc.wantV {
				t.Errorf("expected v=%v, got %v", tc.wantV, *v)
			}
		})
	}
}

func TestParse_Intents(t *testing.T) {
	inv, err := Parse(Todo, []string{"progress", "3", "--done", "--quiet", "--file", "/tmp/t.json"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	in, ok := inv.Intent.(*commands.ProgressIntent)
	if !ok {
		t.Fatalf("expected *ProgressIntent, got %T", inv.Intent)
	}
	if in.ID != 3 || in.Status != task.StatusDone {
		t.Errorf("unexpected intent %+v", in)
	}
	if !inv.Quiet || inv.Overrides.TaskFile != "/tmp/t.json" {
		t.Errorf("unexpected invocation %+v", inv)
	}

	inv, err = Parse(Todo, []string{"add", "Buy", "milk", "--debug"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if add := inv.Intent.(*commands.AddIntent); add.Description != "Buy milk" || !inv.Debug {
		t.Errorf("unexpected add intent %+v debug=%v", add, inv.Debug)
	}

	inv, err = Parse(Todo, []string{"add", "--", "-5", "degrees"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if add := inv.Intent.(*commands.AddIntent); add.Description != "-5 degrees" {
		t.Errorf("expected dash description, got %q", add.Description)
	}

	inv, err = Parse(Spend, []string{"list", "--db", "/tmp/s.db"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if inv.Overrides.SpendDB != "/tmp/s.db" {
		t.Errorf("expected db override, got %+v", inv.Overrides)
	}
}

func TestParse_UsageErrors(t *testing.T) {
	cases := []struct {
		name      string
		program   Program
		args      []string
		msg       string
		wantUsage bool
	}{
		{"empty", Todo, nil, "no command given", false},
		{"unknown command", Todo, []string{"frobnicate"}, "unknown command: frobnicate", false},
		{"flag before command", Todo, []string{"--quiet"}, "unknown command: --quiet", false},
		{"unknown flag", Todo, []string{"list", "--all", "--bogus"}, "unknown flag: -bogus", true},
		{"missing flag value", Todo, []string{"list", "--all", "--file"}, "flag needs an argument: -file", true},
		{"db is spend only", Todo, []string{"list", "--all", "--db", "x"}, "unknown flag: -db", true},
		{"bad id", Todo, []string{"delete", "x"}, "invalid task id: x", true},
		{"spend has no progress", Spend, []string{"progress"}, "unknown command: progress", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.program, tc.args)
			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UsageError, got %v", err)
			}
			if ue.Msg != tc.msg {
				t.Errorf("expected %q, got %q", tc.msg, ue.Msg)
			}
			if (ue.Usage != "") != tc.wantUsage {
				t.Errorf("usage presence mismatch: %q", ue.Usage)
			}
		})
	}
}

func TestParse_HelpFlag(t *testing.T) {
	inv, err := Parse(Todo, []string{"list", "-h"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	help, ok := inv.Intent.(*commands.HelpIntent)
	if !ok {
		t.Fatalf("expected *HelpIntent, got %T", inv.Intent)
	}
	want := "Usage: todo list (--all | --done | --todo | --in-progress)\n"
	if help.Text != want {
		t.Errorf("expected %q, got %q", want, help.Text)
	}
	if inv.Command.Needs() != 0 {
		t.Error("help should need no backends")
	}
}
