package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestVersionOutput(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"dev", "none", "unknown", "cy dev (commit: none, built: unknown)\n"},
		{"0.3.1", "9f2c1e0", "2026-09-30", "cy 0.3.1 (commit: 9f2c1e0, built: 2026-09-30)\n"},
	}
	for _, tt := range tests {
		Version, Commit, Date = tt.version, tt.commit, tt.date
		cmd := newRootCmd()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"version"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("version: %v", err)
		}
		if buf.String() != tt.want {
			t.Errorf("version output = %q, want %q", buf.String(), tt.want)
		}
	}
}

func TestRootWithoutArgsDescribesPlanner(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("root: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "grade capacity") {
		t.Errorf("root output should describe the planner, got: %s", out)
	}
	for _, sub := range newRootCmd().Commands() {
		if !strings.Contains(out, sub.Short) {
			t.Errorf("root output missing %q (%s)", sub.Name(), sub.Short)
		}
	}
}

// leaves returns every runnable command below root.
func leaves(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range root.Commands() {
		if c.HasSubCommands() {
			out = append(out, leaves(c)...)
		} else if c.Runnable() {
			out = append(out, c)
		}
	}
	return out
}

func TestStorageCommandsTakeConfigFlag(t *testing.T) {
	noStorage := map[string]bool{"cy version": true, "cy catalog locos": true, "cy catalog stations": true}

	for _, c := range leaves(newRootCmd()) {
		path := c.CommandPath()
		if noStorage[path] {
			continue
		}
		f := c.Flags().Lookup("config")
		if f == nil {
			t.Errorf("%s: missing --config", path)
			continue
		}
		if f.Shorthand != "c" || f.DefValue != defaultConfigPath {
			t.Errorf("%s: --config shorthand %q default %q, want c / %s", path, f.Shorthand, f.DefValue, defaultConfigPath)
		}
	}
}

func TestConsistFlagOnConsistCommands(t *testing.T) {
	for _, c := range leaves(newRootCmd()) {
		parent := c.Parent().Name()
		if parent != "loco" && parent != "order" && c.Name() != "status" {
			continue
		}
		if c.Flags().Lookup("consist") == nil {
			t.Errorf("%s: missing --consist", c.CommandPath())
		}
	}
}

func TestExecuteExitCodes(t *testing.T) {
	ok := newRootCmd()
	ok.SetOut(new(bytes.Buffer))
	ok.SetArgs([]string{"catalog", "stations"})
	if code := execute(ok); code != 0 {
		t.Errorf("catalog stations exit code = %d, want 0", code)
	}

	bad := newRootCmd()
	bad.SetOut(new(bytes.Buffer))
	bad.SetErr(new(bytes.Buffer))
	bad.SetArgs([]string{"loco", "power"})
	if code := execute(bad); code != 1 {
		t.Errorf("loco power without a unit exit code = %d, want 1", code)
	}
}
