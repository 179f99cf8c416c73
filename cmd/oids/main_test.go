// Package main provides tests for the oids CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oidtool/oids/internal/cli"
)

const definition = `[1]
name = "iso"

[1.2]
name = "member-body"
`

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oids.toml")
	if err := os.WriteFile(path, []byte(definition), 0600); err != nil {
		t.Fatalf("failed to write definition: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.Contains(buf.String(), "oids v") {
		t.Errorf("version output should contain 'oids v', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"lint", "decode", "list"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestDecodeCommand(t *testing.T) {
	path := writeDefinition(t)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"decode", path, "1.2.840"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("decode command error = %v", err)
	}

	if got, want := buf.String(), "iso(1) member-body(2) 840\n"; got != want {
		t.Errorf("decode output = %q, want %q", got, want)
	}
}

func TestLintCommand(t *testing.T) {
	path := writeDefinition(t)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"lint", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("lint command error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("lint of a valid file should print nothing, got: %s", buf.String())
	}
}
