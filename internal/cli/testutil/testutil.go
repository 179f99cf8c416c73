// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"gopkg.in/yaml.v3"
)

// ISODefinition is a small, fully named definition document.
const ISODefinition = `# Top of the ISO arc
[1]
name = "iso"

[1.2]
name = "member-body"

[1.3]
name = "identified-organization"

[2]
name = "joint-iso-itu-t"
`

// UnnamedDefinition has a position without a name below a named one.
const UnnamedDefinition = `[1]
name = "iso"

[1.2]
name = "member-body"

[1.2.840]
comment = "no name here"

[1.2.840.10045]
name = "ansi-X9-62"
`

// WriteDefinition writes a definition document into a temporary directory
// and returns its path.
func WriteDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definition.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write definition: %v", err)
	}
	return path
}

// WriteConfig marshals values as YAML into dir/oids.yaml and returns the path.
func WriteConfig(t *testing.T, dir string, values map[string]any) string {
	t.Helper()
	data, err := yaml.Marshal(values)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	path := filepath.Join(dir, "oids.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("output contains ANSI escape codes: %q", s)
	}
}
