package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/oidtool/oids/internal/cli/testutil"
	"github.com/oidtool/oids/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	err := ExecuteArgs(args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestRootHelp(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	for _, want := range []string{"lint", "decode", "list", "version"} {
		assert.Contains(t, out, want)
	}
}

func TestRootCommandMetadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "oids", cmd.Use)
	for _, flag := range []string{"config", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestExecuteDecode(t *testing.T) {
	path := testutil.WriteDefinition(t, testutil.ISODefinition)

	out, errOut, err := run(t, "decode", path, "1.2.840")
	require.NoError(t, err)
	assert.Equal(t, "iso(1) member-body(2) 840\n", out)
	assert.Empty(t, errOut)
}

func TestExecuteLintExitCodes(t *testing.T) {
	valid := testutil.WriteDefinition(t, testutil.ISODefinition)
	invalid := testutil.WriteDefinition(t, testutil.UnnamedDefinition)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"valid", []string{"lint", valid}, ExitOK},
		{"lint failure", []string{"lint", invalid}, ExitLintFailed},
		{"exit zero", []string{"lint", "--exit-zero", invalid}, ExitOK},
		{"missing file", []string{"lint", "/does/not/exist.toml"}, ExitFatal},
		{"missing argument", []string{"lint"}, ExitFatal},
		{"too many arguments", []string{"decode", valid, "1", "2"}, ExitFatal},
		{"unknown command", []string{"encode", valid}, ExitFatal},
		{"bad output flag", []string{"-o", "xml", "lint", valid}, ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Equal(t, tt.wantCode, ExitCode(err))
			if tt.wantCode != ExitOK {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tt.wantCode, exitErr.Code)
			}
		})
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	invalid := testutil.WriteDefinition(t, testutil.UnnamedDefinition)

	out, errOut, err := run(t, "lint", invalid)
	require.Error(t, err)
	assert.Contains(t, out, "missing name for path: [\"1\", \"2\", \"840\"]")
	assert.Contains(t, errOut, "Error: definition failed lint")
}

func TestExecuteUnknownCommandPrintsUsage(t *testing.T) {
	path := testutil.WriteDefinition(t, testutil.ISODefinition)

	out, errOut, err := run(t, "encode", path)
	require.Error(t, err)
	assert.Equal(t, ExitFatal, ExitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage:")
	assert.Contains(t, errOut, `Error: unknown command "encode" for "oids"`)
	assert.Contains(t, errOut, "Did you mean this?\n\tdecode")
}

func TestExecuteVerboseLogsToStderr(t *testing.T) {
	path := testutil.WriteDefinition(t, testutil.ISODefinition)

	out, errOut, err := run(t, "-vv", "decode", path, "1")
	require.NoError(t, err)
	assert.Equal(t, "iso(1)\n", out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "decoded identifier")

	_, errOut, err = run(t, "decode", path, "1")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestExecuteConfigFile(t *testing.T) {
	path := testutil.WriteDefinition(t, testutil.UnnamedDefinition)
	cfgPath := testutil.WriteConfig(t, t.TempDir(), map[string]any{
		"lint": map[string]any{"exit_zero": true},
	})

	_, _, err := run(t, "--config", cfgPath, "lint", path)
	assert.NoError(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitLintFailed, ExitCode(lint.ErrLintFailed))
	assert.Equal(t, ExitLintFailed, ExitCode(fmt.Errorf("wrapped: %w", lint.ErrLintFailed)))
	assert.Equal(t, ExitFatal, ExitCode(errors.New("boom")))
	assert.Equal(t, 7, ExitCode(&ExitError{Code: 7, Err: errors.New("custom")}))
}

func TestExitErrorUnwrap(t *testing.T) {
	err := &ExitError{Code: ExitLintFailed, Err: lint.ErrLintFailed}
	assert.ErrorIs(t, err, lint.ErrLintFailed)
	assert.Equal(t, lint.ErrLintFailed.Error(), err.Error())
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "oids")
}
