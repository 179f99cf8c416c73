package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oidtool/oids/pkg/lint"
	"github.com/spf13/cobra"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Path     string // Definition file
	ExitZero bool   // Report failures without a failing exit status
}

// lintReport is the JSON form of a lint result.
type lintReport struct {
	File    string   `json:"file"`
	Valid   bool     `json:"valid"`
	Path    []string `json:"path,omitempty"`
	Message string   `json:"message,omitempty"`
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <FILE>",
		Short: "Check that every position in a definition file has a name",
		Long: `Validate the structure of a definition file.

Every table below the root must carry a "name" entry. Checking stops at the
first table without one, which is reported with its path and contents.
Tables are visited in key order, parents before their children.

A failure exits with status 1 unless --exit-zero is set.`,
		Example: `  # Lint a definition file
  oids lint oids.toml

  # Report failures without failing the build
  oids lint --exit-zero oids.toml

  # Machine-readable result
  oids lint -o json oids.toml`,
		Args: ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ExitZero, "exit-zero", false, "Exit with status 0 even when lint fails")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	root, err := cmdCtx.LoadDefinition(opts.Path)
	if err != nil {
		return err
	}

	verr := lint.Validate(root)
	var failure *lint.ValidationError
	if verr != nil && !errors.As(verr, &failure) {
		return fmt.Errorf("failed to lint %s: %w", opts.Path, verr)
	}

	if r.IsJSON() {
		report := lintReport{File: opts.Path, Valid: failure == nil}
		if failure != nil {
			report.Path = failure.Path
			report.Message = failure.Error()
		}
		if err := r.JSON(report); err != nil {
			return err
		}
	} else if failure != nil {
		r.Println(r.Style(r.Styles().Error, failure.Error()))
	} else {
		r.Status(r.Styles().Success, fmt.Sprintf("%s: every position is named", opts.Path))
	}

	if failure == nil {
		cmdCtx.Logger.Info("definition is valid", slog.String("file", opts.Path))
		return nil
	}

	cmdCtx.Logger.Info("definition failed lint",
		slog.String("file", opts.Path),
		slog.Any("path", failure.Path))

	exitZero := cmdCtx.Cfg.Lint.ExitZero
	if cmd.Flags().Changed("exit-zero") {
		exitZero = opts.ExitZero
	}
	if exitZero {
		return nil
	}
	return lint.ErrLintFailed
}
