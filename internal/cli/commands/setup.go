package commands

import (
	"fmt"
	"log/slog"

	"github.com/oidtool/oids/internal/cli/config"
	"github.com/oidtool/oids/internal/cli/output"
	"github.com/oidtool/oids/internal/loader"
	"github.com/oidtool/oids/pkg/tree"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// LoadDefinition reads and parses the definition document at path.
func (c *CommandContext) LoadDefinition(path string) (*tree.Node, error) {
	return loader.New(c.Logger).Load(path)
}

// ExactArgs is cobra.ExactArgs, printing usage to stderr before reporting
// the error.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return err
		}
		return nil
	}
}
