package commands

import (
	"log/slog"
	"strings"

	"github.com/oidtool/oids/internal/cli/output"
	"github.com/oidtool/oids/pkg/decode"
	"github.com/spf13/cobra"
)

// DecodeOptions holds options for the decode command.
type DecodeOptions struct {
	Path string // Definition file
	OID  string // Dotted identifier to resolve
}

// decodeReport is the JSON form of a decode result.
type decodeReport struct {
	OID   string        `json:"oid"`
	Steps []decode.Step `json:"steps"`
	Text  string        `json:"text"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand() *cobra.Command {
	opts := &DecodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode <FILE> <OID>",
		Short: "Annotate an OID with the names from a definition file",
		Long: `Resolve a dotted OID against a definition file.

Each component that matches a named table prints as name(number). Components
that cannot be named print as the bare number. Once a component matches
nothing, every following component prints bare.`,
		Example: `  oids decode oids.toml 1.2.840
  # iso(1) member-body(2) us(840)

  oids decode -o json oids.toml 1.3.6.1

  # Identifiers starting with "-" go after "--"
  oids decode oids.toml -- -1.2`,
		Args: ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			opts.OID = args[1]
			return runDecode(cmd, opts)
		},
	}

	return cmd
}

func runDecode(cmd *cobra.Command, opts *DecodeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	root, err := cmdCtx.LoadDefinition(opts.Path)
	if err != nil {
		return err
	}

	steps := decode.Resolve(root, opts.OID)
	text := decode.Render(steps)
	cmdCtx.Logger.Debug("decoded identifier",
		slog.String("oid", opts.OID),
		slog.Int("components", len(steps)),
		slog.Int("resolved", decode.Resolved(steps)))

	if r.IsJSON() {
		return r.JSON(decodeReport{OID: opts.OID, Steps: steps, Text: text})
	}
	r.Print(renderSteps(r, steps))
	return nil
}

// renderSteps renders steps as decode.Render does, highlighting names and
// dimming unnamed components on terminals.
func renderSteps(r *output.Renderer, steps []decode.Step) string {
	if !r.Styled() {
		return decode.Render(steps)
	}
	styles := r.Styles()
	parts := make([]string, len(steps))
	for i, s := range steps {
		if s.Known {
			parts[i] = r.Style(styles.Known, s.Label) + "(" + s.Token + ")"
		} else {
			parts[i] = r.Style(styles.Muted, s.Token)
		}
	}
	return strings.Join(parts, " ") + "\n"
}
