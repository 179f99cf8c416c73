package commands

import (
	"fmt"
	"strings"

	"github.com/oidtool/oids/pkg/decode"
	"github.com/oidtool/oids/pkg/tree"
	"github.com/spf13/cobra"
)

// listEntry is one named position in a definition file.
type listEntry struct {
	OID  string `json:"oid"`
	Name string `json:"name"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <FILE>",
		Short: "List every position in a definition file",
		Long: `List every position in a definition file with its name.

Positions are listed depth-first in key order. Positions without a name are
listed with an empty name.`,
		Example: `  oids list oids.toml
  oids list -o json oids.toml`,
		Args: ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}
	return cmd
}

func runList(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	root, err := cmdCtx.LoadDefinition(path)
	if err != nil {
		return err
	}

	entries, err := collectEntries(root)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", path, err)
	}

	if r.IsJSON() {
		return r.JSON(entries)
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.OID, e.Name}
	}
	r.Table([]string{"OID", "Name"}, rows)
	return nil
}

func collectEntries(root *tree.Node) ([]listEntry, error) {
	entries := []listEntry{}
	err := tree.Walk(root, func(path []string, n *tree.Node) error {
		name, _ := n.Name()
		entries = append(entries, listEntry{
			OID:  strings.Join(path, decode.Separator),
			Name: name,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
