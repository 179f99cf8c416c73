// Package decode resolves dotted identifiers against an identifier tree.
package decode

import (
	"strings"

	"github.com/oidtool/oids/pkg/tree"
)

// Separator splits an identifier into segment tokens.
const Separator = "."

// Step describes how one segment token of an identifier was resolved.
type Step struct {
	Token string `json:"token"`
	Label string `json:"label,omitempty"`
	Known bool   `json:"known"`
}

// Known returns a step for a token that matched a named position.
func Known(label, token string) Step {
	return Step{Token: token, Label: label, Known: true}
}

// Unknown returns a step for a token that could not be labelled.
func Unknown(token string) Step {
	return Step{Token: token}
}

// String renders the step as label(token), or the bare token if unknown.
func (s Step) String() string {
	if !s.Known {
		return s.Token
	}
	return s.Label + "(" + s.Token + ")"
}

// Split splits an identifier into its segment tokens. An empty identifier
// yields a single empty token.
func Split(identifier string) []string {
	return strings.Split(identifier, Separator)
}

// Resolve walks root guided by the segment tokens of identifier and returns
// one step per token, in order.
//
// A token matching a child mapping narrows the search to that child, even
// when the child has no label. A token matching nothing, or matching a
// non-mapping value, loses the position: it and every later token resolve
// to Unknown without further lookups.
func Resolve(root *tree.Node, identifier string) []Step {
	tokens := Split(identifier)
	steps := make([]Step, 0, len(tokens))

	current := root
	if !current.IsMapping() {
		current = nil
	}

	for _, token := range tokens {
		if current == nil {
			steps = append(steps, Unknown(token))
			continue
		}

		child, ok := current.Get(token)
		if !ok || !child.IsMapping() {
			current = nil
			steps = append(steps, Unknown(token))
			continue
		}

		current = child
		if label, ok := child.Name(); ok {
			steps = append(steps, Known(label, token))
		} else {
			steps = append(steps, Unknown(token))
		}
	}
	return steps
}

// Render joins the rendered steps with spaces and terminates the line.
//
//	iso(1) member-body(2) 840
func Render(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ") + "\n"
}

// Resolved reports how many leading steps are known.
func Resolved(steps []Step) int {
	for i, s := range steps {
		if !s.Known {
			return i
		}
	}
	return len(steps)
}
