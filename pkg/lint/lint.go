package lint

import (
	"errors"
	"fmt"

	"github.com/oidtool/oids/pkg/tree"
)

// ErrLintFailed is returned by commands once a validation failure has been
// reported to the user.
var ErrLintFailed = errors.New("definition failed lint")

// ValidationError reports a tree position that lacks a name.
type ValidationError struct {
	Path []string   // Keys from the root to the offending node
	Node *tree.Node // The offending node
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing name for path: %s :: %s", tree.RenderPath(e.Path), e.Node.Render())
}

// Validate checks that every mapping below root carries a name key.
// It stops at the first failure and returns it as a *ValidationError.
func Validate(root *tree.Node) error {
	return ValidatePath(nil, root)
}

// ValidatePath validates node as if it were reached from the root through
// path. An empty path marks node as the root, which is exempt from the name
// requirement.
//
// Children are visited in lexicographic key order, parents before their
// children, so the reported path is deterministic.
func ValidatePath(path []string, node *tree.Node) error {
	if !node.IsMapping() {
		return tree.ErrNotMapping
	}
	buf := make([]string, len(path), len(path)+8)
	copy(buf, path)
	return validate(buf, node)
}

func validate(path []string, node *tree.Node) error {
	if len(path) != 0 && !node.Has(tree.NameKey) {
		return &ValidationError{
			Path: append([]string(nil), path...),
			Node: node,
		}
	}

	for _, key := range node.Keys() {
		if key == tree.NameKey {
			continue
		}
		child, _ := node.Get(key)
		if !child.IsMapping() {
			continue
		}
		if err := validate(append(path, key), child); err != nil {
			return err
		}
	}
	return nil
}
