// Package tree models a parsed definition document as a tree of scalar and
// mapping nodes.
//
// A definition document describes an identifier tree: every mapping below the
// root is a position in the tree, keyed by its segment token, and carries a
// human-readable label under the reserved "name" key.
//
//	[1]
//	name = "iso"
//
//	[1.2]
//	name = "member-body"
package tree

import (
	"errors"
	"sort"
)

// NameKey is the reserved key holding the label of a tree position.
const NameKey = "name"

// ErrNotMapping is returned when an operation requires a mapping node.
var ErrNotMapping = errors.New("node is not a mapping")

// Kind distinguishes the two node variants.
type Kind int

const (
	// KindScalar is a leaf value.
	KindScalar Kind = iota
	// KindMapping is a keyed container of child nodes.
	KindMapping
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is either a scalar value or a mapping of string keys to child nodes.
// Nodes are immutable once built.
type Node struct {
	kind     Kind
	value    any
	children map[string]*Node
}

// NewScalar returns a scalar node wrapping v.
func NewScalar(v any) *Node {
	return &Node{kind: KindScalar, value: v}
}

// NewMapping returns a mapping node with the given children.
// A nil map yields an empty mapping.
func NewMapping(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{kind: KindMapping, children: children}
}

// FromValue converts a generic decoded document value into a node.
// Nested map[string]any values become mappings; everything else, arrays
// included, becomes a scalar.
func FromValue(v any) *Node {
	m, ok := v.(map[string]any)
	if !ok {
		return NewScalar(v)
	}
	children := make(map[string]*Node, len(m))
	for k, child := range m {
		children[k] = FromValue(child)
	}
	return NewMapping(children)
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsMapping reports whether n is a non-nil mapping node.
func (n *Node) IsMapping() bool {
	return n != nil && n.kind == KindMapping
}

// Value returns the raw scalar value. It is nil for mappings.
func (n *Node) Value() any {
	return n.value
}

// Text returns the scalar value when it is a string.
func (n *Node) Text() (string, bool) {
	if n == nil || n.kind != KindScalar {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// Get returns the child stored under key.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Has reports whether the mapping holds key, regardless of the value type.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Name returns the label of a tree position. The label is only present when
// the reserved name key holds a string scalar.
func (n *Node) Name() (string, bool) {
	child, ok := n.Get(NameKey)
	if !ok {
		return "", false
	}
	return child.Text()
}

// Len returns the number of children of a mapping.
func (n *Node) Len() int {
	if !n.IsMapping() {
		return 0
	}
	return len(n.children)
}

// Keys returns the mapping keys in lexicographic order.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
