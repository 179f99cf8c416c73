package tree

import "errors"

// SkipChildren can be returned by a WalkFunc to skip the subtree below the
// current position.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every mapping below the root. The path slice is
// reused between calls; copy it to retain it.
type WalkFunc func(path []string, n *Node) error

// Walk visits every mapping below root depth-first, in lexicographic key
// order, parents before children. The reserved name key is never descended
// into. Walk stops at the first error returned by fn.
func Walk(root *Node, fn WalkFunc) error {
	if !root.IsMapping() {
		return ErrNotMapping
	}
	path := make([]string, 0, 8)
	return walkChildren(root, path, fn)
}

func walkChildren(n *Node, path []string, fn WalkFunc) error {
	for _, k := range n.Keys() {
		if k == NameKey {
			continue
		}
		child := n.children[k]
		if !child.IsMapping() {
			continue
		}
		path = append(path, k)
		err := fn(path, child)
		switch {
		case errors.Is(err, SkipChildren):
		case err != nil:
			return err
		default:
			if err := walkChildren(child, path, fn); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
	}
	return nil
}
