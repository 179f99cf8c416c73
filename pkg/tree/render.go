package tree

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Render returns the node contents on a single line in inline-table form,
// with keys in lexicographic order:
//
//	{2 = {}, name = "iso"}
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Render()
}

func (n *Node) render(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.kind == KindScalar {
		renderValue(b, n.value)
		return
	}
	b.WriteByte('{')
	for i, k := range n.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(RenderKey(k))
		b.WriteString(" = ")
		n.children[k].render(b)
	}
	b.WriteByte('}')
}

// RenderKey quotes a key unless it is a bare key.
func RenderKey(k string) string {
	if bareKeyPattern.MatchString(k) {
		return k
	}
	return strconv.Quote(k)
}

// RenderPath renders a key path as a bracketed list of quoted keys, e.g. ["1", "2"].
func RenderPath(path []string) string {
	quoted := make([]string, len(path))
	for i, p := range path {
		quoted[i] = strconv.Quote(p)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func renderValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("<nil>")
	case string:
		b.WriteString(strconv.Quote(val))
	case []any:
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValue(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(RenderKey(k))
			b.WriteString(" = ")
			renderValue(b, val[k])
		}
		b.WriteByte('}')
	default:
		fmt.Fprint(b, val)
	}
}
