package btree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Shape is an immutable snapshot of a (sub-)tree's structure. Renderers work
// on shapes and never touch live nodes.
type Shape[K cmp.Ordered] struct {
	Keys     []K
	Leaf     bool
	Children []Shape[K]
}

// Shape returns a deep snapshot of the tree.
//
// It may be called from within a StepObserver, in which case it captures the
// transient state at the checkpoint.
func (t *Tree[K]) Shape() Shape[K] {
	return snapshot(t.root)
}

func snapshot[K cmp.Ordered](n *node[K]) Shape[K] {
	s := Shape[K]{
		Keys: append([]K(nil), n.keys...),
		Leaf: n.leaf,
	}
	if !n.leaf {
		s.Children = make([]Shape[K], len(n.children))
		for i, child := range n.children {
			s.Children[i] = snapshot(child)
		}
	}
	return s
}

// Depth returns the number of levels of the shape.
func (s Shape[K]) Depth() int {
	if s.Leaf || len(s.Children) == 0 {
		return 1
	}
	return 1 + s.Children[0].Depth()
}

// Levels returns the nodes of the shape grouped by depth, left to right.
func (s Shape[K]) Levels() [][]Shape[K] {
	var levels [][]Shape[K]
	current := []Shape[K]{s}
	for len(current) > 0 {
		levels = append(levels, current)
		var next []Shape[K]
		for _, n := range current {
			next = append(next, n.Children...)
		}
		current = next
	}
	return levels
}

// Contains reports whether key is one of the keys of this node (not the
// subtree). Keys are compared with cmp.Compare.
func (s Shape[K]) Contains(key K) bool {
	return s.ContainsFunc(key, nil)
}

// ContainsFunc is Contains for trees ordered by a custom compare function,
// see Config.Compare. A nil compare means cmp.Compare.
func (s Shape[K]) ContainsFunc(key K, compare func(a, b K) int) bool {
	if compare == nil {
		compare = cmp.Compare[K]
	}
	return slices.ContainsFunc(s.Keys, func(k K) bool {
		return compare(k, key) == 0
	})
}

// Label formats the keys of a node, e.g. "10, 20".
func (s Shape[K]) Label() string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ", ")
}

// String renders a compact parenthesized form, e.g.
//
//	[10 20]([5] [15] [25 30 35])
func (s Shape[K]) String() string {
	var b strings.Builder
	s.format(&b)
	return b.String()
}

func (s Shape[K]) format(b *strings.Builder) {
	fmt.Fprintf(b, "%v", s.Keys)
	if s.Leaf {
		return
	}
	b.WriteByte('(')
	for i, child := range s.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		child.format(b)
	}
	b.WriteByte(')')
}
