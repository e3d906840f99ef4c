package btree

import "slices"

// node is the unit of storage: an ascending key list and, for internal nodes,
// len(keys)+1 exclusively owned children. There are no parent links; every
// traversal runs top-down.
type node[K any] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

func newLeaf[K any]() *node[K] {
	return &node[K]{leaf: true}
}

func newInternal[K any](children ...*node[K]) *node[K] {
	return &node[K]{children: children}
}

func (n *node[K]) firstKey() K {
	assert(len(n.keys) > 0, "firstKey called on empty node")
	return n.keys[0]
}

func (n *node[K]) lastKey() K {
	assert(len(n.keys) > 0, "lastKey called on empty node")
	return n.keys[len(n.keys)-1]
}

func (n *node[K]) insertKeyAt(i int, key K) {
	n.keys = slices.Insert(n.keys, i, key)
}

func (n *node[K]) removeKeyAt(i int) K {
	key := n.keys[i]
	n.keys = slices.Delete(n.keys, i, i+1)
	return key
}

func (n *node[K]) insertChildAt(i int, child *node[K]) {
	assert(!n.leaf, "insertChildAt called on leaf")
	n.children = slices.Insert(n.children, i, child)
}

func (n *node[K]) removeChildAt(i int) *node[K] {
	assert(!n.leaf, "removeChildAt called on leaf")
	child := n.children[i]
	n.children = slices.Delete(n.children, i, i+1)
	return child
}

// --- Tree-level node predicates --------------------------------------------

func (t *Tree[K]) maxKeys() int {
	return 2*t.cfg.Order - 1
}

func (t *Tree[K]) minKeys() int {
	return t.cfg.Order - 1
}

func (t *Tree[K]) isFull(n *node[K]) bool {
	return len(n.keys) == t.maxKeys()
}

// canLend reports whether n may give away a key and still satisfy the
// minimum fill, i.e. it holds at least `order` keys.
func (t *Tree[K]) canLend(n *node[K]) bool {
	return len(n.keys) >= t.cfg.Order
}
