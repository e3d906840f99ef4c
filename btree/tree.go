package btree

import (
	"cmp"
	"iter"
)

// Tree is an order-parameterized B-tree holding keys of type K.
//
// The zero value is not usable; create trees with New.
type Tree[K cmp.Ordered] struct {
	cfg   Config[K]
	root  *node[K]
	count int
	op    Op // operation in flight, reported with each step
}

// New creates an empty tree with validated configuration. The root of an empty
// tree is an empty leaf.
func New[K cmp.Ordered](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	tracer().Debugf("new B-tree of order %d (max %d keys per node)", cfg.Order, 2*cfg.Order-1)
	return &Tree[K]{
		cfg:  cfg,
		root: newLeaf[K](),
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// SetObserver replaces the step observer. nil removes it.
func (t *Tree[K]) SetObserver(o StepObserver[K]) {
	t.cfg.Observer = o
}

// Order returns the minimum degree of the tree.
func (t *Tree[K]) Order() int {
	return t.cfg.Order
}

// MaxKeys returns the maximum number of keys a node may hold.
func (t *Tree[K]) MaxKeys() int {
	return t.maxKeys()
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of node levels. A tree consisting of a single
// (possibly empty) leaf root has height 1.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

// Insert adds value to the tree. Duplicates are accepted.
//
// A full root is split before descending, which is the only way for the tree
// to grow in height.
func (t *Tree[K]) Insert(value K) {
	t.begin(OpInsert, "Inserting %v", value)
	t.insert(value)
	t.end("Inserted %v", value)
}

func (t *Tree[K]) insert(value K) {
	if t.isFull(t.root) {
		old := t.root
		t.root = newInternal(old)
		tracer().Debugf("root is full, growing tree to height %d", t.Height())
		t.step(StepRootGrow, nil, "Root node is full, creating a new root")
		t.splitChild(t.root, 0, old)
	}
	t.insertNonFull(t.root, value)
	t.count++
}

// Delete removes one occurrence of value and reports whether it was present.
//
// Nodes along the search path are rebalanced before the search is able to
// tell whether value is present at all. Deleting an absent value may
// therefore change the shape of the tree, but never its contents.
func (t *Tree[K]) Delete(value K) bool {
	t.begin(OpDelete, "Starting deletion of %v", value)
	found := t.delete(value)
	if found {
		t.end("Deleted %v", value)
	} else {
		t.end("%v not found in tree", value)
	}
	return found
}

func (t *Tree[K]) delete(value K) bool {
	found := t.deleteFrom(t.root, value)
	if len(t.root.keys) == 0 && !t.root.leaf {
		assert(len(t.root.children) == 1, "empty internal root must have exactly one child")
		t.root = t.root.children[0]
		tracer().Debugf("root collapsed, tree height now %d", t.Height())
		t.step(StepRootShrink, nil, "Root node is empty, its only child becomes the new root")
	}
	if found {
		t.count--
	}
	return found
}

// Search reports whether value is present in the tree.
func (t *Tree[K]) Search(value K) bool {
	t.begin(OpSearch, "Starting search for %v", value)
	found := t.search(t.root, value)
	t.end("Search for %v finished", value)
	return found
}

// Update replaces oldValue by newValue. It returns false, leaving the tree
// untouched, if newValue is already present. It returns false as well if
// oldValue is absent. Otherwise Update is Delete(oldValue) followed by
// Insert(newValue).
func (t *Tree[K]) Update(oldValue, newValue K) bool {
	t.begin(OpUpdate, "Starting update: changing %v to %v", oldValue, newValue)
	if t.contains(t.root, newValue) {
		t.step(StepExists, nil, "Cannot update: %v already exists in the tree", newValue)
		t.end("Update of %v rejected", oldValue)
		return false
	}
	if !t.delete(oldValue) {
		t.end("Update failed: %v not found in the tree", oldValue)
		return false
	}
	t.insert(newValue)
	t.end("Successfully updated %v to %v", oldValue, newValue)
	return true
}

// All returns an iterator over all keys in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t == nil {
			return
		}
		t.walk(t.root, yield)
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

func (t *Tree[K]) walk(n *node[K], yield func(K) bool) bool {
	if n.leaf {
		for _, k := range n.keys {
			if !yield(k) {
				return false
			}
		}
		return true
	}
	for i, k := range n.keys {
		if !t.walk(n.children[i], yield) || !yield(k) {
			return false
		}
	}
	return t.walk(n.children[len(n.keys)], yield)
}

// --- Operation brackets ----------------------------------------------------

func (t *Tree[K]) begin(op Op, format string, args ...any) {
	t.op = op
	t.step(StepStart, nil, format, args...)
}

func (t *Tree[K]) end(format string, args ...any) {
	t.step(StepEnd, nil, format, args...)
	t.op = OpNone
}
