package btree

// search looks for value in the subtree rooted at n, reporting every
// comparison to the observer.
func (t *Tree[K]) search(n *node[K], value K) bool {
	for i, key := range n.keys {
		t.compareStep(key, value)
		c := t.cfg.Compare(value, key)
		if c == 0 {
			t.step(StepFound, mark(key, MarkFound), "Found %v!", value)
			return true
		}
		if c < 0 {
			if n.leaf {
				t.step(StepNotFound, nil, "%v not found in tree", value)
				return false
			}
			t.step(StepDescend, probe(key, value, MarkComparing),
				"%v is less than %v, moving to left child", value, key)
			return t.search(n.children[i], value)
		}
	}
	if n.leaf {
		t.step(StepNotFound, nil, "%v not found in tree", value)
		return false
	}
	if t.observed() {
		t.step(StepDescend, probe(n.lastKey(), value, MarkComparing),
			"%v is greater than all keys, moving to rightmost child", value)
	}
	return t.search(n.children[len(n.keys)], value)
}

// contains is a silent, exhaustive membership test. It visits every node and
// does not rely on key order. Update uses it to check for its target value
// before touching the tree.
func (t *Tree[K]) contains(n *node[K], value K) bool {
	for _, key := range n.keys {
		if t.cfg.Compare(key, value) == 0 {
			return true
		}
	}
	if n.leaf {
		return false
	}
	for _, child := range n.children {
		if t.contains(child, value) {
			return true
		}
	}
	return false
}
