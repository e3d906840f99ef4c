package btree

import "slices"

// insertNonFull inserts value into the subtree rooted at n. n must not be full.
//
// The insertion position is found by scanning keys from right to left up to
// the first key <= value. Duplicates therefore land right after the rightmost
// equal key.
func (t *Tree[K]) insertNonFull(n *node[K], value K) {
	assert(!t.isFull(n), "insertNonFull called on full node")
	i := len(n.keys) - 1
	for ; i >= 0; i-- {
		t.compareStep(n.keys[i], value)
		if t.cfg.Compare(n.keys[i], value) <= 0 {
			break
		}
	}
	i++ // position right of the key <= value, or 0
	if n.leaf {
		n.insertKeyAt(i, value)
		t.step(StepLeafInsert, mark(value, MarkFound), "Inserted %v into leaf node", value)
		return
	}
	if t.isFull(n.children[i]) {
		t.splitChild(n, i, n.children[i])
		if t.cfg.Compare(value, n.keys[i]) > 0 {
			i++
		}
	}
	t.step(StepDescend, nil, "Moving to child node %d to insert %v", i, value)
	t.insertNonFull(n.children[i], value)
}

// splitChild splits the full node child, which is parent.children[index].
// The median key moves up into parent at index, the upper half of child
// becomes a new sibling at parent.children[index+1]. Both halves end up with
// exactly order-1 keys.
func (t *Tree[K]) splitChild(parent *node[K], index int, child *node[K]) {
	assert(t.isFull(child), "splitChild called for non-full child")
	assert(parent.children[index] == child, "splitChild: child is not at index")
	mid := t.maxKeys() / 2
	median := child.keys[mid]
	t.step(StepSplitBegin, &Highlight[K]{Key: median, Mark: MarkNodeFull},
		"Node size exceeded maximum limit")
	t.step(StepSplitPromote, mark(median, MarkPromoted), "Moving %v to parent node", median)
	//
	sibling := &node[K]{leaf: child.leaf}
	sibling.keys = append(sibling.keys, child.keys[mid+1:]...)
	child.keys = slices.Delete(child.keys, mid, len(child.keys))
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[mid+1:]...)
		child.children = slices.Delete(child.children, mid+1, len(child.children))
	}
	parent.insertKeyAt(index, median)
	parent.insertChildAt(index+1, sibling)
	tracer().Debugf("split node, promoted %v", median)
	t.step(StepSplitEnd, mark(median, MarkPromoted),
		"Split complete: %v moved up and node split into two parts", median)
}
