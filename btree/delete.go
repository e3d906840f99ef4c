package btree

// deleteFrom removes one occurrence of value from the subtree rooted at n.
//
// Algorithm (single pass, top-down):
//  1. Find the first key >= value.
//  2. If it equals value, remove it from the leaf, or replace/merge it away if
//     n is internal (deleteFromNonLeaf).
//  3. Otherwise make sure the child to descend into holds at least `order`
//     keys (fillChild), then recurse.
//
// Step 3 happens before anybody knows whether value is present below n.
func (t *Tree[K]) deleteFrom(n *node[K], value K) bool {
	i := 0
	for i < len(n.keys) && t.cfg.Compare(n.keys[i], value) < 0 {
		t.compareStep(n.keys[i], value)
		i++
	}
	if i < len(n.keys) && t.cfg.Compare(n.keys[i], value) == 0 {
		t.step(StepFound, mark(n.keys[i], MarkFound), "Found %v at current node", value)
		if n.leaf {
			t.step(StepLeafDelete, mark(n.keys[i], MarkDeleting), "Deleting %v from leaf node", value)
			n.removeKeyAt(i)
			return true
		}
		return t.deleteFromNonLeaf(n, i)
	}
	if n.leaf {
		t.step(StepNotFound, nil, "%v not found in tree", value)
		return false
	}
	if t.observed() {
		near := min(i, len(n.keys)-1)
		t.step(StepDescend, probe(n.keys[near], value, MarkComparing),
			"Moving to child node to find %v", value)
	}
	if len(n.children[i].keys) < t.cfg.Order {
		i = t.fillChild(n, i)
	}
	return t.deleteFrom(n.children[i], value)
}

// deleteFromNonLeaf removes n.keys[index] from internal node n.
func (t *Tree[K]) deleteFromNonLeaf(n *node[K], index int) bool {
	key := n.keys[index]
	t.step(StepFound, mark(key, MarkDeleting), "Deleting %v from internal node", key)
	switch {
	case t.canLend(n.children[index]):
		pred := t.predecessor(n, index)
		n.keys[index] = pred
		t.step(StepReplaced, mark(pred, MarkFound), "Replaced %v with predecessor %v", key, pred)
		return t.deleteFrom(n.children[index], pred)
	case t.canLend(n.children[index+1]):
		succ := t.successor(n, index)
		n.keys[index] = succ
		t.step(StepReplaced, mark(succ, MarkFound), "Replaced %v with successor %v", key, succ)
		return t.deleteFrom(n.children[index+1], succ)
	default:
		t.mergeChildren(n, index)
		return t.deleteFrom(n.children[index], key)
	}
}

// predecessor returns the largest key in the subtree left of n.keys[index].
func (t *Tree[K]) predecessor(n *node[K], index int) K {
	t.step(StepPredecessorBegin, nil, "Finding predecessor")
	cur := n.children[index]
	for !cur.leaf {
		cur = cur.children[len(cur.children)-1]
		t.step(StepSpineMove, nil, "Moving to rightmost child")
	}
	pred := cur.lastKey()
	t.step(StepPredecessorEnd, mark(pred, MarkFound), "Found predecessor %v", pred)
	return pred
}

// successor returns the smallest key in the subtree right of n.keys[index].
func (t *Tree[K]) successor(n *node[K], index int) K {
	t.step(StepSuccessorBegin, nil, "Finding successor")
	cur := n.children[index+1]
	for !cur.leaf {
		cur = cur.children[0]
		t.step(StepSpineMove, nil, "Moving to leftmost child")
	}
	succ := cur.firstKey()
	t.step(StepSuccessorEnd, mark(succ, MarkFound), "Found successor %v", succ)
	return succ
}

// fillChild brings n.children[index] up to at least `order` keys. It tries,
// in this order, to borrow from the left sibling, to borrow from the right
// sibling, and finally merges with a sibling.
//
// It returns the index of the child now holding the subtree formerly at
// index. This differs from index only if the last child had to be merged into
// its left sibling.
func (t *Tree[K]) fillChild(n *node[K], index int) int {
	t.step(StepFill, nil, "Ensuring child at index %d has enough keys", index)
	switch {
	case index > 0 && t.canLend(n.children[index-1]):
		t.borrowFromPrev(n, index)
	case index < len(n.keys) && t.canLend(n.children[index+1]):
		t.borrowFromNext(n, index)
	case index == len(n.keys):
		t.mergeChildren(n, index-1)
		return index - 1
	default:
		t.mergeChildren(n, index)
	}
	return index
}

// borrowFromPrev rotates one key from the left sibling through the parent
// into n.children[index].
func (t *Tree[K]) borrowFromPrev(n *node[K], index int) {
	child, sibling := n.children[index], n.children[index-1]
	t.step(StepBorrowPrevBegin, mark(n.keys[index-1], MarkPromoted),
		"Borrowing from previous sibling for node at index %d", index)
	child.insertKeyAt(0, n.keys[index-1])
	n.keys[index-1] = sibling.removeKeyAt(len(sibling.keys) - 1)
	if !child.leaf {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
	tracer().Debugf("borrowed %v from left sibling", n.keys[index-1])
	t.step(StepBorrowPrevEnd, mark(n.keys[index-1], MarkPromoted), "Borrowed from previous sibling")
}

// borrowFromNext rotates one key from the right sibling through the parent
// into n.children[index].
func (t *Tree[K]) borrowFromNext(n *node[K], index int) {
	child, sibling := n.children[index], n.children[index+1]
	t.step(StepBorrowNextBegin, mark(n.keys[index], MarkPromoted),
		"Borrowing from next sibling for node at index %d", index)
	child.keys = append(child.keys, n.keys[index])
	n.keys[index] = sibling.removeKeyAt(0)
	if !child.leaf {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
	tracer().Debugf("borrowed %v from right sibling", n.keys[index])
	t.step(StepBorrowNextEnd, mark(n.keys[index], MarkPromoted), "Borrowed from next sibling")
}

// mergeChildren pulls n.keys[index] down and appends it, followed by all keys
// and children of n.children[index+1], to n.children[index]. The right
// sibling is dropped.
func (t *Tree[K]) mergeChildren(n *node[K], index int) {
	child, sibling := n.children[index], n.children[index+1]
	separator := n.keys[index]
	t.step(StepMergeBegin, mark(separator, MarkDeleting),
		"Merging child at index %d with its sibling", index)
	child.keys = append(child.keys, separator)
	child.keys = append(child.keys, sibling.keys...)
	if !child.leaf {
		child.children = append(child.children, sibling.children...)
	}
	n.removeKeyAt(index)
	n.removeChildAt(index + 1)
	tracer().Debugf("merged siblings around %v", separator)
	t.step(StepMergeEnd, mark(separator, MarkFound), "Merge complete")
}
