package btree

import "fmt"

// Check validates the structural tree invariants:
//
//   - internal nodes have exactly one child more than keys,
//   - all leaves are at the same depth,
//   - non-root nodes hold between order-1 and 2*order-1 keys, the root at most
//     2*order-1,
//   - keys are ascending within a node and partition the child subtrees,
//   - the cached key count matches the tree contents.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariantViolated)
	}
	if !t.root.leaf && len(t.root.keys) == 0 {
		return fmt.Errorf("%w: internal root without keys", ErrInvariantViolated)
	}
	count, _, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvariantViolated, count, t.count)
	}
	return nil
}

// checkNode checks the subtree at n. lo and hi, if non-nil, are the separator
// keys bounding the subtree from the left and right.
func (t *Tree[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolated)
	}
	if len(n.keys) > t.maxKeys() {
		return 0, 0, fmt.Errorf("%w: node %v holds %d keys, max is %d",
			ErrInvariantViolated, n.keys, len(n.keys), t.maxKeys())
	}
	if !isRoot && len(n.keys) < t.minKeys() {
		return 0, 0, fmt.Errorf("%w: node %v holds %d keys, min is %d",
			ErrInvariantViolated, n.keys, len(n.keys), t.minKeys())
	}
	for i, k := range n.keys {
		if i > 0 && t.cfg.Compare(n.keys[i-1], k) > 0 {
			return 0, 0, fmt.Errorf("%w: keys %v not in ascending order", ErrInvariantViolated, n.keys)
		}
		if lo != nil && t.cfg.Compare(k, *lo) < 0 {
			return 0, 0, fmt.Errorf("%w: key %v below separator %v", ErrInvariantViolated, k, *lo)
		}
		if hi != nil && t.cfg.Compare(k, *hi) > 0 {
			return 0, 0, fmt.Errorf("%w: key %v above separator %v", ErrInvariantViolated, k, *hi)
		}
	}
	if n.leaf {
		if len(n.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf %v has children", ErrInvariantViolated, n.keys)
		}
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: node %v has %d children, want %d",
			ErrInvariantViolated, n.keys, len(n.children), len(n.keys)+1)
	}
	keys = len(n.keys)
	var childHeight int
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		keys += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights below %v", ErrInvariantViolated, n.keys)
		}
	}
	return keys, childHeight + 1, nil
}
