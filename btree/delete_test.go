package btree

import (
	"slices"
	"testing"
)

func TestDeleteBorrowFromPrev(t *testing.T) {
	tree := makeManualTree(t, 2, inner([]int{20}, leaf(5, 10, 15), leaf(25)))
	if !tree.Delete(25) {
		t.Fatalf("expected 25 to be deleted")
	}
	if got := tree.Shape().String(); got != "[15]([5 10] [20])" {
		t.Fatalf("unexpected shape %s", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteBorrowFromNext(t *testing.T) {
	tree := makeManualTree(t, 2, inner([]int{10}, leaf(5), leaf(15, 20, 25)))
	if !tree.Delete(5) {
		t.Fatalf("expected 5 to be deleted")
	}
	if got := tree.Shape().String(); got != "[15]([10] [20 25])" {
		t.Fatalf("unexpected shape %s", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteMergeLastChild(t *testing.T) {
	tree := makeManualTree(t, 2, inner([]int{10, 20}, leaf(5), leaf(15), leaf(25)))
	if !tree.Delete(25) {
		t.Fatalf("expected 25 to be deleted")
	}
	if got := tree.Shape().String(); got != "[10]([5] [15 20])" {
		t.Fatalf("unexpected shape %s", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteInternalUsesPredecessor(t *testing.T) {
	tree := makeManualTree(t, 2, inner([]int{10}, leaf(3, 5, 7), leaf(15)))
	if !tree.Delete(10) {
		t.Fatalf("expected 10 to be deleted")
	}
	if got := tree.Shape().String(); got != "[7]([3 5] [15])" {
		t.Fatalf("unexpected shape %s", got)
	}
}

func TestDeleteInternalUsesSuccessor(t *testing.T) {
	tree := makeManualTree(t, 2, inner([]int{10}, leaf(5), leaf(15, 20, 25)))
	if !tree.Delete(10) {
		t.Fatalf("expected 10 to be deleted")
	}
	if got := tree.Shape().String(); got != "[15]([5] [20 25])" {
		t.Fatalf("unexpected shape %s", got)
	}
}

func TestDeletePredecessorFromDeepSubtree(t *testing.T) {
	root := inner([]int{20},
		inner([]int{5, 10}, leaf(1, 2), leaf(6, 7), leaf(11, 12, 13)),
		inner([]int{30}, leaf(25, 26), leaf(35, 36)),
	)
	tree := makeManualTree(t, 2, root)
	if !tree.Delete(20) {
		t.Fatalf("expected 20 to be deleted")
	}
	if got := tree.Shape().String(); got != "[13]([5 10]([1 2] [6 7] [11 12]) [30]([25 26] [35 36]))" {
		t.Fatalf("unexpected shape %s", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteBorrowMovesChildPointers(t *testing.T) {
	root := inner([]int{20},
		inner([]int{5, 10}, leaf(1, 2), leaf(6, 7), leaf(11, 12)),
		inner([]int{30}, leaf(25, 26), leaf(35, 36)),
	)
	tree := makeManualTree(t, 2, root)
	// [30] is at minimum fill; 20 comes down, 10 goes up and [11 12] changes parent
	if !tree.Delete(36) {
		t.Fatalf("expected 36 to be deleted")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := tree.Shape().String(); got != "[10]([5]([1 2] [6 7]) [20 30]([11 12] [25 26] [35]))" {
		t.Fatalf("unexpected shape %s", got)
	}
}

func TestDeleteAbsentRebalancesButKeepsContents(t *testing.T) {
	tree := makeIntTree(t, 2, sampleValues...)
	keys := tree.Keys()
	if tree.Delete(12) {
		t.Fatalf("12 is not in the tree")
	}
	if got := tree.Shape().String(); got != "[10 25]([5] [15 20] [30 35])" {
		t.Fatalf("unexpected shape %s", got)
	}
	if !slices.Equal(tree.Keys(), keys) {
		t.Fatalf("contents changed: %v -> %v", keys, tree.Keys())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRootCollapse(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 2, 3, 4)
	if tree.Height() != 2 {
		t.Fatalf("expected height 2, have %d", tree.Height())
	}
	for _, v := range []int{1, 2, 3} {
		tree.Delete(v)
	}
	if tree.Height() != 1 || !tree.root.leaf {
		t.Fatalf("expected root to collapse into a leaf, shape %s", tree.Shape())
	}
	if !tree.Delete(4) {
		t.Fatalf("expected last key to be deleted")
	}
	if !tree.root.leaf || len(tree.root.keys) != 0 {
		t.Fatalf("expected empty leaf root, shape %s", tree.Shape())
	}
}
