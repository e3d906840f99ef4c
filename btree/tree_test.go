package btree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sampleValues = []int{10, 20, 5, 15, 25, 30, 35}

func makeIntTree(t *testing.T, order int, values ...int) *Tree[int] {
	t.Helper()
	tree, err := New(Config[int]{Order: order})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	for _, v := range values {
		tree.Insert(v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after setup: %v", err)
	}
	return tree
}

func leaf(keys ...int) *node[int] {
	return &node[int]{leaf: true, keys: keys}
}

func inner(keys []int, children ...*node[int]) *node[int] {
	return &node[int]{keys: keys, children: children}
}

// makeManualTree installs a hand-built root. The key count is derived from
// the nodes.
func makeManualTree(t *testing.T, order int, root *node[int]) *Tree[int] {
	t.Helper()
	tree := makeIntTree(t, order)
	tree.root = root
	tree.count = len(tree.Keys())
	if err := tree.Check(); err != nil {
		t.Fatalf("manual tree invalid: %v", err)
	}
	return tree
}

func TestNewRejectsInvalidOrder(t *testing.T) {
	for _, order := range []int{-3, 0, 1} {
		_, err := New(Config[int]{Order: order})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig for order %d, got %v", order, err)
		}
	}
}

func TestNewRejectsInvalidMaxKeys(t *testing.T) {
	for _, m := range []int{-1, 1} {
		_, err := New(Config[int]{MaxKeys: m})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig for max keys %d, got %v", m, err)
		}
	}
}

func TestNewWithMaxKeys(t *testing.T) {
	tree, err := New(Config[string]{MaxKeys: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Order() != 3 || tree.MaxKeys() != 5 {
		t.Fatalf("unexpected order=%d max=%d", tree.Order(), tree.MaxKeys())
	}
	if tree.Config().Compare == nil {
		t.Fatalf("expected default comparator in normalized config")
	}
}

func TestOrderForMaxKeys(t *testing.T) {
	want := map[int]int{1: 1, 2: 2, 3: 2, 4: 3, 5: 3, 6: 4, 7: 4}
	for m, order := range want {
		got, err := OrderForMaxKeys(m)
		if err != nil {
			t.Fatalf("unexpected error for m=%d: %v", m, err)
		}
		if got != order {
			t.Fatalf("OrderForMaxKeys(%d) = %d, want %d", m, got, order)
		}
	}
	if _, err := OrderForMaxKeys(0); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for m=0, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := makeIntTree(t, 2)
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 1 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.Search(1) {
		t.Fatalf("empty tree reports a key")
	}
	if tree.Delete(1) {
		t.Fatalf("delete on empty tree reports success")
	}
	if got := tree.Shape().String(); got != "[]" {
		t.Fatalf("unexpected empty shape %q", got)
	}
}

func TestSampleScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreeviz")
	defer teardown()
	//
	tree := makeIntTree(t, 2, sampleValues...)
	if got := tree.Shape().String(); got != "[10 20]([5] [15] [25 30 35])" {
		t.Fatalf("unexpected shape after inserts: %s", got)
	}
	if tree.Height() != 2 || tree.Len() != 7 {
		t.Fatalf("unexpected height=%d len=%d", tree.Height(), tree.Len())
	}
	if !tree.Delete(10) {
		t.Fatalf("expected 10 to be deleted")
	}
	if got := tree.Shape().String(); got != "[20]([5 15] [25 30 35])" {
		t.Fatalf("unexpected shape after delete: %s", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after delete: %v", err)
	}
	if tree.Search(10) {
		t.Fatalf("deleted key still found")
	}
}

func TestSearchMissDoesNotMutate(t *testing.T) {
	tree := makeIntTree(t, 2, sampleValues...)
	before := tree.Shape().String()
	if tree.Search(99) {
		t.Fatalf("search for 99 should fail")
	}
	for _, v := range sampleValues {
		if !tree.Search(v) {
			t.Fatalf("expected to find %d", v)
		}
	}
	if after := tree.Shape().String(); after != before {
		t.Fatalf("search mutated the tree: %s -> %s", before, after)
	}
}

func TestKeysAscending(t *testing.T) {
	tree := makeIntTree(t, 3, 9, 3, 7, 1, 8, 2, 6, 4, 5, 0)
	keys := tree.Keys()
	if !slices.Equal(keys, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("unexpected keys %v", keys)
	}
	n := 0
	for k := range tree.All() {
		if k > 4 {
			break
		}
		n++
	}
	if n != 5 {
		t.Fatalf("early break of iteration yielded %d keys", n)
	}
}

func TestDuplicates(t *testing.T) {
	tree := makeIntTree(t, 2, 5, 5, 5, 5, 5, 3, 7, 5)
	if tree.Len() != 8 {
		t.Fatalf("expected 8 keys, have %d", tree.Len())
	}
	if !slices.Equal(tree.Keys(), []int{3, 5, 5, 5, 5, 5, 5, 7}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
	for i := range 6 {
		if !tree.Delete(5) {
			t.Fatalf("delete #%d of duplicate failed", i+1)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("tree invalid after delete #%d: %v", i+1, err)
		}
	}
	if tree.Delete(5) {
		t.Fatalf("no 5 should be left")
	}
	if !slices.Equal(tree.Keys(), []int{3, 7}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
}

func TestDuplicateInsertedAfterEqualKey(t *testing.T) {
	tree := makeManualTree(t, 3, leaf(1, 4, 4, 9))
	tree.insertNonFull(tree.root, 4)
	tree.count++
	if !slices.Equal(tree.root.keys, []int{1, 4, 4, 4, 9}) {
		t.Fatalf("unexpected leaf keys %v", tree.root.keys)
	}
}

func TestUpdate(t *testing.T) {
	tree := makeIntTree(t, 2, sampleValues...)
	before := tree.Shape().String()
	if tree.Update(10, 20) {
		t.Fatalf("update onto existing value must fail")
	}
	if after := tree.Shape().String(); after != before {
		t.Fatalf("rejected update mutated the tree: %s -> %s", before, after)
	}
	if tree.Update(99, 100) {
		t.Fatalf("update of absent value must fail")
	}
	if tree.Search(100) {
		t.Fatalf("failed update inserted its target")
	}
	if !tree.Update(10, 12) {
		t.Fatalf("update 10 -> 12 failed")
	}
	if tree.Search(10) || !tree.Search(12) {
		t.Fatalf("update did not replace 10 by 12")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after update: %v", err)
	}
}

func TestUpdateEqualsDeleteThenInsert(t *testing.T) {
	a := makeIntTree(t, 2, sampleValues...)
	b := makeIntTree(t, 2, sampleValues...)
	if !a.Update(25, 1) {
		t.Fatalf("update failed")
	}
	b.Delete(25)
	b.Insert(1)
	if a.Shape().String() != b.Shape().String() {
		t.Fatalf("update differs from delete+insert: %s vs %s", a.Shape(), b.Shape())
	}
}

func TestCustomCompare(t *testing.T) {
	tree, err := New(Config[int]{
		Order:   2,
		Compare: func(a, b int) int { return b - a }, // descending
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range sampleValues {
		tree.Insert(v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
	if !slices.Equal(tree.Keys(), []int{35, 30, 25, 20, 15, 10, 5}) {
		t.Fatalf("unexpected key order %v", tree.Keys())
	}
}

func TestStringKeys(t *testing.T) {
	tree, err := New(Config[string]{Order: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"kiwi", "apple", "fig", "banana", "cherry", "date"} {
		tree.Insert(s)
	}
	if !tree.Search("fig") || tree.Search("grape") {
		t.Fatalf("unexpected search results")
	}
	if !slices.IsSorted(tree.Keys()) {
		t.Fatalf("keys not sorted: %v", tree.Keys())
	}
}
