package btree

import (
	"cmp"
	"fmt"
)

// Op identifies the top-level tree operation a step belongs to.
type Op uint8

// Tree operations.
const (
	OpNone Op = iota
	OpInsert
	OpDelete
	OpSearch
	OpUpdate
)

var opNames = [...]string{"none", "insert", "delete", "search", "update"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", op)
}

// StepKind identifies a checkpoint.
type StepKind uint8

// Checkpoints fired by the engine. Before/after pairs are reported for every
// structural change, so observers may draw the tree in both states.
const (
	StepStart      StepKind = iota // operation start
	StepEnd                        // operation end
	StepCompare                    // key comparison during descent
	StepDescend                    // moving to a child node
	StepFound                      // value located in a node
	StepNotFound                   // value absent
	StepLeafInsert                 // value spliced into a leaf
	StepLeafDelete                 // value removed from a leaf
	StepSplitBegin
	StepSplitPromote
	StepSplitEnd
	StepFill // child about to be brought to minimum fill
	StepBorrowPrevBegin
	StepBorrowPrevEnd
	StepBorrowNextBegin
	StepBorrowNextEnd
	StepMergeBegin
	StepMergeEnd
	StepPredecessorBegin
	StepPredecessorEnd
	StepSuccessorBegin
	StepSuccessorEnd
	StepSpineMove // one level down while looking for predecessor/successor
	StepReplaced  // internal key replaced by predecessor/successor
	StepRootGrow
	StepRootShrink
	StepExists // update target already present
)

var stepNames = [...]string{
	"start", "end", "compare", "descend", "found", "not-found",
	"leaf-insert", "leaf-delete",
	"split-begin", "split-promote", "split-end", "fill",
	"borrow-prev-begin", "borrow-prev-end", "borrow-next-begin", "borrow-next-end",
	"merge-begin", "merge-end", "predecessor-begin", "predecessor-end",
	"successor-begin", "successor-end", "spine-move",
	"replaced", "root-grow", "root-shrink", "exists",
}

func (k StepKind) String() string {
	if int(k) < len(stepNames) {
		return stepNames[k]
	}
	return fmt.Sprintf("step(%d)", k)
}

// Mark tells a renderer how to draw a highlighted key.
type Mark uint8

// Highlight marks.
const (
	MarkNone      Mark = iota
	MarkComparing      // key is compared against the probe value
	MarkFound          // key equals the probe value
	MarkPromoted       // key moves up into the parent
	MarkNodeFull       // key is the median of a node which exceeded its limit
	MarkDeleting       // key is about to be removed
)

var markNames = [...]string{"none", "comparing", "found", "promoted", "node-full", "deleting"}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("mark(%d)", m)
}

// Highlight is an optional hint attached to a step. Key is a key currently
// stored in the tree; renderers locate the node to highlight by it.
type Highlight[K any] struct {
	Key      K
	Probe    K    // the value the operation is working with
	HasProbe bool // Probe is valid
	Mark     Mark
}

// Matches reports whether k is the highlighted key, using the tree's
// compare function.
func (h *Highlight[K]) Matches(k K, compare func(a, b K) int) bool {
	return h != nil && compare(k, h.Key) == 0
}

// Step is a single checkpoint notification.
type Step[K any] struct {
	Op        Op
	Kind      StepKind
	Message   string
	Highlight *Highlight[K] // may be nil
}

func (s Step[K]) String() string {
	return fmt.Sprintf("%s/%s: %s", s.Op, s.Kind, s.Message)
}

// StepObserver is notified at each checkpoint of a tree operation.
//
// Observe is called synchronously. Blocking inside Observe suspends the tree
// operation at the checkpoint, which is how animations pace the engine.
// Observers must not modify the tree they observe. Reading it, e.g. taking
// a Shape snapshot, is allowed.
type StepObserver[K any] interface {
	Observe(Step[K])
}

// ObserverFunc adapts a plain function to a StepObserver.
type ObserverFunc[K any] func(Step[K])

// Observe calls f(s).
func (f ObserverFunc[K]) Observe(s Step[K]) {
	f(s)
}

// --- Firing checkpoints ----------------------------------------------------

func (t *Tree[K]) observed() bool {
	return t.cfg.Observer != nil
}

// step notifies the observer, if any. Message formatting is skipped when
// nobody is listening.
func (t *Tree[K]) step(kind StepKind, hl *Highlight[K], format string, args ...any) {
	if !t.observed() {
		return
	}
	t.cfg.Observer.Observe(Step[K]{
		Op:        t.op,
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
		Highlight: hl,
	})
}

func (t *Tree[K]) compareStep(key, value K) {
	if !t.observed() {
		return
	}
	t.step(StepCompare, probe(key, value, MarkComparing), "Comparing %v with %v", value, key)
}

func mark[K cmp.Ordered](key K, m Mark) *Highlight[K] {
	return &Highlight[K]{Key: key, Mark: m}
}

func probe[K cmp.Ordered](key, value K, m Mark) *Highlight[K] {
	return &Highlight[K]{Key: key, Probe: value, HasProbe: true, Mark: m}
}
