package btreeviz

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/npillmayer/btreeviz/btree"
)

// Frame is a single picture of an animation: a step together with the shape
// of the tree at that step.
type Frame[K cmp.Ordered] struct {
	Seq   int // 1-based position within the animation
	Step  btree.Step[K]
	Shape btree.Shape[K]
}

func (f Frame[K]) String() string {
	return fmt.Sprintf("#%d %s %s", f.Seq, f.Step, f.Shape)
}

// Animator turns the steps of a tree operation into frames. It is a
// btree.StepObserver and has to be installed for the tree it animates,
// either directly or behind other observers (e.g., an observe.Pacer).
//
// Frames are handed to all registered handlers synchronously, in the
// goroutine running the tree operation, and are kept for later retrieval.
type Animator[K cmp.Ordered] struct {
	tree     *btree.Tree[K]
	mx       sync.Mutex
	frames   []Frame[K]
	handlers []func(Frame[K])
	Filter   func(btree.StepKind) bool // steps which produce frames; nil for all
}

// NewAnimator creates an animator for tree. It does not install itself as
// the tree's observer.
func NewAnimator[K cmp.Ordered](tree *btree.Tree[K]) *Animator[K] {
	return &Animator[K]{tree: tree}
}

// OnFrame registers a handler which is called for every new frame.
func (a *Animator[K]) OnFrame(h func(Frame[K])) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.handlers = append(a.handlers, h)
}

// Observe is part of interface btree.StepObserver.
func (a *Animator[K]) Observe(s btree.Step[K]) {
	if a.Filter != nil && !a.Filter(s.Kind) {
		return
	}
	a.mx.Lock()
	f := Frame[K]{
		Seq:   len(a.frames) + 1,
		Step:  s,
		Shape: a.tree.Shape(),
	}
	a.frames = append(a.frames, f)
	handlers := a.handlers
	a.mx.Unlock()
	for _, h := range handlers {
		h(f)
	}
}

// Frames returns all frames produced so far.
func (a *Animator[K]) Frames() []Frame[K] {
	a.mx.Lock()
	defer a.mx.Unlock()
	return append([]Frame[K](nil), a.frames...)
}

// Reset drops all frames produced so far. Frame numbering starts over.
func (a *Animator[K]) Reset() {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.frames = nil
}
