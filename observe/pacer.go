package observe

import (
	"context"
	"time"

	"github.com/npillmayer/btreeviz/btree"
	"golang.org/x/time/rate"
)

// Pacer forwards steps to another observer, but not faster than one step per
// interval. While waiting, the tree operation is suspended at its
// checkpoint.
//
// Only steps of the kinds selected by Filter are paced; other steps are
// forwarded immediately. Cancelling the pacer's context stops the pacing,
// it never aborts the tree operation: all remaining steps are forwarded
// without delay.
type Pacer[K any] struct {
	ctx     context.Context
	limiter *rate.Limiter
	next    btree.StepObserver[K]
	Filter  func(btree.StepKind) bool // if nil, every step is paced
}

// NewPacer creates a pacer forwarding to next. An interval of 0 or less
// disables pacing.
func NewPacer[K any](ctx context.Context, interval time.Duration, next btree.StepObserver[K]) *Pacer[K] {
	if ctx == nil {
		ctx = context.Background()
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer[K]{
		ctx:     ctx,
		limiter: rate.NewLimiter(limit, 1),
		next:    next,
	}
}

// Observe is part of interface btree.StepObserver.
func (p *Pacer[K]) Observe(s btree.Step[K]) {
	if p.Filter == nil || p.Filter(s.Kind) {
		if err := p.limiter.Wait(p.ctx); err != nil {
			tracer().Debugf("pacing stopped: %v", err)
		}
	}
	if p.next != nil {
		p.next.Observe(s)
	}
}

// Structural selects the steps which change the shape of a tree, plus
// operation start and end. It may be used as a Pacer filter.
func Structural(kind btree.StepKind) bool {
	switch kind {
	case btree.StepStart, btree.StepEnd,
		btree.StepLeafInsert, btree.StepLeafDelete,
		btree.StepSplitEnd, btree.StepBorrowPrevEnd, btree.StepBorrowNextEnd,
		btree.StepMergeEnd, btree.StepReplaced,
		btree.StepRootGrow, btree.StepRootShrink:
		return true
	}
	return false
}
