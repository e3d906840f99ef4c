package observe

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/btreeviz/btree"
)

// Broadcaster publishes steps to any number of subscribers. It is the
// observer to use when the tree runs in one goroutine and one or more
// views consume its steps in others.
//
// Publishing blocks while a subscriber's buffer is full, so a slow
// subscriber slows the engine down. A subscription whose context is done
// stops holding up publishers; use a Pacer in front of the broadcaster to
// slow the engine down on purpose.
type Broadcaster[K any] struct {
	cast *caster.Caster
}

// NewBroadcaster creates a broadcaster. When ctx is cancelled, the
// broadcaster is closed and all subscriptions end. ctx may be nil.
func NewBroadcaster[K any](ctx context.Context) *Broadcaster[K] {
	return &Broadcaster[K]{cast: caster.New(ctx)}
}

// Observe is part of interface btree.StepObserver.
func (b *Broadcaster[K]) Observe(s btree.Step[K]) {
	if !b.cast.Pub(s) {
		tracer().Debugf("step %s dropped, broadcaster closed", s.Kind)
	}
}

// Subscribe returns a channel receiving all steps published after the call.
// capacity is the buffer size of the channel. The channel is closed when
// ctx is done or the broadcaster is closed. ok is false if the broadcaster
// has already been closed.
func (b *Broadcaster[K]) Subscribe(ctx context.Context, capacity uint) (<-chan btree.Step[K], bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-b.cast.Done():
		return nil, false
	default:
	}
	raw, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	steps := make(chan btree.Step[K], capacity)
	go func() {
		for msg := range raw {
			s, isStep := msg.(btree.Step[K])
			if !isStep {
				continue
			}
			select {
			case steps <- s:
			case <-ctx.Done():
				// the caster may be blocked sending to raw; keep draining
				// until it drops the subscription
				close(steps)
				for range raw {
				}
				return
			}
		}
		close(steps)
	}()
	return steps, true
}

// Close ends all subscriptions. Steps observed afterwards are dropped.
func (b *Broadcaster[K]) Close() {
	b.cast.Close()
}

// Done returns a channel which is closed when the broadcaster is closed.
func (b *Broadcaster[K]) Done() <-chan struct{} {
	return b.cast.Done()
}
