package observe

import (
	"sync"

	"github.com/npillmayer/btreeviz/btree"
)

// Recorder collects every step it observes. It is safe to read from a
// different goroutine than the one driving the tree.
type Recorder[K any] struct {
	mx    sync.Mutex
	steps []btree.Step[K]
}

// Observe is part of interface btree.StepObserver.
func (r *Recorder[K]) Observe(s btree.Step[K]) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.steps = append(r.steps, s)
}

// Steps returns a copy of the steps recorded so far.
func (r *Recorder[K]) Steps() []btree.Step[K] {
	r.mx.Lock()
	defer r.mx.Unlock()
	return append([]btree.Step[K](nil), r.steps...)
}

// Messages returns the messages of all recorded steps, i.e. the step log.
func (r *Recorder[K]) Messages() []string {
	r.mx.Lock()
	defer r.mx.Unlock()
	msgs := make([]string, len(r.steps))
	for i, s := range r.steps {
		msgs[i] = s.Message
	}
	return msgs
}

// Len returns the number of recorded steps.
func (r *Recorder[K]) Len() int {
	r.mx.Lock()
	defer r.mx.Unlock()
	return len(r.steps)
}

// Reset drops all recorded steps.
func (r *Recorder[K]) Reset() {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.steps = r.steps[:0]
}
