package observe

import (
	"github.com/npillmayer/btreeviz/btree"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer writes every step to a trace. Operation brackets are traced at
// level Info, all other steps at level Debug.
type Tracer[K any] struct {
	Trace tracing.Trace // if nil, the 'btreeviz' tracer is used
}

// Observe is part of interface btree.StepObserver.
func (tr Tracer[K]) Observe(s btree.Step[K]) {
	t := tr.Trace
	if t == nil {
		t = tracer()
	}
	t = t.P("op", s.Op)
	switch s.Kind {
	case btree.StepStart, btree.StepEnd:
		t.Infof("%s", s.Message)
	default:
		t.Debugf("[%s] %s", s.Kind, s.Message)
	}
}
