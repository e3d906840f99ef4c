package observe

import "github.com/npillmayer/btreeviz/btree"

// Multi returns an observer which forwards every step to all non-nil
// observers, in order.
func Multi[K any](observers ...btree.StepObserver[K]) btree.StepObserver[K] {
	var all multi[K]
	for _, o := range observers {
		if o != nil {
			all = append(all, o)
		}
	}
	return all
}

type multi[K any] []btree.StepObserver[K]

func (m multi[K]) Observe(s btree.Step[K]) {
	for _, o := range m {
		o.Observe(s)
	}
}
