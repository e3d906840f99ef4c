package observe

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/btreeviz/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var sample = []int{10, 20, 5, 15, 25, 30, 35}

func newTree(t *testing.T, o btree.StepObserver[int]) *btree.Tree[int] {
	t.Helper()
	tree, err := btree.New(btree.Config[int]{Order: 2, Observer: o})
	require.NoError(t, err)
	return tree
}

func countKind(steps []btree.Step[int], kind btree.StepKind) int {
	n := 0
	for _, s := range steps {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func TestRecorder(t *testing.T) {
	rec := &Recorder[int]{}
	tree := newTree(t, rec)
	for _, v := range sample {
		tree.Insert(v)
	}
	steps := rec.Steps()
	require.Equal(t, rec.Len(), len(steps))
	require.Equal(t, len(sample), countKind(steps, btree.StepStart))
	require.Equal(t, 2, countKind(steps, btree.StepSplitBegin))
	require.Len(t, rec.Messages(), len(steps))
	require.NotEmpty(t, rec.Messages()[0])
	rec.Reset()
	require.Zero(t, rec.Len())
	require.NotEmpty(t, steps, "copy must survive reset")
}

func TestTracer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreeviz")
	defer teardown()
	//
	tree := newTree(t, Tracer[int]{})
	for _, v := range sample {
		tree.Insert(v)
	}
	require.True(t, tree.Delete(10))
}

func TestMulti(t *testing.T) {
	a, b := &Recorder[int]{}, &Recorder[int]{}
	tree := newTree(t, Multi[int](a, nil, b))
	for _, v := range sample {
		tree.Insert(v)
	}
	require.NotZero(t, a.Len())
	require.Equal(t, a.Messages(), b.Messages())
}

func TestBroadcaster(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	bc := NewBroadcaster[int](ctx)
	defer bc.Close()
	sub1, ok := bc.Subscribe(ctx, 16)
	require.True(t, ok)
	sub2, ok := bc.Subscribe(ctx, 16)
	require.True(t, ok)
	collect := func(ch <-chan btree.Step[int], out chan<- []btree.Step[int]) {
		var steps []btree.Step[int]
		ends := 0
		for s := range ch {
			steps = append(steps, s)
			if s.Kind == btree.StepEnd {
				ends++
				if ends == len(sample) {
					break
				}
			}
		}
		out <- steps
	}
	out1, out2 := make(chan []btree.Step[int], 1), make(chan []btree.Step[int], 1)
	go collect(sub1, out1)
	go collect(sub2, out2)
	rec := &Recorder[int]{}
	tree := newTree(t, Multi[int](rec, bc))
	for _, v := range sample {
		tree.Insert(v)
	}
	steps1, steps2 := <-out1, <-out2
	require.Equal(t, rec.Steps(), steps1)
	require.Equal(t, rec.Steps(), steps2)
}

func TestBroadcasterClosed(t *testing.T) {
	bc := NewBroadcaster[int](nil)
	bc.Close()
	<-bc.Done()
	_, ok := bc.Subscribe(context.Background(), 1)
	require.False(t, ok)
	tree := newTree(t, bc)
	tree.Insert(1) // must not block
	require.True(t, tree.Search(1))
}

func TestBroadcasterCancelledSubscriber(t *testing.T) {
	bc := NewBroadcaster[int](nil)
	defer bc.Close()
	ctx, cancel := context.WithCancel(context.Background())
	sub, ok := bc.Subscribe(ctx, 1) // never read until cancelled
	require.True(t, ok)
	tree := newTree(t, bc)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, v := range sample {
			tree.Insert(v)
		}
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine still blocked after subscriber was cancelled")
	}
	require.Equal(t, len(sample), tree.Len())
	closed := make(chan struct{})
	go func() {
		for range sub {
		}
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription channel not closed after cancel")
	}
}

func TestPacerSlowsDown(t *testing.T) {
	rec := &Recorder[int]{}
	pacer := NewPacer[int](context.Background(), 20*time.Millisecond, rec)
	pacer.Filter = func(k btree.StepKind) bool { return k == btree.StepStart }
	tree := newTree(t, pacer)
	start := time.Now()
	for v := range 5 {
		tree.Insert(v)
	}
	require.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	require.Equal(t, 5, countKind(rec.Steps(), btree.StepStart))
}

func TestPacerCancelDoesNotAbort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &Recorder[int]{}
	tree := newTree(t, NewPacer[int](ctx, time.Hour, rec))
	for _, v := range sample {
		tree.Insert(v)
	}
	require.Equal(t, len(sample), tree.Len())
	require.Equal(t, len(sample), countKind(rec.Steps(), btree.StepEnd))
	require.NoError(t, tree.Check())
}

func TestStructuralFilter(t *testing.T) {
	require.True(t, Structural(btree.StepSplitEnd))
	require.True(t, Structural(btree.StepMergeEnd))
	require.False(t, Structural(btree.StepCompare))
	require.False(t, Structural(btree.StepSplitBegin))
}
