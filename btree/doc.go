/*
Package btree provides the B-tree engine behind btreeviz.

The tree is an order-parameterized multiway search tree in the classic
single-pass formulation (Cormen et al.): insertion splits full nodes on the way
down, deletion makes sure every node it descends into holds at least `order`
keys, borrowing from a sibling or merging with one where necessary.

Order is the minimum degree t of the tree. Every node except the root holds
between t-1 and 2t-1 keys; internal nodes have one child more than keys.
Duplicate keys are permitted and are kept adjacent to each other.

The engine is meant to be watched. Clients may install a `StepObserver` which
is called synchronously at well-defined checkpoints: operation start and end,
every key comparison during descent, splits, merges, borrows and
predecessor/successor lookups. Observers may block for as long as they like
(e.g., to pace an animation), but they never take part in any decision:
a tree observed by a slow observer ends up in exactly the same shape as a tree
without an observer.

The tree is not safe for concurrent use. Clients have to serialize access.

Status:
  - insert, delete, search, update with full rebalancing,
  - observer checkpoints with highlight hints,
  - structural invariant checker (`Check`),
  - immutable shape snapshots (`Shape`) for renderers,
  - Graphviz DOT export (`ToDot`).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'btreeviz'
func tracer() tracing.Trace {
	return tracing.Select("btreeviz")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
