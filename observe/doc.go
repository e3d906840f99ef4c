/*
Package observe provides step observers for btree trees.

Observers are the bridge between the B-tree engine and whoever wants to watch
it work: a recorder collecting steps for later replay, a tracer writing them
to the 'btreeviz' trace, a broadcaster publishing them to any number of
subscribers, and a pacer which slows the engine down to animation speed.

Observers may be combined with Multi. None of them influences the tree; they
may only delay it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package observe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btreeviz'
func tracer() tracing.Trace {
	return tracing.Select("btreeviz")
}
