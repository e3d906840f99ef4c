/*
Package console draws B-trees and their step logs on a terminal.

Trees are laid out level by level, each node as a bracketed key list, every
level centered on the widest one:

	       [10 20]
	[5]  [15]  [25 30 35]

Keys referenced by a step's highlight are colored according to their mark.
Colors are switched off automatically when stdout is not a terminal (see
package fatih/color).

Widths are measured in fixed-width positions ('en's) following UAX#11, so keys
containing East Asian wide characters line up correctly. The measuring
context is taken from the user's environment unless set explicitly.

An alternative rendering is the outline, a directory-style listing of the tree
produced by `Outline`.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btreeviz'
func tracer() tracing.Trace {
	return tracing.Select("btreeviz")
}
