/*
Package btreeviz animates B-trees.

A B-tree is a self-balancing multiway search tree. Every node holds an
ordered list of keys, internal nodes hold one child more than keys, and all
leaves are on the same level. Insertion splits nodes which grow too big,
deletion borrows from or merges with siblings of nodes which become too small.
These operations are hard to picture from code alone, which is what this
package is about.

Package btree holds the tree engine. The engine reports every step it takes
to an observer: key comparisons, splits, merges, borrows, predecessor and
successor lookups. This package binds an `Animator` to a tree; the animator
turns each step into a `Frame`, i.e. the step together with a snapshot of the
tree taken at that very moment. Frames are handed to renderers (see packages
render/console and render/html, and btree.ToDot for Graphviz output).

Trees may be driven by a small script language (see `ParseScript`), and may
be initialized with the classic sample values or with random values
(see `Sample` and `RandomValues`):

	tree, _ := btree.New(btree.Config[int]{MaxKeys: 3})
	anim := btreeviz.NewAnimator(tree)
	anim.OnFrame(func(f btreeviz.Frame[int]) { fmt.Println(f) })
	tree.SetObserver(anim)
	cmds, _ := btreeviz.ParseScript("i10 i20 i5 d10 s99 u5:7")
	btreeviz.Run(tree, cmds)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btreeviz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btreeviz'
func tracer() tracing.Trace {
	return tracing.Select("btreeviz")
}

// Error is an error type for the btreeviz module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrSyntax is flagged for scripts which cannot be parsed.
const ErrSyntax = Error("syntax error in script")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
