package console

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/btreeviz/btree"
	"github.com/xlab/treeprint"
)

// Outline renders a shape as an indented outline, one node per line:
//
//	[10 20]
//	├── [5]
//	├── [15]
//	└── [25 30 35]
func Outline[K cmp.Ordered](shape btree.Shape[K]) string {
	tree := treeprint.NewWithRoot(bracketed(shape))
	outlineChildren(tree, shape)
	return tree.String()
}

func outlineChildren[K cmp.Ordered](tree treeprint.Tree, shape btree.Shape[K]) {
	for _, ch := range shape.Children {
		if ch.Leaf {
			tree.AddNode(bracketed(ch))
			continue
		}
		outlineChildren(tree.AddBranch(bracketed(ch)), ch)
	}
}

func bracketed[K cmp.Ordered](shape btree.Shape[K]) string {
	keys := make([]string, len(shape.Keys))
	for i, k := range shape.Keys {
		keys[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(keys, " ") + "]"
}
