package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the structure of a tree in Graphviz DOT format. Nodes are
// drawn as records with one field per key. If hl is non-nil, the node holding
// hl.Key is filled with a color depending on hl.Mark.
func ToDot[K cmp.Ordered](tree *Tree[K], w io.Writer, hl *Highlight[K]) error {
	return ShapeToDotFunc(tree.Shape(), w, hl, tree.cfg.Compare)
}

// ShapeToDot is ToDot for a shape snapshot of a tree ordered by cmp.Compare.
func ShapeToDot[K cmp.Ordered](shape Shape[K], w io.Writer, hl *Highlight[K]) error {
	return ShapeToDotFunc(shape, w, hl, nil)
}

// ShapeToDotFunc is ShapeToDot for a tree with a custom compare function.
// compare locates the highlighted key.
func ShapeToDotFunc[K cmp.Ordered](shape Shape[K], w io.Writer, hl *Highlight[K], compare func(a, b K) int) error {
	var nodelist, edgelist strings.Builder
	ids := 0
	var walk func(s Shape[K]) int
	walk = func(s Shape[K]) int {
		ids++
		id := ids
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", id, recordLabel(s), nodeDotStyles(s, hl, compare))
		for i, child := range s.Children {
			cid := walk(child)
			fmt.Fprintf(&edgelist, "\t\"%d\":c%d -> \"%d\";\n", id, i, cid)
		}
		return id
	}
	walk(shape)
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// recordEscaper escapes characters with a meaning in DOT record labels or
// in the quoted string holding the label.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
)

// recordLabel creates a record label "<c0>|10|<c1>|20|<c2>" for internal nodes
// (ports for child edges) and "5|15" for leaves.
func recordLabel[K cmp.Ordered](s Shape[K]) string {
	parts := make([]string, 0, 2*len(s.Keys)+1)
	for i, k := range s.Keys {
		if !s.Leaf {
			parts = append(parts, fmt.Sprintf("<c%d>", i))
		}
		parts = append(parts, recordEscaper.Replace(fmt.Sprint(k)))
	}
	if !s.Leaf {
		parts = append(parts, fmt.Sprintf("<c%d>", len(s.Keys)))
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, "|")
}

func nodeDotStyles[K cmp.Ordered](s Shape[K], hl *Highlight[K], compare func(a, b K) int) string {
	st := ",style=filled"
	if s.Leaf {
		st += ",fillcolor=\"#a3d7e4\""
	} else {
		st += ",color=black,fillcolor=white"
	}
	if hl != nil && int(hl.Mark) < len(markColors) && s.ContainsFunc(hl.Key, compare) {
		st += fmt.Sprintf(",fillcolor=\"%s\"", markColors[hl.Mark])
	}
	return st
}

// markColors maps highlight marks to fill colors.
var markColors = [...]string{"white", "#FFCC88", "#FFEE55", "#88DD88", "#FF7766", "#FF9944"}

// MarkColor returns the fill color for highlight mark m as an RGB hex string.
func MarkColor(m Mark) string {
	if int(m) < len(markColors) {
		return markColors[m]
	}
	return markColors[MarkNone]
}
