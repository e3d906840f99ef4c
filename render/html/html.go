package html

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/btreeviz"
	"github.com/npillmayer/btreeviz/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page is an HTML document showing a sequence of tree frames.
type Page[K cmp.Ordered] struct {
	doc     *html.Node
	body    *html.Node
	log     *html.Node // step log, created on demand
	cnt     int        // number of frames
	compare func(a, b K) int
}

// NewPage creates an empty page with a title.
func NewPage[K cmp.Ordered](title string) *Page[K] {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, "")
	doc.AppendChild(root)
	head := element(atom.Head, "")
	root.AppendChild(head)
	head.AppendChild(withText(element(atom.Title, ""), title))
	head.AppendChild(withText(element(atom.Style, ""), stylesheet()))
	body := element(atom.Body, "")
	root.AppendChild(body)
	body.AppendChild(withText(element(atom.H1, ""), title))
	return &Page[K]{doc: doc, body: body, compare: cmp.Compare[K]}
}

// SetCompare sets the compare function used to find highlighted keys. It
// should be the tree's Config.Compare.
func (p *Page[K]) SetCompare(compare func(a, b K) int) {
	if compare != nil {
		p.compare = compare
	}
}

// Frames returns the number of frames added so far.
func (p *Page[K]) Frames() int {
	return p.cnt
}

// AddFrame appends a frame showing step s together with the tree shape at
// that step.
func (p *Page[K]) AddFrame(s btree.Step[K], shape btree.Shape[K]) {
	p.cnt++
	section := element(atom.Section, "frame kind-"+s.Kind.String())
	section.Attr = append(section.Attr, html.Attribute{Key: "id", Val: fmt.Sprintf("frame-%d", p.cnt)})
	caption := fmt.Sprintf("%d. %s: %s", p.cnt, s.Op, s.Message)
	section.AppendChild(withText(element(atom.H2, ""), caption))
	section.AppendChild(treeNode(shape, s.Highlight, p.compare))
	p.body.AppendChild(section)
}

// AddTree appends a frame without a step, e.g. for the final state of a tree.
func (p *Page[K]) AddTree(caption string, shape btree.Shape[K]) {
	p.cnt++
	section := element(atom.Section, "frame")
	section.AppendChild(withText(element(atom.H2, ""), caption))
	section.AppendChild(treeNode(shape, nil, p.compare))
	p.body.AppendChild(section)
}

// LogStep appends a step message to the page's step log.
func (p *Page[K]) LogStep(s btree.Step[K]) {
	if p.log == nil {
		p.body.AppendChild(withText(element(atom.H2, ""), "Steps"))
		p.log = element(atom.Ol, "steplog")
		p.body.AppendChild(p.log)
	}
	p.log.AppendChild(withText(element(atom.Li, "kind-"+s.Kind.String()), s.Message))
}

// Render writes the page as HTML to w.
func (p *Page[K]) Render(w io.Writer) error {
	return html.Render(w, p.doc)
}

// Document returns the page's root node.
func (p *Page[K]) Document() *html.Node {
	return p.doc
}

// --- Tree boxes ------------------------------------------------------------

func treeNode[K cmp.Ordered](shape btree.Shape[K], hl *btree.Highlight[K], compare func(a, b K) int) *html.Node {
	class := "node"
	if shape.Leaf {
		class += " leaf"
	}
	box := element(atom.Div, class)
	keys := element(atom.Div, "keys")
	for _, k := range shape.Keys {
		kclass := "key"
		if hl != nil && hl.Mark != btree.MarkNone && hl.Matches(k, compare) {
			kclass += " mark-" + hl.Mark.String()
		}
		keys.AppendChild(withText(element(atom.Span, kclass), fmt.Sprint(k)))
	}
	box.AppendChild(keys)
	if len(shape.Children) > 0 {
		children := element(atom.Div, "children")
		for _, ch := range shape.Children {
			children.AppendChild(treeNode(ch, hl, compare))
		}
		box.AppendChild(children)
	}
	return box
}

func stylesheet() string {
	var b strings.Builder
	b.WriteString(`
body { font-family: Arial, sans-serif; }
.frame { margin: 1em 0; }
.node { display: inline-block; vertical-align: top; text-align: center; margin: 0 .3em; }
.keys { display: inline-block; border: 1px solid black; padding: 2px; background: white; }
.leaf > .keys { background: #a3d7e4; }
.key { display: inline-block; min-width: 1.5em; padding: 0 2px; }
.children { margin-top: .8em; }
`)
	for m := btree.MarkComparing; m <= btree.MarkDeleting; m++ {
		fmt.Fprintf(&b, ".mark-%s { background: %s; }\n", m, btree.MarkColor(m))
	}
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// InnerText returns the textual content of an HTML element and all its
// descendents, similar to
//
//	document.getElementById("myNode").innerText
//
// in JavaScript. Text of adjacent elements is separated by a single space.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", btreeviz.ErrIllegalArguments
	}
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, " "), nil
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Style || n.DataAtom == atom.Head) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// FindClass returns all elements below n carrying CSS class class.
func FindClass(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && hasClass(a.Val, class) {
					found = append(found, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func hasClass(classes, class string) bool {
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}
