package console

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/btreeviz/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // target line width in 'en's; 0 means "as wide as needed"
	Context   *uax11.Context // context for measuring string widths
}

// Printer outputs trees and steps to a console with a fixed width font.
type Printer[K cmp.Ordered] struct {
	config  Config
	palette map[btree.Mark]*color.Color
	gap     string // space between sibling nodes
	compare func(a, b K) int
}

var setupGraphemes sync.Once

// NewPrinter creates a printer for trees with keys of type K.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties. palette maps highlight marks to colors; it may be
// nil, in which case a default palette is used, or cover just a subset of
// marks.
func NewPrinter[K cmp.Ordered](config *Config, palette map[btree.Mark]*color.Color) *Printer[K] {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &Printer[K]{
		config:  *config,
		palette: palette,
		gap:     "  ",
		compare: cmp.Compare[K],
	}
	if p.config.Context == nil {
		p.config.Context = uax11.ContextFromEnvironment()
	}
	if p.palette == nil {
		p.palette = DefaultPalette()
	}
	return p
}

// SetCompare sets the compare function used to find highlighted keys. It
// should be the tree's Config.Compare; the default is cmp.Compare.
func (p *Printer[K]) SetCompare(compare func(a, b K) int) {
	if compare != nil {
		p.compare = compare
	}
}

// DefaultPalette returns the colors used for highlight marks if no palette
// is given.
func DefaultPalette() map[btree.Mark]*color.Color {
	return map[btree.Mark]*color.Color{
		btree.MarkComparing: color.New(color.FgYellow),
		btree.MarkFound:     color.New(color.FgGreen, color.Bold),
		btree.MarkPromoted:  color.New(color.FgCyan, color.Bold),
		btree.MarkNodeFull:  color.New(color.FgRed),
		btree.MarkDeleting:  color.New(color.FgMagenta),
	}
}

// Width returns the display width of s in 'en's.
func (p *Printer[K]) Width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// --- Trees -----------------------------------------------------------------

// cell is a node as it appears on a line.
type cell struct {
	text  string // with color escapes
	width int
}

// Tree outputs a shape level by level. If hl is non-nil, its key is colored
// in every node containing it.
func (p *Printer[K]) Tree(w io.Writer, shape btree.Shape[K], hl *btree.Highlight[K]) error {
	levels := shape.Levels()
	lines := make([][]cell, len(levels))
	widths := make([]int, len(levels))
	widest := p.config.LineWidth
	for i, level := range levels {
		for j, n := range level {
			c := p.node(n, hl)
			lines[i] = append(lines[i], c)
			widths[i] += c.width
			if j > 0 {
				widths[i] += len(p.gap)
			}
		}
		widest = max(widest, widths[i])
	}
	tracer().P("format", "console").Debugf("tree of depth %d, %d en wide", len(levels), widest)
	for i, line := range lines {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", (widest-widths[i])/2))
		for j, c := range line {
			if j > 0 {
				b.WriteString(p.gap)
			}
			b.WriteString(c.text)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer[K]) node(n btree.Shape[K], hl *btree.Highlight[K]) cell {
	c := p.markColor(hl)
	if c == nil || !n.ContainsFunc(hl.Key, p.compare) {
		s := bracketed(n)
		return cell{text: s, width: p.Width(s)}
	}
	keys := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		keys[i] = fmt.Sprint(k)
		if hl.Matches(k, p.compare) {
			keys[i] = c.Sprint(keys[i])
		}
	}
	return cell{
		text:  "[" + strings.Join(keys, " ") + "]",
		width: p.Width(bracketed(n)),
	}
}

func (p *Printer[K]) markColor(hl *btree.Highlight[K]) *color.Color {
	if hl == nil {
		return nil
	}
	return p.palette[hl.Mark]
}

// --- Steps -----------------------------------------------------------------

// Step outputs a single step log line. The step kind is colored with the
// color of the step's highlight mark, if any.
func (p *Printer[K]) Step(w io.Writer, s btree.Step[K]) error {
	kind := fmt.Sprintf("%-18s", s.Kind)
	if c := p.markColor(s.Highlight); c != nil {
		kind = c.Sprint(kind)
	}
	_, err := fmt.Fprintf(w, "%-7s %s %s\n", s.Op, kind, s.Message)
	return err
}

// Frame outputs a step followed by the tree shape it refers to.
func (p *Printer[K]) Frame(w io.Writer, s btree.Step[K], shape btree.Shape[K]) error {
	if err := p.Step(w, s); err != nil {
		return err
	}
	return p.Tree(w, shape, s.Highlight)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w - 2
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	config.Context = uax11.ContextFromEnvironment()
	return config
}
