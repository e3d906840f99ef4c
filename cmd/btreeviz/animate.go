package main

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/npillmayer/btreeviz"
	"github.com/npillmayer/btreeviz/btree"
	"github.com/npillmayer/btreeviz/observe"
	"github.com/npillmayer/btreeviz/render/console"
	"github.com/npillmayer/btreeviz/render/html"
	"github.com/urfave/cli/v2"
)

// appTag identifies configuration files. Empty disables searching for them.
var appTag = "btreeviz"

var formats = []string{"console", "log", "outline", "dot", "html"}

func knownFormat(f string) bool {
	return slices.Contains(formats, f)
}

// animate runs cmds on a fresh tree and renders the animation in the
// configured format.
func animate(cctx *cli.Context, cmds []btreeviz.Command) error {
	conf := loadConfig(cctx, appTag)
	if err := setupTracing(conf); err != nil {
		return err
	}
	s, err := settingsFrom(conf)
	if err != nil {
		return err
	}
	tree, err := btree.New(s.treeConfig())
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	if s.output != "" {
		f, err := os.Create(s.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	ctx := cctx.Context
	if ctx == nil {
		ctx = context.Background()
	}
	filter := observe.Structural
	if s.allSteps {
		filter = nil
	}
	v := newView(ctx, s.format, tree, w, filter, len(cmds))
	pacer := observe.NewPacer[int](ctx, s.pace, observe.Multi[int](v.observer(), observe.Tracer[int]{}))
	pacer.Filter = filter
	tree.SetObserver(pacer)
	results := btreeviz.Run(tree, cmds)
	tree.SetObserver(nil)
	if s.check {
		if err := tree.Check(); err != nil {
			return err
		}
	}
	return v.finish(tree, cmds, results)
}

// view renders an animation in a specific output format.
type view interface {
	observer() btree.StepObserver[int]
	finish(tree *btree.Tree[int], cmds []btreeviz.Command, results []bool) error
}

func newView(ctx context.Context, format string, tree *btree.Tree[int], w io.Writer,
	filter func(btree.StepKind) bool, ops int) view {
	//
	switch format {
	case "log":
		return newLogView(ctx, w, ops)
	case "outline":
		return &outlineView{w: w}
	case "dot":
		return &dotView{w: w}
	case "html":
		return newHTMLView(tree, w, filter)
	}
	return newConsoleView(tree, w, filter)
}

// --- Console ---------------------------------------------------------------

type consoleView struct {
	anim    *btreeviz.Animator[int]
	printer *console.Printer[int]
	w       io.Writer
	err     error
}

func newConsoleView(tree *btree.Tree[int], w io.Writer, filter func(btree.StepKind) bool) *consoleView {
	v := &consoleView{
		anim:    btreeviz.NewAnimator(tree),
		printer: console.NewPrinter[int](nil, nil),
		w:       w,
	}
	v.printer.SetCompare(tree.Config().Compare)
	v.anim.Filter = filter
	v.anim.OnFrame(func(f btreeviz.Frame[int]) {
		if v.err == nil {
			v.err = v.printer.Frame(v.w, f.Step, f.Shape)
		}
	})
	return v
}

func (v *consoleView) observer() btree.StepObserver[int] {
	return v.anim
}

func (v *consoleView) finish(tree *btree.Tree[int], cmds []btreeviz.Command, results []bool) error {
	if v.err != nil {
		return v.err
	}
	return writeSummary(v.w, cmds, results)
}

// --- Step log --------------------------------------------------------------

// logView prints step messages only. Steps travel through a broadcaster and
// are printed by a separate goroutine.
type logView struct {
	bc      *observe.Broadcaster[int]
	printer *console.Printer[int]
	done    chan struct{}
}

func newLogView(ctx context.Context, w io.Writer, ops int) *logView {
	v := &logView{
		bc:      observe.NewBroadcaster[int](ctx),
		printer: console.NewPrinter[int](nil, nil),
		done:    make(chan struct{}),
	}
	steps, _ := v.bc.Subscribe(ctx, 64)
	go func() {
		defer close(v.done)
		for ends := 0; ends < ops; {
			s, ok := <-steps
			if !ok {
				return
			}
			if s.Kind == btree.StepEnd {
				ends++
			}
			v.printer.Step(w, s)
		}
	}()
	return v
}

func (v *logView) observer() btree.StepObserver[int] {
	return v.bc
}

func (v *logView) finish(*btree.Tree[int], []btreeviz.Command, []bool) error {
	<-v.done
	v.bc.Close()
	return nil
}

// --- Final tree only -------------------------------------------------------

type outlineView struct {
	w io.Writer
}

func (v *outlineView) observer() btree.StepObserver[int] {
	return nil
}

func (v *outlineView) finish(tree *btree.Tree[int], cmds []btreeviz.Command, results []bool) error {
	if err := writeSummary(v.w, cmds, results); err != nil {
		return err
	}
	_, err := io.WriteString(v.w, console.Outline(tree.Shape()))
	return err
}

type dotView struct {
	w io.Writer
}

func (v *dotView) observer() btree.StepObserver[int] {
	return nil
}

func (v *dotView) finish(tree *btree.Tree[int], _ []btreeviz.Command, _ []bool) error {
	return btree.ToDot(tree, v.w, nil)
}

// --- HTML ------------------------------------------------------------------

type htmlView struct {
	anim *btreeviz.Animator[int]
	page *html.Page[int]
	w    io.Writer
}

func newHTMLView(tree *btree.Tree[int], w io.Writer, filter func(btree.StepKind) bool) *htmlView {
	v := &htmlView{
		anim: btreeviz.NewAnimator(tree),
		page: html.NewPage[int]("B-tree animation"),
		w:    w,
	}
	v.page.SetCompare(tree.Config().Compare)
	v.anim.Filter = filter
	v.anim.OnFrame(func(f btreeviz.Frame[int]) {
		v.page.AddFrame(f.Step, f.Shape)
	})
	return v
}

func (v *htmlView) observer() btree.StepObserver[int] {
	return v.anim
}

func (v *htmlView) finish(tree *btree.Tree[int], _ []btreeviz.Command, _ []bool) error {
	v.page.AddTree("Final tree", tree.Shape())
	for _, f := range v.anim.Frames() {
		v.page.LogStep(f.Step)
	}
	return v.page.Render(v.w)
}

// ---------------------------------------------------------------------------

func writeSummary(w io.Writer, cmds []btreeviz.Command, results []bool) error {
	for i, cmd := range cmds {
		if cmd.Op == btree.OpInsert {
			continue
		}
		outcome := "ok"
		if !results[i] {
			outcome = "failed"
		}
		if _, err := io.WriteString(w, cmd.String()+": "+outcome+"\n"); err != nil {
			return err
		}
	}
	return nil
}
