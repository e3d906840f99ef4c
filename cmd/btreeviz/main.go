/*
Command btreeviz animates operations on a B-tree.

Operations are given as a small script, e.g.

	btreeviz --max-keys 3 run i10 i20 i5 i15 d10 s99 u5:7
	btreeviz --format html -o sample.html sample
	btreeviz --format dot random --count 20 | dot -Tsvg > tree.svg

Every structural step of every operation is shown as a frame: the step's
message together with the tree as it looked at that moment. With --pace,
frames are produced no faster than the given interval.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/btreeviz"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var globalFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "max-keys",
		Aliases: []string{"m"},
		Usage:   "maximum number of keys per node",
		Value:   3,
		EnvVars: []string{"BTREEVIZ_MAX_KEYS"},
	},
	&cli.IntFlag{
		Name:  "order",
		Usage: "minimum degree of the tree; overrides --max-keys",
	},
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format: console, log, outline, dot or html",
		Value:   "console",
		EnvVars: []string{"BTREEVIZ_FORMAT"},
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file path for output (default stdout)",
	},
	&cli.DurationFlag{
		Name:    "pace",
		Usage:   "minimum interval between frames, e.g. 800ms",
		EnvVars: []string{"BTREEVIZ_PACE"},
	},
	&cli.BoolFlag{
		Name:  "all-steps",
		Usage: "show every step, including key comparisons",
	},
	&cli.BoolFlag{
		Name:  "check",
		Usage: "verify tree invariants after all operations",
	},
	&cli.StringFlag{
		Name:    "trace",
		Usage:   "trace level: Error, Info or Debug",
		Value:   "Error",
		EnvVars: []string{"BTREEVIZ_TRACE"},
	},
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(w io.Writer) *cli.App {
	app := &cli.App{
		Name:    "btreeviz",
		Usage:   "step-by-step B-tree animations",
		Version: versioninfo.Short(),
		Flags:   globalFlags,
		Writer:  w,
	}
	app.Commands = []*cli.Command{
		cmdRun,
		cmdSample,
		cmdRandom,
	}
	return app
}

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "run a script of tree operations on an empty tree",
	ArgsUsage: `<op>...  (iN insert, dN delete, sN search, uN:M update)`,
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() == 0 {
			return cli.Exit("a script is required", 127)
		}
		cmds, err := btreeviz.ParseScript(strings.Join(cctx.Args().Slice(), " "))
		if err != nil {
			return err
		}
		return animate(cctx, cmds)
	},
}

var cmdSample = &cli.Command{
	Name:      "sample",
	Usage:     "insert the sample values 10, 20, 5, 15, 25, 30, 35, then run an optional script",
	ArgsUsage: `[<op>...]`,
	Action: func(cctx *cli.Context) error {
		cmds, err := btreeviz.ParseScript(strings.Join(cctx.Args().Slice(), " "))
		if err != nil {
			return err
		}
		return animate(cctx, append(btreeviz.Inserts(btreeviz.Sample()), cmds...))
	},
}

var cmdRandom = &cli.Command{
	Name:      "random",
	Usage:     "insert distinct random values, then run an optional script",
	ArgsUsage: `[<op>...]`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of values",
			Value:   10,
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "values are drawn from 1…max",
			Value: btreeviz.DefaultRandomMax,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the random generator (default: random)",
		},
	},
	Action: func(cctx *cli.Context) error {
		values, err := btreeviz.RandomValues(rngFromSeed(cctx), cctx.Int("count"), cctx.Int("max"))
		if err != nil {
			return err
		}
		cmds, err := btreeviz.ParseScript(strings.Join(cctx.Args().Slice(), " "))
		if err != nil {
			return err
		}
		return animate(cctx, append(btreeviz.Inserts(values), cmds...))
	},
}
