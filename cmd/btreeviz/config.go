package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/npillmayer/btreeviz/btree"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/urfave/cli/v2"
)

// Configuration keys. Values are read from a NestedText file at the user's
// configuration location (e.g. ~/.config/btreeviz/btreeviz.nt) and are
// overridden by command line flags.
const (
	keyPrefix     = "btreeviz."
	keyMaxKeys    = keyPrefix + "max-keys"
	keyOrder      = keyPrefix + "order"
	keyFormat     = keyPrefix + "format"
	keyOutput     = keyPrefix + "output"
	keyPace       = keyPrefix + "pace"
	keyAllSteps   = keyPrefix + "all-steps"
	keyCheck      = keyPrefix + "check"
	keyTrace      = keyPrefix + "trace"
	keyTraceLevel = "tracelevel"
)

var configurableFlags = []string{
	"max-keys", "order", "format", "output", "pace", "all-steps", "check", "trace",
}

// settings are the effective parameters of a command.
type settings struct {
	maxKeys  int
	order    int
	format   string
	output   string
	pace     time.Duration
	allSteps bool
	check    bool
}

// loadConfig merges configuration file values and flags. Flags explicitly
// given on the command line win; flag defaults only fill gaps.
func loadConfig(cctx *cli.Context, appTag string) *koanfadapter.KConf {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	for _, name := range configurableFlags {
		key := keyPrefix + name
		if cctx.IsSet(name) || !conf.IsSet(key) {
			conf.Set(key, cctx.Value(name))
		}
	}
	conf.Set(keyTraceLevel+".root", "Error")
	conf.Set(keyTraceLevel+".btreeviz", conf.GetString(keyTrace))
	return conf
}

func settingsFrom(conf schuko.Configuration) (settings, error) {
	s := settings{
		maxKeys:  conf.GetInt(keyMaxKeys),
		order:    conf.GetInt(keyOrder),
		format:   conf.GetString(keyFormat),
		output:   conf.GetString(keyOutput),
		allSteps: conf.GetBool(keyAllSteps),
		check:    conf.GetBool(keyCheck),
	}
	if p := conf.GetString(keyPace); p != "" {
		d, err := time.ParseDuration(p)
		if err != nil {
			return s, fmt.Errorf("%w: pace %q: %v", btree.ErrInvalidConfig, p, err)
		}
		s.pace = d
	}
	if !knownFormat(s.format) {
		return s, fmt.Errorf("%w: unknown output format %q", btree.ErrInvalidConfig, s.format)
	}
	return s, nil
}

func (s settings) treeConfig() btree.Config[int] {
	return btree.Config[int]{Order: s.order, MaxKeys: s.maxKeys}
}

// setupTracing routes the 'btreeviz' tracer to the Go standard logger, with
// the trace level taken from conf.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.SetTraceSelector(trace2go.Selector())
	return trace2go.ConfigureRoot(conf, keyTraceLevel, trace2go.ReplaceTracers(true))
}

func rngFromSeed(cctx *cli.Context) *rand.Rand {
	if !cctx.IsSet("seed") {
		return nil
	}
	return rand.New(rand.NewSource(cctx.Int64("seed")))
}
