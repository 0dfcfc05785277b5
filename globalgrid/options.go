package globalgrid

import (
	"github.com/lvlath/tsgrid/internal/obs"
	"github.com/lvlath/tsgrid/onedwrapper"
)

// Default option values, named per the teacher's Default* convention.
const (
	DefaultAlpha = 0.0
	DefaultBeta  = 0.0
)

type config struct {
	alpha, beta  float64
	custom       *onedwrapper.CustomTabulated
	levelLimits  []int
	log          obs.Logger
}

func defaultConfig() config {
	return config{alpha: DefaultAlpha, beta: DefaultBeta, log: obs.NoOp()}
}

// Option customizes NewGlobal. Option constructors validate and panic
// on programmer error (bad lengths, nil arguments); Grid operations
// never panic on caller-supplied runtime data.
type Option func(*config)

// WithAlphaBeta sets the rule parameters alpha/beta carried through to
// persistence (spec §6 header); no built-in rule interprets them.
func WithAlphaBeta(alpha, beta float64) Option {
	return func(c *config) {
		c.alpha, c.beta = alpha, beta
	}
}

// WithCustomTable supplies the CustomTabulated rule table; required
// when the grid's rule is onedwrapper.RuleCustomTabulated. Panics on
// nil.
func WithCustomTable(t *onedwrapper.CustomTabulated) Option {
	if t == nil {
		panic("globalgrid: WithCustomTable(nil)")
	}
	return func(c *config) {
		c.custom = t
	}
}

// WithLevelLimits sets per-dimension level limits applied to every
// tensor selection (initial Make and every subsequent refinement).
// Panics on nil; length is validated against the grid's dimension in
// NewGlobal.
func WithLevelLimits(limits []int) Option {
	if limits == nil {
		panic("globalgrid: WithLevelLimits(nil)")
	}
	return func(c *config) {
		c.levelLimits = append([]int(nil), limits...)
	}
}

// WithLogger attaches a structured diagnostic logger. Panics on nil;
// use obs.NoOp() to explicitly disable logging (also the default).
func WithLogger(log obs.Logger) Option {
	if log == nil {
		panic("globalgrid: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = log
	}
}

func gatherOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
