package waveletgrid

import (
	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/obs"
)

type config struct {
	levelLimits []int
	solver      linalg.SparseSolver
	log         obs.Logger
}

func defaultConfig() config {
	return config{solver: linalg.DefaultSparseSolver(), log: obs.NoOp()}
}

// Option customizes NewWavelet. Option constructors validate and panic
// on programmer error (bad lengths, nil arguments); Grid operations
// never panic on caller-supplied runtime data.
type Option func(*config)

// WithLevelLimits sets per-dimension level limits applied to the
// initial Make and to every subsequent SetRefinement round. Panics on
// nil; length is validated against the grid's dimension in NewWavelet.
func WithLevelLimits(limits []int) Option {
	if limits == nil {
		panic("waveletgrid: WithLevelLimits(nil)")
	}
	return func(c *config) {
		c.levelLimits = append([]int(nil), limits...)
	}
}

// WithSparseSolver overrides the collocation-matrix solver; the default
// is linalg.DefaultSparseSolver (a gonum-LU dense fallback). Panics on
// nil.
func WithSparseSolver(s linalg.SparseSolver) Option {
	if s == nil {
		panic("waveletgrid: WithSparseSolver(nil)")
	}
	return func(c *config) {
		c.solver = s
	}
}

// WithLogger attaches a structured diagnostic logger. Panics on nil;
// use obs.NoOp() to explicitly disable logging (also the default).
func WithLogger(log obs.Logger) Option {
	if log == nil {
		panic("waveletgrid: WithLogger(nil)")
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
