package waveletgrid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/obs"
	"github.com/lvlath/tsgrid/multiindex"
)

// Grid is the wavelet collocation engine (spec §4.4). The zero value is
// not usable; construct with NewWavelet.
type Grid struct {
	mu sync.RWMutex

	id uuid.UUID // stamped into every log event, distinguishing grids in a multi-grid pipeline

	made bool // true once Make has run at least once

	numDims, numOutputs, order int
	levelLimits                []int
	wavelet                    *wavelet1D

	points *multiindex.MultiIndexSet
	needed *multiindex.MultiIndexSet
	values *linalg.DenseMatrix // points.Len() x numOutputs

	collocation  *linalg.SparseMatrix // points.Len() x points.Len(), rebuilt on every load
	coefficients *linalg.DenseMatrix  // points.Len() x numOutputs, the grid's surpluses

	solver linalg.SparseSolver
	log    obs.Logger
}

// NewWavelet constructs an empty grid of dimension numDims and output
// arity numOutputs over the given wavelet order (1 or 3); call Make to
// select tensors and populate needed points.
func NewWavelet(numDims, numOutputs, order int, opts ...Option) (*Grid, error) {
	if numDims < 0 {
		return nil, fmt.Errorf("waveletgrid.NewWavelet: %w", multiindex.ErrNegativeComponent)
	}
	if numOutputs < 0 {
		return nil, fmt.Errorf("waveletgrid.NewWavelet: %w", ErrOutputIndex)
	}
	cfg := gatherOptions(opts)
	if cfg.levelLimits != nil && len(cfg.levelLimits) != numDims {
		return nil, fmt.Errorf("waveletgrid.NewWavelet: %w", ErrLevelLimitLength)
	}
	wavelet, err := newWavelet1D(order)
	if err != nil {
		return nil, fmt.Errorf("waveletgrid.NewWavelet: %w", err)
	}

	points, _ := multiindex.New(numDims)
	needed, _ := multiindex.New(numDims)

	return &Grid{
		id:          uuid.New(),
		numDims:     numDims,
		numOutputs:  numOutputs,
		order:       order,
		levelLimits: cfg.levelLimits,
		wavelet:     wavelet,
		points:      points,
		needed:      needed,
		solver:      cfg.solver,
		log:         cfg.log,
	}, nil
}

// ID returns the grid's unique instance identifier, stamped into every
// diagnostic log event.
func (g *Grid) ID() uuid.UUID { return g.id }

// Dim returns the grid's dimension.
func (g *Grid) Dim() int { return g.numDims }

// NumOutputs returns the grid's output arity.
func (g *Grid) NumOutputs() int { return g.numOutputs }

// Order returns the grid's wavelet order (1 or 3).
func (g *Grid) Order() int { return g.order }

// SetSparseSolver overrides the solver used to assemble coefficients
// and weights. Panics on nil.
func (g *Grid) SetSparseSolver(s linalg.SparseSolver) {
	if s == nil {
		panic("waveletgrid: SetSparseSolver(nil)")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.solver = s
}
