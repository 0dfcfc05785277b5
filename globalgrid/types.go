package globalgrid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/obs"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/lvlath/tsgrid/surplus"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// Grid is the Smolyak combination engine (spec §3-§4.1). The zero value
// is not usable; construct with NewGlobal.
type Grid struct {
	mu sync.RWMutex

	id uuid.UUID // stamped into every log event, distinguishing grids in a multi-grid pipeline

	made bool // true once Make has run at least once

	numDims    int
	numOutputs int
	rule       onedwrapper.Rule
	alpha, beta float64
	custom     *onedwrapper.CustomTabulated
	wrapper    *onedwrapper.OneDWrapper
	levelLimits []int

	tensors       *multiindex.MultiIndexSet
	activeTensors *multiindex.MultiIndexSet
	activeW       []int

	points *multiindex.MultiIndexSet
	needed *multiindex.MultiIndexSet
	values *linalg.DenseMatrix // points.Len() x numOutputs

	maxLevels  []int
	tensorRefs *tensorrefs.TensorRefs

	updatedTensors, updatedActiveTensors *multiindex.MultiIndexSet
	updatedActiveW                       []int

	dynamic *dynamicData

	estimator    surplus.Estimator
	leastSquares linalg.LeastSquares
	log          obs.Logger
}

// NewGlobal constructs an empty grid of dimension numDims and output
// arity numOutputs over rule; call Make to select tensors and populate
// needed points.
func NewGlobal(numDims, numOutputs int, rule onedwrapper.Rule, opts ...Option) (*Grid, error) {
	if numDims < 0 {
		return nil, fmt.Errorf("globalgrid.NewGlobal: %w", multiindex.ErrNegativeComponent)
	}
	if numOutputs < 0 {
		return nil, fmt.Errorf("globalgrid.NewGlobal: %w", ErrOutputIndex)
	}
	cfg := gatherOptions(opts)
	if cfg.levelLimits != nil && len(cfg.levelLimits) != numDims {
		return nil, fmt.Errorf("globalgrid.NewGlobal: %w", ErrLevelLimitLength)
	}

	var table onedwrapper.RuleTable
	var err error
	if rule == onedwrapper.RuleCustomTabulated {
		if cfg.custom == nil {
			return nil, fmt.Errorf("globalgrid.NewGlobal: %w", onedwrapper.ErrCustomRuleTooShort)
		}
		table = cfg.custom
	} else {
		table, err = onedwrapper.NewRuleTable(rule)
		if err != nil {
			return nil, fmt.Errorf("globalgrid.NewGlobal: %w", err)
		}
	}

	tensors, _ := multiindex.New(numDims)
	points, _ := multiindex.New(numDims)
	needed, _ := multiindex.New(numDims)
	active, _ := multiindex.New(numDims)

	return &Grid{
		id:            uuid.New(),
		numDims:       numDims,
		numOutputs:    numOutputs,
		rule:          rule,
		alpha:         cfg.alpha,
		beta:          cfg.beta,
		custom:        cfg.custom,
		wrapper:       onedwrapper.New(table),
		levelLimits:   cfg.levelLimits,
		tensors:       tensors,
		activeTensors: active,
		points:        points,
		needed:        needed,
		maxLevels:     make([]int, numDims),
		estimator:     surplus.NewLegendre(),
		leastSquares:  linalg.DefaultLeastSquares(),
		log:           cfg.log,
	}, nil
}

// SetLeastSquares overrides the least-squares solver used by
// EstimateAnisotropicCoefficients; the default is
// linalg.DefaultLeastSquares. Panics on nil.
func (g *Grid) SetLeastSquares(ls linalg.LeastSquares) {
	if ls == nil {
		panic("globalgrid: SetLeastSquares(nil)")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leastSquares = ls
}

// ID returns the grid's unique instance identifier, stamped into every
// diagnostic log event.
func (g *Grid) ID() uuid.UUID { return g.id }

// Dim returns the grid's dimension.
func (g *Grid) Dim() int { return g.numDims }

// NumOutputs returns the grid's output arity.
func (g *Grid) NumOutputs() int { return g.numOutputs }

// Rule returns the grid's 1-D rule.
func (g *Grid) Rule() onedwrapper.Rule { return g.rule }

// AlphaBeta returns the rule parameters carried through persistence.
func (g *Grid) AlphaBeta() (float64, float64) { return g.alpha, g.beta }

// SetEstimator overrides the surplus estimator used by
// SetSurplusRefinement and EstimateAnisotropicCoefficients; the default
// is surplus.NewLegendre. Panics on nil.
func (g *Grid) SetEstimator(e surplus.Estimator) {
	if e == nil {
		panic("globalgrid: SetEstimator(nil)")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.estimator = e
}
