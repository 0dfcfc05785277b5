package onedwrapper

// RuleTable produces, for a given level, the node/weight/exactness data a
// OneDWrapper caches. Implementations only need to answer for the
// specific level asked; OneDWrapper is responsible for caching.
type RuleTable interface {
	// NumPoints returns the number of nodes at level.
	NumPoints(level int) (int, error)
	// Nodes returns the level's nodes, any fixed order (OneDWrapper does
	// not assume sorted order; TensorRefs indexes nodes positionally).
	Nodes(level int) ([]float64, error)
	// Weights returns quadrature weights aligned positionally with Nodes.
	Weights(level int) ([]float64, error)
	// IExact returns the interpolation exactness of level, or an error
	// if this table does not define interpolation exactness.
	IExact(level int) (int, error)
	// QExact returns the quadrature exactness of level.
	QExact(level int) (int, error)
	// Nested reports whether this table's levels nest.
	Nested() bool
	// MaxLevel returns the highest level this table can produce, or -1
	// if unbounded.
	MaxLevel() int
}

// NewRuleTable resolves a built-in RuleTable for r, or ErrUnknownRule if
// r is RuleCustomTabulated (custom tables are supplied directly, not
// resolved by rule) or unrecognized.
func NewRuleTable(r Rule) (RuleTable, error) {
	switch r {
	case RuleClenshawCurtis:
		return clenshawCurtisTable{}, nil
	case RuleChebyshev:
		return chebyshevTable{}, nil
	case RuleGaussLegendre:
		return gaussLegendreTable{}, nil
	case RuleGaussPatterson:
		return gaussPattersonTable{}, nil
	case RuleLeja:
		return newLejaTable(false), nil
	case RuleRLeja:
		return newLejaTable(true), nil
	default:
		return nil, ErrUnknownRule
	}
}
