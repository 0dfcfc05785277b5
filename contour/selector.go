package contour

import (
	"fmt"
	"math"

	"github.com/lvlath/tsgrid/multiindex"
)

// Selector enumerates the multi-indices under a contour function, per
// spec §4.1. It is the Go analogue of TASMANIAN's TensorSelector: given
// a dimension, a contour Type, optional anisotropic weights, and
// (for ip*/qp* types) a rule exactness table, Select(depth) returns the
// downward-closed set { t in N^d : f(t) <= depth }.
type Selector struct {
	d         int
	typ       Type
	shape     Shape
	weights   []float64 // length d (linear) or, internally, always d after normalization
	curveC    []float64 // length d, curvature correction coefficients (ShapeCurved only)
	exactness ExactnessFunc
}

// NewSelector builds a Selector for dimension d and contour typ.
//
// weights may be nil or empty, in which case it defaults to isotropic
// (all 1.0); for typ.Shape == ShapeCurved an empty vector additionally
// demotes the contour to ShapeTotal with the same exactness kind as
// typ (spec §4.1: "curved with no weights behaves like level/ip*/qp*
// total"), dropping the logarithmic correction term entirely. A
// non-empty vector must have length d (linear shapes) or 2*d (curved:
// d linear weights followed by d curvature coefficients).
//
// exactness is required for ExactInterpolation/ExactQuadrature types
// (typically wired to a onedwrapper.OneDWrapper's IExact/QExact) and
// ignored otherwise.
func NewSelector(d int, typ Type, weights []float64, exactness ExactnessFunc) (*Selector, error) {
	if d <= 0 {
		return nil, fmt.Errorf("contour.NewSelector: %w", multiindex.ErrDimensionMismatch)
	}

	shape := typ.Shape
	var linear, curveC []float64

	if len(weights) == 0 {
		linear = onesOf(d)
		if shape == ShapeCurved {
			shape = ShapeTotal
			curveC = nil
		}
	} else {
		want := typ.weightVectorLen(d)
		if len(weights) != want {
			return nil, fmt.Errorf("contour.NewSelector: got %d weights, want %d: %w", len(weights), want, ErrDimensionMismatch)
		}
		linear = append([]float64(nil), weights[:d]...)
		if shape == ShapeCurved {
			curveC = append([]float64(nil), weights[d:2*d]...)
		}
		for _, w := range linear {
			if w <= 0 {
				return nil, fmt.Errorf("contour.NewSelector: %w", ErrNegativeWeight)
			}
		}
	}

	g, err := typ.resolveExactness(exactness)
	if err != nil {
		return nil, fmt.Errorf("contour.NewSelector: %w", err)
	}

	return &Selector{d: d, typ: typ, shape: shape, weights: linear, curveC: curveC, exactness: g}, nil
}

func onesOf(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// Dim returns the selector's dimension.
func (s *Selector) Dim() int { return s.d }

// Type returns the contour type the selector was built with (before any
// empty-weight curved demotion).
func (s *Selector) Type() Type { return s.typ }

// Value evaluates the contour function at multi-index t.
func (s *Selector) Value(t []int) (float64, error) {
	if len(t) != s.d {
		return 0, fmt.Errorf("contour.Value: %w", multiindex.ErrDimensionMismatch)
	}
	g := make([]float64, s.d)
	for j, tj := range t {
		gv, err := s.exactness(tj)
		if err != nil {
			return 0, fmt.Errorf("contour.Value: %w", err)
		}
		g[j] = float64(gv)
	}

	switch s.shape {
	case ShapeTotal:
		var sum float64
		for j := range g {
			sum += s.weights[j] * g[j]
		}
		return sum, nil
	case ShapeTensor:
		var max float64
		for j := range g {
			if v := s.weights[j] * g[j]; v > max {
				max = v
			}
		}
		return max, nil
	case ShapeHyperbolic:
		var sumW float64
		for _, w := range s.weights {
			sumW += w
		}
		prod := 1.0
		for j := range g {
			prod *= math.Pow(g[j]+1, s.weights[j]/sumW)
		}
		return prod - 1, nil
	case ShapeCurved:
		var sum float64
		for j := range g {
			sum += s.weights[j]*g[j] + s.curveC[j]*math.Log(1+g[j])
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("contour.Value: unhandled shape %d", s.shape)
	}
}

// Select enumerates { t in N^d : Value(t) <= depth } as a downward-closed
// MultiIndexSet.
//
// Every contour function here is non-decreasing in each component when
// weights are positive (as NewSelector enforces), so raising t[j] past
// the point where the contour already exceeds depth, with every later
// component held at its minimum (0), can only raise it further: pruning
// on that lower bound is exact, and it also guarantees the recursion
// terminates because f diverges to infinity as any component grows.
func (s *Selector) Select(depth int) (*multiindex.MultiIndexSet, error) {
	if depth < 0 {
		return nil, fmt.Errorf("contour.Select: %w", ErrNegativeDepth)
	}
	limit := float64(depth) + 1e-9

	set, err := multiindex.New(s.d)
	if err != nil {
		return nil, err
	}

	t := make([]int, s.d)
	var rec func(dim int) error
	rec = func(dim int) error {
		if dim == s.d {
			if _, err := set.Insert(append([]int(nil), t...)); err != nil {
				return err
			}
			return nil
		}
		for v := 0; ; v++ {
			t[dim] = v
			for k := dim + 1; k < s.d; k++ {
				t[k] = 0
			}
			val, err := s.Value(t)
			if err != nil {
				return err
			}
			if val > limit {
				break
			}
			if err := rec(dim + 1); err != nil {
				return err
			}
		}
		t[dim] = 0
		return nil
	}
	if err := rec(0); err != nil {
		return nil, err
	}
	return set, nil
}

// ApplyLevelLimits removes every tuple with a component exceeding the
// corresponding entry of limits (a negative entry means "unlimited" for
// that dimension), per spec §4.4's level-limit truncation.
func ApplyLevelLimits(set *multiindex.MultiIndexSet, limits []int) (*multiindex.MultiIndexSet, error) {
	if len(limits) != set.Dim() {
		return nil, fmt.Errorf("contour.ApplyLevelLimits: %w", multiindex.ErrDimensionMismatch)
	}
	return set.Filter(func(t []int) bool {
		for j, tj := range t {
			if limits[j] >= 0 && tj > limits[j] {
				return false
			}
		}
		return true
	}), nil
}
