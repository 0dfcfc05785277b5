package contour

import "fmt"

// Shape is the combinatorial family of a contour function, independent
// of which exactness measure (identity, interpolation, quadrature)
// feeds it.
type Shape int

const (
	// ShapeTotal is the total-degree contour f(t) = sum_j w_j*g(t_j).
	ShapeTotal Shape = iota
	// ShapeTensor is the tensor contour f(t) = max_j w_j*g(t_j).
	ShapeTensor
	// ShapeHyperbolic is the cross/hyperbolic contour
	// f(t) = prod_j (g(t_j)+1)^(w_j/sum(w)) - 1.
	ShapeHyperbolic
	// ShapeCurved is the total-degree contour with a logarithmic
	// correction term, f(t) = sum_j w_j*g(t_j) + sum_j c_j*log(1+g(t_j)).
	ShapeCurved
)

// ExactnessKind selects which per-level exactness measure g feeds a
// contour Shape.
type ExactnessKind int

const (
	// ExactIdentity uses g(level) = level directly (the "level" family).
	ExactIdentity ExactnessKind = iota
	// ExactInterpolation uses g(level) = the rule's interpolation
	// exactness at that level (the "ip*" family).
	ExactInterpolation
	// ExactQuadrature uses g(level) = the rule's quadrature exactness at
	// that level (the "qp*" family).
	ExactQuadrature
)

// Type names one of the twelve contour functions from spec §4.1's
// contour table: the four Shapes, each under the three ExactnessKinds
// (level/tensor/hyperbolic/curved have no ip/qp analogue distinction
// for "level" — it is simply the identity-exactness ShapeTotal).
type Type struct {
	Shape     Shape
	Exactness ExactnessKind
}

var (
	TypeLevel      = Type{ShapeTotal, ExactIdentity}
	TypeTensor     = Type{ShapeTensor, ExactIdentity}
	TypeHyperbolic = Type{ShapeHyperbolic, ExactIdentity}
	TypeCurved     = Type{ShapeCurved, ExactIdentity}

	TypeIPTotal      = Type{ShapeTotal, ExactInterpolation}
	TypeIPTensor     = Type{ShapeTensor, ExactInterpolation}
	TypeIPHyperbolic = Type{ShapeHyperbolic, ExactInterpolation}
	TypeIPCurved     = Type{ShapeCurved, ExactInterpolation}

	TypeQPTotal      = Type{ShapeTotal, ExactQuadrature}
	TypeQPTensor     = Type{ShapeTensor, ExactQuadrature}
	TypeQPHyperbolic = Type{ShapeHyperbolic, ExactQuadrature}
	TypeQPCurved     = Type{ShapeCurved, ExactQuadrature}
)

var typeNames = map[Type]string{
	TypeLevel:        "level",
	TypeTensor:       "tensor",
	TypeHyperbolic:   "hyperbolic",
	TypeCurved:       "curved",
	TypeIPTotal:      "iptotal",
	TypeIPTensor:     "iptensor",
	TypeIPHyperbolic: "iphyperbolic",
	TypeIPCurved:     "ipcurved",
	TypeQPTotal:      "qptotal",
	TypeQPTensor:     "qptensor",
	TypeQPHyperbolic: "qphyperbolic",
	TypeQPCurved:     "qpcurved",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("contour.Type{%d,%d}", t.Shape, t.Exactness)
}

// ParseType maps a wire name (as used in text-format grid files, spec
// §6) to a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("contour.ParseType(%q): %w", name, ErrUnknownType)
}

// weightVectorLen returns the expected length of the anisotropic
// weight vector for t's shape: d for the linear/tensor/hyperbolic
// shapes, 2*d for curved (d linear weights followed by d curvature
// corrections).
func (t Type) weightVectorLen(d int) int {
	if t.Shape == ShapeCurved {
		return 2 * d
	}
	return d
}
