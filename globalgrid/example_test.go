// Package globalgrid_test demonstrates constructing a Smolyak sparse
// grid, loading function values, and evaluating the resulting
// interpolant, runnable via "go test -run Example".
package globalgrid_test

import (
	"fmt"
	"math"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/globalgrid"
	"github.com/lvlath/tsgrid/onedwrapper"
)

// ExampleGrid demonstrates building a level-4 Clenshaw-Curtis sparse
// grid over [-1,1]^2, loading a smooth test function, and interpolating
// it away from any grid point.
func ExampleGrid() {
	// 1) Construct a 2-D, single-output grid over the Clenshaw-Curtis
	//    family (nested, so refinement can reuse loaded points).
	g, err := globalgrid.NewGlobal(2, 1, onedwrapper.RuleClenshawCurtis)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Select the initial tensor set at total-degree level 4.
	if err := g.Make(4, contour.TypeLevel, nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Evaluate the target function at every point the grid needs.
	pts, err := g.GetNeededPoints()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	values := make([][]float64, len(pts))
	for i, p := range pts {
		values[i] = []float64{math.Exp(p[0]) * math.Cos(p[1])}
	}

	// 4) Attach the values, completing construction.
	if err := g.LoadNeededPoints(values); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 5) Interpolate away from a grid node.
	y, err := g.Evaluate([]float64{0.3, -0.4}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	exact := math.Exp(0.3) * math.Cos(-0.4)
	fmt.Println("close to exact:", math.Abs(y-exact) < 1e-3)
	// Output: close to exact: true
}
