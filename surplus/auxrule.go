package surplus

import "github.com/lvlath/tsgrid/onedwrapper"

// auxExactness maps an auxiliary quadrature level q to the polynomial
// degree it dominates, per spec §4.2's mapping q_j -> 0 if q_j=0 else
// 1+qExact(q_j-1): the auxiliary grid at level q must be one level
// "ahead" of the degree it certifies.
func auxExactness(table onedwrapper.RuleTable, q int) (int, bool) {
	if q == 0 {
		return 0, true
	}
	e, err := table.QExact(q - 1)
	if err != nil {
		return 0, false
	}
	return 1 + e, true
}

// requiredLevel returns the smallest q such that auxExactness(table, q)
// >= bound, or ok=false if table runs out of levels before reaching it.
func requiredLevel(table onedwrapper.RuleTable, bound int) (level int, ok bool) {
	for q := 0; ; q++ {
		e, defined := auxExactness(table, q)
		if !defined {
			return 0, false
		}
		if e >= bound {
			return q, true
		}
		if table.MaxLevel() >= 0 && q > table.MaxLevel()+1 {
			return 0, false
		}
	}
}

// chooseAuxRule picks, for the given per-dimension exactness bounds, the
// auxiliary rule table (Gauss-Patterson if it can reach every bound,
// Clenshaw-Curtis otherwise per spec §4.2) and the per-dimension level
// each dimension needs under that rule.
func chooseAuxRule(bounds []int) (onedwrapper.RuleTable, []int, error) {
	gp, err := onedwrapper.NewRuleTable(onedwrapper.RuleGaussPatterson)
	if err != nil {
		return nil, nil, err
	}
	levels := make([]int, len(bounds))
	gpWorks := true
	for j, b := range bounds {
		lvl, ok := requiredLevel(gp, b)
		if !ok {
			gpWorks = false
			break
		}
		levels[j] = lvl
	}
	if gpWorks {
		return gp, levels, nil
	}

	cc, err := onedwrapper.NewRuleTable(onedwrapper.RuleClenshawCurtis)
	if err != nil {
		return nil, nil, err
	}
	for j, b := range bounds {
		lvl, ok := requiredLevel(cc, b)
		if !ok {
			// Clenshaw-Curtis has unbounded levels; this cannot happen.
			return nil, nil, err
		}
		levels[j] = lvl
	}
	return cc, levels, nil
}
