package onedwrapper

import "fmt"

// CustomTabulated is a caller-supplied RuleTable: per-level nodes,
// weights, and exactness values, exactly mirroring what an external
// custom-rule file would provide (the file format itself is out of
// scope; spec §1 names it as an external collaborator). Levels are
// indexed 0..len(Nodes)-1.
type CustomTabulated struct {
	NodesByLevel   [][]float64
	WeightsByLevel [][]float64
	IExactByLevel  []int
	QExactByLevel  []int
	nested         bool
}

// NewCustomTabulated validates that all four tables describe the same
// number of levels and that each level's nodes/weights are equal length.
func NewCustomTabulated(nodes, weights [][]float64, iExact, qExact []int, nested bool) (*CustomTabulated, error) {
	L := len(nodes)
	if len(weights) != L || len(iExact) != L || len(qExact) != L {
		return nil, fmt.Errorf("onedwrapper.NewCustomTabulated: mismatched level counts: %w", ErrCustomRuleTooShort)
	}
	for l := range nodes {
		if len(nodes[l]) != len(weights[l]) {
			return nil, fmt.Errorf("onedwrapper.NewCustomTabulated: level %d: %w", l, ErrCustomRuleTooShort)
		}
	}
	return &CustomTabulated{NodesByLevel: nodes, WeightsByLevel: weights, IExactByLevel: iExact, QExactByLevel: qExact, nested: nested}, nil
}

func (c *CustomTabulated) Nested() bool  { return c.nested }
func (c *CustomTabulated) MaxLevel() int { return len(c.NodesByLevel) - 1 }

func (c *CustomTabulated) checkLevel(level int) error {
	if level < 0 || level > c.MaxLevel() {
		return fmt.Errorf("onedwrapper.CustomTabulated: level %d: %w", level, ErrCustomRuleTooShort)
	}
	return nil
}

func (c *CustomTabulated) NumPoints(level int) (int, error) {
	if err := c.checkLevel(level); err != nil {
		return 0, err
	}
	return len(c.NodesByLevel[level]), nil
}

func (c *CustomTabulated) Nodes(level int) ([]float64, error) {
	if err := c.checkLevel(level); err != nil {
		return nil, err
	}
	out := make([]float64, len(c.NodesByLevel[level]))
	copy(out, c.NodesByLevel[level])
	return out, nil
}

func (c *CustomTabulated) Weights(level int) ([]float64, error) {
	if err := c.checkLevel(level); err != nil {
		return nil, err
	}
	out := make([]float64, len(c.WeightsByLevel[level]))
	copy(out, c.WeightsByLevel[level])
	return out, nil
}

func (c *CustomTabulated) IExact(level int) (int, error) {
	if err := c.checkLevel(level); err != nil {
		return 0, err
	}
	return c.IExactByLevel[level], nil
}

func (c *CustomTabulated) QExact(level int) (int, error) {
	if err := c.checkLevel(level); err != nil {
		return 0, err
	}
	return c.QExactByLevel[level], nil
}
