package onedwrapper

// gaussPattersonTable implements the nested Gauss-Kronrod-Patterson
// extension sequence: level 0 is the 1-point midpoint rule, level 1 the
// classical 3-point Gauss-Legendre rule, level 2 its 7-point Kronrod
// extension (the first Patterson extension of the 3-point rule). Only
// levels 0-2 are tabulated; higher levels return ErrLevelUnavailable so
// callers (notably surplus.Estimator, per spec §4.2) fall back to
// Clenshaw-Curtis once this table is exhausted.
//
// Nodes/Weights are returned in meta-nested index order (see
// metaOrder in nested_meta.go): level l's array is a literal prefix of
// level l+1's.
type gaussPattersonTable struct{}

func (gaussPattersonTable) Nested() bool  { return true }
func (gaussPattersonTable) MaxLevel() int { return 2 }

// gpAngleNodes/gpAngleWeights hold the classical sorted-order tables;
// gaussPattersonTable.Nodes/Weights reorder them into the meta-nested
// index convention.
var gpAngleNodes = [][]float64{
	{0},
	{-0.7745966692414834, 0, 0.7745966692414834},
	{-0.9604912687080202, -0.7745966692414834, -0.4342437493468026, 0,
		0.4342437493468026, 0.7745966692414834, 0.9604912687080202},
}

var gpAngleWeights = [][]float64{
	{2},
	{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	{0.1046562260264673, 0.2684880898683334, 0.4013974147759622, 0.4509165386584744,
		0.4013974147759622, 0.2684880898683334, 0.1046562260264673},
}

var gpQExact = []int{1, 5, 11}
var gpIExact = []int{0, 2, 6}

func gpRawNodesAtLevel(l int) []float64 {
	if l < 0 || l > 2 {
		return nil
	}
	return gpAngleNodes[l]
}

func (gaussPattersonTable) NumPoints(level int) (int, error) {
	if level < 0 || level > 2 {
		return 0, ErrLevelUnavailable
	}
	return len(gpAngleNodes[level]), nil
}

func (gaussPattersonTable) Nodes(level int) ([]float64, error) {
	if level < 0 || level > 2 {
		return nil, ErrLevelUnavailable
	}
	meta, _ := metaOrder(gpRawNodesAtLevel, level)
	return meta, nil
}

func (gaussPattersonTable) Weights(level int) ([]float64, error) {
	if level < 0 || level > 2 {
		return nil, ErrLevelUnavailable
	}
	_, rawToMeta := metaOrder(gpRawNodesAtLevel, level)
	return permuteByRawIndex(gpAngleWeights[level], rawToMeta), nil
}

func (gaussPattersonTable) IExact(level int) (int, error) {
	if level < 0 || level > 2 {
		return 0, ErrLevelUnavailable
	}
	return gpIExact[level], nil
}

func (gaussPattersonTable) QExact(level int) (int, error) {
	if level < 0 || level > 2 {
		return 0, ErrLevelUnavailable
	}
	return gpQExact[level], nil
}
