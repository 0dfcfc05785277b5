package smolyak

import (
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// BuildPoints dispatches to the nested or non-nested TensorRefs policy
// (spec §4.1's point-generation subsection).
func BuildPoints(wrapper tensorrefs.LevelSizer, allTensors, activeTensors *multiindex.MultiIndexSet, nested bool) (*multiindex.MultiIndexSet, *tensorrefs.TensorRefs, error) {
	if nested {
		return tensorrefs.BuildNested(wrapper, allTensors, activeTensors)
	}
	return tensorrefs.BuildNonNested(wrapper, activeTensors)
}
