package surplus

import "errors"

var (
	// ErrNoActiveTensors is returned when the view has no active
	// tensors to build a polynomial space from.
	ErrNoActiveTensors = errors.New("surplus: grid view has no active tensors")

	// ErrOutputIndex is returned for an out-of-range output index.
	ErrOutputIndex = errors.New("surplus: output index out of range")
)
