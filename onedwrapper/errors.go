// Package onedwrapper: sentinel error set.
//
// ERROR PRIORITY: unknown rule -> level unavailable -> custom-rule too short.
package onedwrapper

import "errors"

var (
	// ErrUnknownRule indicates a Rule value with no registered RuleTable.
	ErrUnknownRule = errors.New("onedwrapper: unknown rule")

	// ErrLevelUnavailable indicates a level beyond what the RuleTable can
	// produce (e.g. a tabulated Gauss-Patterson set exhausted its table).
	ErrLevelUnavailable = errors.New("onedwrapper: level unavailable for rule")

	// ErrCustomRuleTooShort indicates a CustomTabulated description with
	// fewer levels than requested.
	ErrCustomRuleTooShort = errors.New("onedwrapper: custom rule table too short")

	// ErrNoInterpolationExactness indicates a rule (a RuleTable whose
	// IExact fails at a level its Nodes and Weights support) queried for
	// iExact when it has none defined, matching spec §7's "incompatible (depth, type, rule)"
	// configuration failure (e.g. ipcurved with a rule lacking
	// interpolation exactness).
	ErrNoInterpolationExactness = errors.New("onedwrapper: rule has no interpolation exactness table")
)
