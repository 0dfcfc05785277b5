// Package obs wraps github.com/rs/zerolog into the small structured-event
// surface the grid engines emit at construction/refinement milestones.
// Disabled by default; a caller opts in via WithLogger on a grid
// constructor. Never called from a per-point or per-tensor hot loop.
package obs

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the event surface globalgrid/waveletgrid depend on.
type Logger interface {
	// Event logs a named milestone with structured key/value fields.
	// fields must have an even length (key, value, key, value, ...);
	// odd-length slices are truncated by dropping the trailing key.
	Event(name string, fields ...interface{})
}

// NoOp returns a Logger that discards every event. This is the default
// used by grid constructors when no WithLogger option is given.
func NoOp() Logger { return noop{} }

type noop struct{}

func (noop) Event(string, ...interface{}) {}

// New wraps a zerolog.Logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return zerologAdapter{zl: zl}
}

type zerologAdapter struct{ zl zerolog.Logger }

func (a zerologAdapter) Event(name string, fields ...interface{}) {
	ev := a.zl.Info().Str("event", name)
	for i := 0; i+1 < len(fields); i += 2 {
		key, _ := fields[i].(string)
		if key == "" {
			continue
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(name)
}
