// Package logging provides the process-wide structured logger, in the
// package-level Log-variable style used throughout the render pipeline:
// call sites reach for logging.Log.Info/Warn/Error with zap.Field
// arguments rather than threading a logger through every constructor.
package logging

import "go.uber.org/zap"

// Log is the process-wide logger. It is safe for concurrent use by render
// workers. Init replaces it; until Init is called it defaults to a
// production logger so packages that log during init (e.g. scene loading)
// never see a nil Log.
var Log *zap.Logger

func init() {
	Log, _ = zap.NewProduction()
}

// Init configures Log for development (human-readable, debug-level) or
// production (JSON, info-level) use and returns a flush func the caller
// should defer.
func Init(development bool) func() {
	var l *zap.Logger
	var err error
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		// Fall back to a no-op logger rather than leaving Log nil.
		l = zap.NewNop()
	}
	Log = l
	return func() { _ = Log.Sync() }
}
