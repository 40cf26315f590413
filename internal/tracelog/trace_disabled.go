//go:build !trace

package tracelog

// Default returns the no-op logger used in production builds: the
// host's trace_log import is optional and costs nothing when absent, so
// the default build costs nothing either.
func Default() Logger { return noop{} }

type noop struct{}

func (noop) Infow(string, ...interface{})  {}
func (noop) Debugw(string, ...interface{}) {}
func (noop) TraceValue(string, uint32)     {}
