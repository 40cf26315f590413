//go:build trace

package tracelog

import "go.uber.org/zap"

// Default returns a zap-backed logger. Building with -tags trace wires
// up the counters the engine otherwise discards.
func Default() Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z.Sugar()}
}

type zapLogger struct {
	z *zap.SugaredLogger
}

func (l *zapLogger) Infow(msg string, kv ...interface{})  { l.z.Infow(msg, kv...) }
func (l *zapLogger) Debugw(msg string, kv ...interface{}) { l.z.Debugw(msg, kv...) }
func (l *zapLogger) TraceValue(label string, v uint32) {
	l.z.Infow("trace", "label", label, "value", v)
}
