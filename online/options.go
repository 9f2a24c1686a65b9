package online

import "go.uber.org/zap"

// Option configures optional packer dependencies.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets a logger for debug-level tracing of bin lifecycle events
// (mid-stream closes, finalize). Packers are silent without it.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
