package pqueue

import "go.uber.org/zap"

// Option configures a BoundedPriorityQueue at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger attaches a logger that receives debug-level wait/notify events.
// Intended for observing contention; correctness never depends on it.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
