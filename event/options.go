package event

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Bus.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithLogger sets the logger used to report recovered handler panics.
// Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
