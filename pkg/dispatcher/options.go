package dispatcher

import "log/slog"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithName sets the name attached to log records. Empty names are ignored.
func WithName(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.name = name
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.logger = log
		}
	}
}

// WithErrorPolicy sets how handler errors affect a dispatch pass.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(d *Dispatcher) {
		d.policy = p
	}
}
