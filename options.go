package acorn

import "log/slog"

// MarkOption configures a [Definition] while it is being marked.
type MarkOption func(*Definition)

// WithName sets the explicit bean name. An empty name keeps the derived one.
func WithName(name string) MarkOption {
	return func(d *Definition) {
		d.Name = name
	}
}

// settings holds what [Option] values can change on a context.
type settings struct {
	logger *slog.Logger
}

// Option configures a context built by [NewContext].
type Option func(*settings)

// WithLogger sets the logger used while the context is built. Each
// registration is logged at debug level. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
