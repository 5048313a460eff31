package filter

import "log/slog"

type Option func(*Converter)

// WithLegacyLeafSplit is an option to split leaf paths on every dot instead of
// only the first one. `"a.b.c"` renders as `a = b = c` instead of `a = b.c`.
func WithLegacyLeafSplit() Option {
	return func(c *Converter) {
		c.legacyLeafSplit = true
	}
}

// WithCheck is an option to validate every converted condition with the
// PostgreSQL parser, see Check. Conditions that don't parse are returned as an
// InvalidSQLError.
func WithCheck() Option {
	return func(c *Converter) {
		c.check = true
	}
}

// WithLogger is an option to log conversions at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}
