package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds the CLI logger. -q only keeps errors, every -v lowers the
// level by one step starting from the configured level.
func NewLogger(w io.Writer, cfg LogConfig, verbose int, quiet bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	switch {
	case quiet:
		level = slog.LevelError
	case verbose > 0:
		level -= slog.Level(4 * verbose)
		if level < slog.LevelDebug {
			level = slog.LevelDebug
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
