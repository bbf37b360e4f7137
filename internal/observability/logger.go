package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/fars-summary/internal/config"
)

// NewLogger builds the process logger from config. LOG_FORMAT selects a JSON
// or text handler; LOG_LEVEL falls back to info when unrecognized.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
