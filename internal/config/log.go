package config

import (
	"log/slog"
	"os"
)

// SetupLog configures a global slog logger whose level follows LOG_LEVEL changes.
func SetupLog(cfg *Config) {
	var lv slog.LevelVar
	lv.Set(cfg.GetLogLevel())
	cfg.OnLogLevelChange(func(level slog.Level) { lv.Set(level) })
	opts := &slog.HandlerOptions{Level: &lv}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.GetLogFormat() == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h).With("service", cfg.GetServiceName()))
}
