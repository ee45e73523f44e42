// Package logging builds the structured loggers used by the CLI and the
// development user service.
//
// Both binaries authenticate with an app-id, so attributes that carry one
// (or a passphrase) are masked before any handler sees them.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Redacted replaces the value of secret attributes.
const Redacted = "[redacted]"

// Config controls structured logging settings.
type Config struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
	// Component is attached to every record when set, e.g. "userdeck".
	Component string
}

// New builds a slog.Logger writing to w (stderr when nil) according to cfg.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		AddSource:   cfg.IncludeCaller,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	log := slog.New(handler)
	if cfg.Component != "" {
		log = log.With("component", cfg.Component)
	}
	return log
}

// ParseLevel maps a level name to a slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func redactSecrets(groups []string, a slog.Attr) slog.Attr {
	switch strings.ToLower(strings.ReplaceAll(a.Key, "-", "_")) {
	case "app_id", "appid", "passphrase":
		if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
			return a
		}
		return slog.String(a.Key, Redacted)
	}
	return a
}
