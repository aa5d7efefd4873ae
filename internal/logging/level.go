package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidLogLevel is returned by ParseLevel for unrecognized names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLevel maps "debug", "info", "warn" and "error" to a slog.Level.
// Matching ignores case and surrounding space; an empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidLogLevel, s)
	}
}
