// Package log builds the [slog.Handler] used by the ligstyle command.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	// ErrInvalidArgument wraps every error returned by [NewHandler].
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel reports a level name outside [AllLevels].
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat reports a format name outside [AllFormats].
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// AllLevels lists the accepted level names, most severe first.
var AllLevels = []string{"error", "warn", "info", "debug"}

// AllFormats lists the accepted output formats.
var AllFormats = []string{"json", "logfmt", "text"}

var levels = map[string]slog.Level{
	"error":   slog.LevelError,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"info":    slog.LevelInfo,
	"debug":   slog.LevelDebug,
}

var formats = map[string]func(io.Writer, slog.Level) slog.Handler{
	"json": func(w io.Writer, lvl slog.Level) slog.Handler {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	},
	"logfmt": func(w io.Writer, lvl slog.Level) slog.Handler {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	},
	"text": newTerminalHandler,
}

// NewHandler returns a handler writing to w at the named level and format.
// Names are case-insensitive; "warning" is accepted for "warn".
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrUnknownLogLevel, level)
	}
	build, ok := formats[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrUnknownLogFormat, format)
	}
	return build(w, lvl), nil
}

// newTerminalHandler renders colored, prefixed lines for interactive use.
func newTerminalHandler(w io.Writer, lvl slog.Level) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		//nolint:gosec // G115: slog levels fit in int32.
		Level:           charmlog.Level(int32(lvl)),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "ligstyle",
	})
	logger.SetColorProfile(termenv.ColorProfile())
	return logger
}
