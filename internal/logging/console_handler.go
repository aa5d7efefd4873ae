package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/isseis/go-chksum/internal/terminal"
)

// ErrConsoleWriterRequired is returned when no writer is given to NewConsoleHandler.
var ErrConsoleWriterRequired = errors.New("console handler: writer is required")

// ConsoleHandler writes human-oriented text records. When the detector reports
// an interactive session the timestamp is dropped so lines stay short; when
// Quiet is set nothing is written at all.
type ConsoleHandler struct {
	quiet bool
	inner slog.Handler
}

// ConsoleHandlerOptions configures a ConsoleHandler.
type ConsoleHandlerOptions struct {
	Level    slog.Leveler
	Writer   io.Writer
	Detector terminal.InteractiveDetector
	Quiet    bool
}

// NewConsoleHandler builds a ConsoleHandler from opts.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleWriterRequired
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Detector != nil && opts.Detector.IsInteractive() {
		handlerOpts.ReplaceAttr = dropTime
	}

	return &ConsoleHandler{
		quiet: opts.Quiet,
		inner: slog.NewTextHandler(opts.Writer, handlerOpts),
	}, nil
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// Enabled reports false in quiet mode, otherwise defers to the text handler.
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.quiet {
		return false
	}
	return h.inner.Enabled(ctx, level)
}

// Handle writes r unless the handler is quiet.
func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.quiet {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{quiet: h.quiet, inner: h.inner.WithAttrs(attrs)}
}

// WithGroup returns a new handler with an additional group.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{quiet: h.quiet, inner: h.inner.WithGroup(name)}
}
