package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/isseis/go-chksum/internal/terminal"
)

const schemaVersion = 1

// Options holds everything Setup needs to build the handler set.
type Options struct {
	Level  slog.Level
	LogDir string // optional; enables the JSON run log when set
	Quiet  bool
	RunID  string // generated when empty

	// Console defaults to os.Stderr.
	Console  io.Writer
	Detector terminal.InteractiveDetector
}

// Session is the result of Setup. Close must be called before exit so the
// JSON log file is flushed and closed.
type Session struct {
	RunID   string
	LogPath string
	Logger  *slog.Logger

	file *os.File
}

// Close releases the run log file, if any.
func (s *Session) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Setup builds the console and file handlers, fans them out through a
// MultiHandler and installs the result as the slog default.
//
// It is meant to be called once during startup, before any logging happens.
func Setup(opts Options) (*Session, error) {
	runID := opts.RunID
	if runID == "" {
		runID = NewRunID()
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	detector := opts.Detector
	if detector == nil {
		detector = terminal.NewStreamDetector(console, terminal.DetectorOptions{})
	}

	consoleHandler, err := NewConsoleHandler(ConsoleHandlerOptions{
		Level:    opts.Level,
		Writer:   console,
		Detector: detector,
		Quiet:    opts.Quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create console handler: %w", err)
	}

	session := &Session{RunID: runID}
	handlers := []slog.Handler{consoleHandler}

	if opts.LogDir != "" {
		f, err := OpenLogFile(opts.LogDir, runID)
		if err != nil {
			return nil, err
		}
		session.file = f
		session.LogPath = f.Name()

		host, _ := hostname()
		jsonHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}).
			WithAttrs([]slog.Attr{
				slog.String("hostname", host),
				slog.Int("pid", os.Getpid()),
				slog.Int("schema_version", schemaVersion),
				slog.String("run_id", runID),
			})
		handlers = append(handlers, jsonHandler)
	}

	session.Logger = slog.New(NewMultiHandler(handlers...))
	slog.SetDefault(session.Logger)
	return session, nil
}
