package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/isseis/go-chksum/internal/safefileio"
)

// ErrEmptyLogDirectory is returned when a log directory is required but empty.
var ErrEmptyLogDirectory = errors.New("log directory cannot be empty")

const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600

	timestampLayout = "20060102T150405Z"
)

// Test seams.
var (
	mkdirAll = os.MkdirAll
	hostname = os.Hostname
	now      = time.Now
)

// NewRunID returns a new, lexically time-ordered run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// LogFileName returns the per-run file name <host>_<timestamp>_<runid>.json.
func LogFileName(runID string) string {
	host, err := hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return fmt.Sprintf("%s_%s_%s.json", host, now().UTC().Format(timestampLayout), runID)
}

// OpenLogFile creates dir if needed and opens a fresh log file for runID
// inside it. The file is opened through safefileio so a planted symlink is
// never followed.
func OpenLogFile(dir, runID string) (*os.File, error) {
	if dir == "" {
		return nil, ErrEmptyLogDirectory
	}
	if err := mkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, LogFileName(runID))
	f, err := safefileio.SafeOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
