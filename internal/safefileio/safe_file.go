package safefileio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
)

// MaxFileSize is the maximum allowed file size for SafeReadFile (1 MiB).
// Configuration files are far smaller.
const MaxFileSize = 1024 * 1024

// SafeOpenFile opens filePath with O_NOFOLLOW after resolving it to an absolute
// path, then checks that no parent directory is a symlink and that the result
// is a regular file. The path components are verified after opening so a swap
// between check and use is detected.
func SafeOpenFile(filePath string, flag int, perm os.FileMode) (*os.File, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - absPath is cleaned above and O_NOFOLLOW rejects a symlinked leaf
	file, err := os.OpenFile(absPath, flag|syscall.O_NOFOLLOW, perm)
	if err != nil {
		if isNoFollowError(err) {
			return nil, fmt.Errorf("%w: %s", ErrIsSymlink, absPath)
		}
		return nil, err
	}

	if err := verifyPathComponents(absPath); err != nil {
		closeQuietly(file)
		return nil, err
	}
	if _, err := validateFile(file, absPath); err != nil {
		closeQuietly(file)
		return nil, err
	}
	return file, nil
}

// SafeReadFile reads a whole file opened through SafeOpenFile. Files larger
// than MaxFileSize are rejected with ErrFileTooLarge.
func SafeReadFile(filePath string) ([]byte, error) {
	file, err := SafeOpenFile(filePath, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(file)

	info, err := validateFile(file, filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, filePath)
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, filePath)
	}
	return content, nil
}

// verifyPathComponents checks if any parent directory of absPath is a symlink.
func verifyPathComponents(absPath string) error {
	current := filepath.Dir(absPath)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return nil // Reached root directory
		}

		fi, err := os.Lstat(current)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", current, err)
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s", ErrIsSymlink, current)
		}

		current = parent
	}
}

// validateFile checks through the open descriptor that the file is a regular file.
func validateFile(file *os.File, filePath string) (os.FileInfo, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidFilePath, filePath)
	}

	return fileInfo, nil
}

func closeQuietly(file *os.File) {
	if err := file.Close(); err != nil {
		slog.Warn("failed to close file", slog.String("path", file.Name()), slog.Any("error", err))
	}
}
