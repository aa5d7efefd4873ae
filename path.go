package chksum

import (
	"fmt"
	"log/slog"
)

// updatePath hashes whatever name refers to: a directory is traversed, any
// other kind of entry is opened and read as a byte stream.
func (u *updater) updatePath(name string) (err error) {
	info, err := u.fsys.stat(name)
	if err != nil {
		return ioError("stat", name, err)
	}
	if info.IsDir() {
		return u.updateDirectory(name)
	}

	file, err := u.fsys.open(name)
	if err != nil {
		return ioError("open", name, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = ioError("close", name, closeErr)
		}
	}()

	if isTerminal(file) {
		return fmt.Errorf("%w: %s", ErrIsTerminal, name)
	}

	slog.Debug("Hashing file", "path", name, "size", info.Size())
	return u.updateReader(file, name)
}
