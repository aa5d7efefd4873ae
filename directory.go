package chksum

import (
	"io/fs"
	"log/slog"
	"slices"
	"strings"
)

// updateDirectory lists name and folds its entries into the hash state.
func (u *updater) updateDirectory(name string) error {
	entries, err := u.fsys.listDir(name)
	if err != nil {
		return ioError("read directory", name, err)
	}
	return u.updateEntries(name, entries)
}

// updateEntries folds the entries of dir into the hash state in byte-wise
// order of their full paths, recursing through updatePath for each one.
//
// Only file contents are hashed. Names, separators and the tree shape do not
// contribute, so a directory holding one file hashes like that file's bytes
// and a tree of empty files hashes like empty input.
func (u *updater) updateEntries(dir string, entries []fs.DirEntry) error {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, u.fsys.join(dir, entry.Name()))
	}
	slices.SortFunc(paths, strings.Compare)

	slog.Debug("Hashing directory", "path", dir, "entries", len(paths))
	for _, p := range paths {
		if err := u.updatePath(p); err != nil {
			return err
		}
	}
	return nil
}
