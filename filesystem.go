package chksum

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// fileSystem is the set of primitives the path resolver and the directory
// traverser consume. listDir must return the entries of a directory in
// whatever order the backing store produces them; callers sort.
type fileSystem interface {
	stat(name string) (fs.FileInfo, error)
	listDir(name string) ([]fs.DirEntry, error)
	open(name string) (fs.File, error)
	join(dir, name string) string
}

// osFileSystem implements fileSystem using the local disk.
type osFileSystem struct{}

func (osFileSystem) stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) listDir(name string) (entries []fs.DirEntry, err error) {
	// #nosec G304 - the caller asked for this directory to be hashed
	dir, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := dir.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// os.ReadDir would sort by name already; read from the handle to stay
	// independent of that detail.
	return dir.ReadDir(-1)
}

func (osFileSystem) open(name string) (fs.File, error) {
	// #nosec G304 - the caller asked for this file to be hashed
	return os.Open(name)
}

func (osFileSystem) join(dir, name string) string {
	return filepath.Join(dir, name)
}

// ioFileSystem adapts an io/fs filesystem. Names are slash-separated and
// relative to the root of fsys.
type ioFileSystem struct {
	fsys fs.FS
}

func (f ioFileSystem) stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.fsys, name)
}

func (f ioFileSystem) listDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(f.fsys, name)
}

func (f ioFileSystem) open(name string) (fs.File, error) {
	return f.fsys.Open(name)
}

func (ioFileSystem) join(dir, name string) string {
	return path.Join(dir, name)
}
