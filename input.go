package chksum

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/isseis/go-chksum/internal/terminal"
)

// isTerminal is a package-level variable so tests can simulate an interactive stream.
var isTerminal = terminal.IsTerminal

// Input is something a digest can be computed over. The set of inputs is
// closed; use the constructors in this file to obtain one.
type Input interface {
	feed(u *updater) error
}

type readerInput struct {
	r io.Reader
}

// Reader returns an Input that hashes every byte read from r until end of stream.
func Reader(r io.Reader) Input {
	return readerInput{r: r}
}

func (in readerInput) feed(u *updater) error {
	if in.r == nil {
		return ErrNilInput
	}
	return u.updateReader(in.r, "")
}

type fileInput struct {
	file  *os.File
	owned bool
}

// File returns an Input that hashes the remaining content of an open file.
// The file stays open; closing it is the caller's responsibility.
func File(f *os.File) Input {
	return fileInput{file: f}
}

// OwnedFile is like File but hands the file over to the computation, which
// closes it before returning, on success and on failure.
func OwnedFile(f *os.File) Input {
	return fileInput{file: f, owned: true}
}

func (in fileInput) feed(u *updater) (err error) {
	if in.file == nil {
		return ErrNilInput
	}
	if in.owned {
		defer func() {
			if closeErr := in.file.Close(); closeErr != nil && err == nil {
				err = ioError("close", in.file.Name(), closeErr)
			}
		}()
	}
	return u.updateReader(in.file, in.file.Name())
}

type pathInput struct {
	name string
	fsys fileSystem
}

// Path returns an Input for a filesystem path. A directory is hashed
// recursively; anything else is read as a file.
func Path(name string) Input {
	return pathInput{name: name, fsys: osFileSystem{}}
}

// FS returns an Input for a slash-separated path inside fsys, with the same
// semantics as Path.
func FS(fsys fs.FS, name string) Input {
	return pathInput{name: name, fsys: ioFileSystem{fsys: fsys}}
}

func (in pathInput) feed(u *updater) error {
	if iofs, ok := in.fsys.(ioFileSystem); ok && iofs.fsys == nil {
		return ErrNilInput
	}
	u.fsys = in.fsys
	return u.updatePath(in.name)
}

type dirInput struct {
	dir *os.File
}

// Dir returns an Input for an already opened directory. Its entries are
// listed from the handle and hashed recursively. The handle stays open.
func Dir(dir *os.File) Input {
	return dirInput{dir: dir}
}

func (in dirInput) feed(u *updater) error {
	if in.dir == nil {
		return ErrNilInput
	}
	entries, err := in.dir.ReadDir(-1)
	if err != nil {
		return ioError("read directory", in.dir.Name(), err)
	}
	return u.updateEntries(in.dir.Name(), entries)
}

type entryInput struct {
	dir   string
	entry fs.DirEntry
}

// Entry returns an Input for a single entry obtained by listing dir.
// The entry is resolved through its full path, like Path.
func Entry(dir string, entry fs.DirEntry) Input {
	return entryInput{dir: dir, entry: entry}
}

func (in entryInput) feed(u *updater) error {
	if in.entry == nil {
		return ErrNilInput
	}
	return u.updatePath(filepath.Join(in.dir, in.entry.Name()))
}

type stdinInput struct {
	file *os.File
}

// Stdin returns an Input reading the process's standard input. The
// computation fails with ErrIsTerminal, without reading anything, when
// standard input is an interactive terminal.
func Stdin() Input {
	return stdinInput{}
}

// StdinFile is like Stdin but reads from f, which plays the role of standard input.
func StdinFile(f *os.File) Input {
	return stdinInput{file: f}
}

func (in stdinInput) feed(u *updater) error {
	file := in.file
	if file == nil {
		file = os.Stdin
	}
	if isTerminal(file) {
		return ErrIsTerminal
	}
	return u.updateReader(file, file.Name())
}
