package chksum

import (
	"errors"
	"io"
)

// maxConsecutiveEmptyReads bounds how many (0, nil) reads are tolerated
// before a stream is considered stuck.
const maxConsecutiveEmptyReads = 100

// updater threads one hash state through the byte-stream updater, the path
// resolver and the directory traverser. It is owned by a single computation,
// so every file of a tree is read through the same buffer.
type updater struct {
	hash Hash
	buf  []byte
	fsys fileSystem
}

func newUpdater(hash Hash, args Args) *updater {
	return &updater{
		hash: hash,
		buf:  make([]byte, args.bufferSize()),
		fsys: osFileSystem{},
	}
}

// updateReader feeds every byte of r to the hash state in source order, one
// Update call per filled buffer. name is only used for error reporting.
func (u *updater) updateReader(r io.Reader, name string) error {
	for {
		n, err := fill(r, u.buf)
		if n > 0 {
			u.hash.Update(u.buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return ioError("read", name, err)
		}
	}
}

// fill reads from r until buf is full or the stream ends, so short reads do
// not leak out as short chunks. It returns io.EOF once the stream is exhausted.
func fill(r io.Reader, buf []byte) (int, error) {
	n, empty := 0, 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxConsecutiveEmptyReads {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}
