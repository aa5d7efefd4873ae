package chksum

import (
	"fmt"

	"github.com/isseis/go-chksum/internal/common"
)

// DefaultChunkSize is the buffer capacity used when Args carries no chunk size.
const DefaultChunkSize = 8 * 1024

// MaxChunkSize caps the buffer actually allocated. Larger chunk sizes are
// valid but read in MaxChunkSize pieces; the digest does not depend on it.
const MaxChunkSize = 64 << 20

// Args holds the options of a digest computation.
// The zero value is ready to use and selects DefaultChunkSize.
type Args struct {
	chunkSize common.OptionalValue[int]
}

// NewArgs returns Args without an explicit chunk size.
func NewArgs() Args {
	return Args{}
}

// ChunkSize returns the configured chunk size and whether one was set.
func (a Args) ChunkSize() (int, bool) {
	if !a.chunkSize.IsSet() {
		return 0, false
	}
	return a.chunkSize.Value(), true
}

// Validate checks that a configured chunk size is positive.
func (a Args) Validate() error {
	if a.chunkSize.IsSet() && a.chunkSize.Value() <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, a.chunkSize.Value())
	}
	return nil
}

// Equal reports whether both Args carry the same options.
func (a Args) Equal(other Args) bool {
	return a.chunkSize.Equal(other.chunkSize)
}

// bufferSize returns the buffer capacity the byte-stream updater should use.
func (a Args) bufferSize() int {
	return min(a.chunkSize.ValueOr(DefaultChunkSize), MaxChunkSize)
}

// ArgsBuilder assembles Args fluently:
//
//	args, err := chksum.NewArgsBuilder().ChunkSize(4096).Build()
type ArgsBuilder struct {
	chunkSize common.OptionalValue[int]
}

// NewArgsBuilder returns a builder without any option set.
func NewArgsBuilder() ArgsBuilder {
	return ArgsBuilder{}
}

// ChunkSize sets the buffer capacity used while reading streams.
func (b ArgsBuilder) ChunkSize(size int) ArgsBuilder {
	b.chunkSize = common.NewOptionalValue(size)
	return b
}

// Build validates the collected options and returns the resulting Args.
func (b ArgsBuilder) Build() (Args, error) {
	args := Args{chunkSize: b.chunkSize}
	if err := args.Validate(); err != nil {
		return Args{}, err
	}
	return args, nil
}

// MustBuild is like Build but panics on invalid options.
// It is intended for package-level variables and tests with constant input.
func (b ArgsBuilder) MustBuild() Args {
	args, err := b.Build()
	if err != nil {
		panic(err)
	}
	return args
}
