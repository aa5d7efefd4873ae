package algo

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/isseis/go-chksum"
)

// SHA3_256 implements SHA3-256 (FIPS 202).
type SHA3_256 struct{}

// Name returns "sha3-256".
func (SHA3_256) Name() string { return "sha3-256" }

// New returns a fresh SHA3-256 state.
func (SHA3_256) New() chksum.Hash { return newHashState(sha3.New256()) }

// SHA3_512 implements SHA3-512 (FIPS 202).
type SHA3_512 struct{}

// Name returns "sha3-512".
func (SHA3_512) Name() string { return "sha3-512" }

// New returns a fresh SHA3-512 state.
func (SHA3_512) New() chksum.Hash { return newHashState(sha3.New512()) }

// BLAKE2b256 implements unkeyed BLAKE2b with a 32-byte digest (RFC 7693).
type BLAKE2b256 struct{}

// Name returns "blake2b-256".
func (BLAKE2b256) Name() string { return "blake2b-256" }

// New returns a fresh BLAKE2b-256 state.
func (BLAKE2b256) New() chksum.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes is rejected.
		panic(err)
	}
	return newHashState(h)
}

// BLAKE2b512 implements unkeyed BLAKE2b with a 64-byte digest (RFC 7693).
type BLAKE2b512 struct{}

// Name returns "blake2b-512".
func (BLAKE2b512) Name() string { return "blake2b-512" }

// New returns a fresh BLAKE2b-512 state.
func (BLAKE2b512) New() chksum.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	return newHashState(h)
}

// BLAKE3 implements BLAKE3 with the default 32-byte output.
type BLAKE3 struct{}

// Name returns "blake3".
func (BLAKE3) Name() string { return "blake3" }

// New returns a fresh BLAKE3 state.
func (BLAKE3) New() chksum.Hash { return newHashState(blake3.New()) }
