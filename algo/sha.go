package algo

import (
	"crypto/md5"  //nolint:gosec // MD5 is offered for checksums, not for security
	"crypto/sha1" //nolint:gosec // SHA-1 is offered for checksums, not for security
	"crypto/sha256"
	"crypto/sha512"

	"github.com/isseis/go-chksum"
)

// MD5 implements the MD5 algorithm (RFC 1321).
type MD5 struct{}

// Name returns "md5".
func (MD5) Name() string { return "md5" }

// New returns a fresh MD5 state.
func (MD5) New() chksum.Hash { return newHashState(md5.New()) }

// SHA1 implements the SHA-1 algorithm (FIPS 180-4).
type SHA1 struct{}

// Name returns "sha1".
func (SHA1) Name() string { return "sha1" }

// New returns a fresh SHA-1 state.
func (SHA1) New() chksum.Hash { return newHashState(sha1.New()) }

// SHA2_224 implements SHA-224 from the SHA-2 family.
type SHA2_224 struct{}

// Name returns "sha2-224".
func (SHA2_224) Name() string { return "sha2-224" }

// New returns a fresh SHA-224 state.
func (SHA2_224) New() chksum.Hash { return newHashState(sha256.New224()) }

// SHA2_256 implements SHA-256 from the SHA-2 family.
type SHA2_256 struct{}

// Name returns "sha2-256".
func (SHA2_256) Name() string { return "sha2-256" }

// New returns a fresh SHA-256 state.
func (SHA2_256) New() chksum.Hash { return newHashState(sha256.New()) }

// SHA2_384 implements SHA-384 from the SHA-2 family.
type SHA2_384 struct{}

// Name returns "sha2-384".
func (SHA2_384) Name() string { return "sha2-384" }

// New returns a fresh SHA-384 state.
func (SHA2_384) New() chksum.Hash { return newHashState(sha512.New384()) }

// SHA2_512 implements SHA-512 from the SHA-2 family.
type SHA2_512 struct{}

// Name returns "sha2-512".
func (SHA2_512) Name() string { return "sha2-512" }

// New returns a fresh SHA-512 state.
func (SHA2_512) New() chksum.Hash { return newHashState(sha512.New()) }
