package chksum

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Digest is the immutable result of a completed hash computation.
type Digest struct {
	sum []byte
}

// NewDigest returns a Digest holding a copy of sum.
func NewDigest(sum []byte) Digest {
	return Digest{sum: bytes.Clone(sum)}
}

// Bytes returns a copy of the raw digest bytes.
func (d Digest) Bytes() []byte {
	return bytes.Clone(d.sum)
}

// Len returns the digest length in bytes.
func (d Digest) Len() int {
	return len(d.sum)
}

// HexLower returns the digest as lowercase hexadecimal text.
func (d Digest) HexLower() string {
	return hex.EncodeToString(d.sum)
}

// HexUpper returns the digest as uppercase hexadecimal text.
func (d Digest) HexUpper() string {
	return strings.ToUpper(hex.EncodeToString(d.sum))
}

// String implements fmt.Stringer using the lowercase hexadecimal form.
func (d Digest) String() string {
	return d.HexLower()
}

// Equal reports whether d and other hold the same bytes.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d.sum, other.sum)
}
