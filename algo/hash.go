package algo

import (
	"hash"

	"github.com/isseis/go-chksum"
)

// hashState adapts a standard library hash.Hash to chksum.Hash.
type hashState struct {
	h hash.Hash
}

func newHashState(h hash.Hash) *hashState {
	return &hashState{h: h}
}

// Update absorbs p. Write on a hash.Hash never returns an error.
func (s *hashState) Update(p []byte) {
	if s.h == nil {
		panic("algo: Update called after Digest")
	}
	_, _ = s.h.Write(p)
}

// Digest finalizes the state. The state cannot be used afterwards.
func (s *hashState) Digest() chksum.Digest {
	if s.h == nil {
		panic("algo: Digest called twice")
	}
	digest := chksum.NewDigest(s.h.Sum(nil))
	s.h = nil
	return digest
}
