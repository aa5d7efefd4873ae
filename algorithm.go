package chksum

// Hash is the running state of one digest computation.
//
// Feeding a byte sequence through any number of Update calls must produce the
// same state as feeding it in a single call. A Hash is owned by exactly one
// computation; after Digest it must not be used again.
type Hash interface {
	// Update absorbs p into the state.
	Update(p []byte)

	// Digest finalizes the state and returns the resulting digest.
	Digest() Digest
}

// Algorithm creates fresh hash states.
//
// Implementations in package algo are zero-size value types, which lets the
// generic helpers Of and OfWith instantiate them without any arguments.
type Algorithm interface {
	// Name returns the algorithm identifier (e.g., "sha256").
	Name() string

	// New returns a state representing zero processed bytes.
	New() Hash
}
