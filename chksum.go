package chksum

import "log/slog"

// Sum computes the digest of input with alg, reading streams with the buffer
// capacity selected by args. Any failure aborts the computation; no partial
// digest is ever returned.
func Sum(alg Algorithm, input Input, args Args) (Digest, error) {
	if alg == nil {
		return Digest{}, ErrNilAlgorithm
	}
	if input == nil {
		return Digest{}, ErrNilInput
	}
	if err := args.Validate(); err != nil {
		return Digest{}, err
	}

	u := newUpdater(alg.New(), args)
	slog.Debug("Computing digest", "algorithm", alg.Name(), "chunk_size", args.bufferSize())
	if err := input.feed(u); err != nil {
		return Digest{}, err
	}
	return u.hash.Digest(), nil
}

// Of computes the digest of input with algorithm A and default Args.
func Of[A Algorithm](input Input) (Digest, error) {
	return OfWith[A](input, NewArgs())
}

// OfWith computes the digest of input with algorithm A and the given Args.
func OfWith[A Algorithm](input Input, args Args) (Digest, error) {
	var alg A
	return Sum(alg, input, args)
}

// Result carries the outcome of an asynchronous computation.
type Result struct {
	Digest Digest
	Err    error
}

// Async runs Sum on a single background goroutine and delivers its outcome
// on the returned channel, which is closed afterwards. The computation is
// identical to Sum; nothing is hashed in parallel.
func Async(alg Algorithm, input Input, args Args) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		digest, err := Sum(alg, input, args)
		results <- Result{Digest: digest, Err: err}
	}()
	return results
}
