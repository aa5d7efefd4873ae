package algo

import "errors"

// ErrUnknownAlgorithm indicates that no algorithm is registered under the requested name.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
