package algo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/isseis/go-chksum"
)

// registry maps canonical names to algorithms.
var registry = map[string]chksum.Algorithm{
	MD5{}.Name():        MD5{},
	SHA1{}.Name():       SHA1{},
	SHA2_224{}.Name():   SHA2_224{},
	SHA2_256{}.Name():   SHA2_256{},
	SHA2_384{}.Name():   SHA2_384{},
	SHA2_512{}.Name():   SHA2_512{},
	SHA3_256{}.Name():   SHA3_256{},
	SHA3_512{}.Name():   SHA3_512{},
	BLAKE2b256{}.Name(): BLAKE2b256{},
	BLAKE2b512{}.Name(): BLAKE2b512{},
	BLAKE3{}.Name():     BLAKE3{},
}

// aliases maps commonly used spellings to canonical names.
var aliases = map[string]string{
	"sha-1":   "sha1",
	"sha224":  "sha2-224",
	"sha-224": "sha2-224",
	"sha256":  "sha2-256",
	"sha-256": "sha2-256",
	"sha384":  "sha2-384",
	"sha-384": "sha2-384",
	"sha512":  "sha2-512",
	"sha-512": "sha2-512",
	"blake2b": "blake2b-512",
}

// Lookup returns the algorithm registered under name. Matching ignores case
// and accepts common aliases such as "sha256" for "sha2-256".
func Lookup(name string) (chksum.Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	alg, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Names returns the canonical names of all algorithms in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
