// Package algo provides the hash algorithms accepted by package chksum.
//
// Every algorithm is a zero-size value type, so it can be passed as a type
// argument:
//
//	digest, err := chksum.Of[algo.MD5](chksum.Path("file.txt"))
//
// or looked up by name when the choice is made at run time:
//
//	alg, err := algo.Lookup("sha2-256")
package algo
