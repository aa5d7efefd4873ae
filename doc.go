// Package chksum computes checksum digests of files, directories, standard
// input and arbitrary byte streams with any incremental hash algorithm.
//
// Pick an algorithm from package algo and an Input:
//
//	digest, err := chksum.Of[algo.SHA256](chksum.Path("testdata"))
//	if err != nil {
//		return err
//	}
//	fmt.Println(digest.HexLower())
//
// Results do not depend on the chunk size used for reading, nor on the order
// in which the operating system lists directory entries: entries are sorted
// by full path before their contents are hashed. Only file contents
// contribute to a directory digest; see Path for details.
package chksum
