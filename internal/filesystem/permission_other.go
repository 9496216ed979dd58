//go:build !unix

package filesystem

import "io/fs"

func executePermitted(_ string, info fs.FileInfo) bool {
	return HasExecuteBits(info)
}
