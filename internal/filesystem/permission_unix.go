//go:build unix

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// executePermitted asks the kernel through access(2), which applies the owner,
// group and other bits against the real user and group IDs.
func executePermitted(path string, info fs.FileInfo) bool {
	if !HasExecuteBits(info) {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
