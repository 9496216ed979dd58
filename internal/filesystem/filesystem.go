// Package filesystem abstracts the file metadata queries performed while
// resolving executables.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

const anyExecutePermissionBitsConstant fs.FileMode = 0o111

// FileSystem exposes the queries the resolver needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Abs(path string) (string, error)
	// ExecutePermitted reports whether the current user may execute the file.
	ExecutePermitted(path string, info fs.FileInfo) bool
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Abs resolves an absolute path.
func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// ExecutePermitted reports whether the current user may execute the file.
func (OSFileSystem) ExecutePermitted(path string, info fs.FileInfo) bool {
	return executePermitted(path, info)
}

// HasExecuteBits reports whether any of the owner, group or other execute bits is set.
func HasExecuteBits(info fs.FileInfo) bool {
	if info == nil {
		return false
	}
	return info.Mode().Perm()&anyExecutePermissionBitsConstant != 0
}
