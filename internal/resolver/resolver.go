package resolver

import (
	"path/filepath"
	"strings"

	"github.com/temirov/safeexec/internal/filesystem"
	"github.com/temirov/safeexec/internal/platform"
)

const (
	forwardSlashConstant = "/"
	backslashConstant    = `\`
)

// Resolver locates executables using a FileSystem.
type Resolver struct {
	fileSystem filesystem.FileSystem
}

// NewResolver constructs a resolver backed by the provided file system, or the
// operating system when fileSystem is nil.
func NewResolver(fileSystem filesystem.FileSystem) *Resolver {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &Resolver{fileSystem: fileSystem}
}

// Resolve returns the executable a shell would run for name, or false when
// nothing matches. A name containing a path separator is taken as a path
// relative to the working directory and is not searched for on PATH.
func (resolver *Resolver) Resolve(name string, searchSpec SearchSpec) (ResolvedExecutable, bool) {
	if len(name) == 0 {
		return ResolvedExecutable{}, false
	}

	if containsPathSeparator(name, searchSpec) {
		candidatePath := name
		if !filepath.IsAbs(candidatePath) {
			candidatePath = filepath.Join(searchSpec.WorkingDirectory, candidatePath)
		}
		return resolver.resolveAtLocation(candidatePath, searchSpec)
	}

	for _, directory := range searchSpec.Directories {
		if resolvedExecutable, found := resolver.resolveAtLocation(filepath.Join(directory, name), searchSpec); found {
			return resolvedExecutable, true
		}
	}

	return ResolvedExecutable{}, false
}

// resolveAtLocation tries the bare path first, then each extension in order.
func (resolver *Resolver) resolveAtLocation(basePath string, searchSpec SearchSpec) (ResolvedExecutable, bool) {
	candidatePaths := []string{basePath}
	if searchSpec.Executability == platform.ExecutabilityExtensionList {
		for _, extension := range searchSpec.Extensions {
			candidatePaths = append(candidatePaths, basePath+extension)
		}
	}

	for _, candidatePath := range candidatePaths {
		if resolver.canExecute(candidatePath, searchSpec) {
			return newResolvedExecutable(candidatePath, searchSpec), true
		}
	}

	return ResolvedExecutable{}, false
}

func (resolver *Resolver) canExecute(candidatePath string, searchSpec SearchSpec) bool {
	fileInfo, statError := resolver.fileSystem.Stat(candidatePath)
	if statError != nil || fileInfo.IsDir() {
		return false
	}

	if searchSpec.Executability == platform.ExecutabilityExtensionList {
		return hasListedExtension(candidatePath, searchSpec.Extensions)
	}

	return resolver.fileSystem.ExecutePermitted(candidatePath, fileInfo)
}

func newResolvedExecutable(resolvedPath string, searchSpec SearchSpec) ResolvedExecutable {
	resolvedExecutable := ResolvedExecutable{Path: resolvedPath, Style: InvocationStyleNativeArgv}
	if searchSpec.Executability == platform.ExecutabilityExtensionList && isShellScriptExtension(filepath.Ext(resolvedPath)) {
		resolvedExecutable.ShellScript = true
		resolvedExecutable.Style = InvocationStyleShellCommandLine
	}
	return resolvedExecutable
}

func hasListedExtension(candidatePath string, extensions []string) bool {
	extension := strings.ToLower(filepath.Ext(candidatePath))
	if len(extension) == 0 {
		return false
	}
	for _, listedExtension := range extensions {
		if listedExtension == extension {
			return true
		}
	}
	return false
}

func containsPathSeparator(name string, searchSpec SearchSpec) bool {
	if strings.Contains(name, forwardSlashConstant) {
		return true
	}
	return searchSpec.BackslashIsPathSeparator && strings.Contains(name, backslashConstant)
}
