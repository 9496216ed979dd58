package resolver

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/temirov/safeexec/internal/environment"
	"github.com/temirov/safeexec/internal/platform"
)

const defaultWindowsExtensionsConstant = ".com;.exe;.bat;.cmd"

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9.]*[a-z0-9]$`)

// SearchSpec describes where and how to look for an executable.
type SearchSpec struct {
	// Directories are absolute and searched in order; the first match wins.
	Directories []string
	// Extensions are lower-case suffixes with a leading dot, tried in order.
	Extensions               []string
	WorkingDirectory         string
	Executability            platform.ExecutabilityRule
	BackslashIsPathSeparator bool
}

// SearchSpecFor derives the search specification from an environment the way
// the target platform's shell would. Relative PATH entries are anchored at the
// working directory; duplicates and entries that do not exist are dropped.
func (resolver *Resolver) SearchSpecFor(variables environment.Environment, workingDirectory string, target platform.Platform) SearchSpec {
	absoluteWorkingDirectory := resolver.absoluteWorkingDirectory(workingDirectory)

	searchSpec := SearchSpec{
		WorkingDirectory:         absoluteWorkingDirectory,
		Executability:            target.Executability,
		BackslashIsPathSeparator: target.BackslashIsPathSeparator,
	}

	searchSpec.Directories = resolver.searchDirectories(
		variables.Value(target.PathVariableName()),
		target.PathListSeparator,
		absoluteWorkingDirectory,
	)

	if target.UsesExtensionList() {
		extensionList := variables.Value(target.PathExtensionVariableName())
		if len(strings.TrimSpace(extensionList)) == 0 {
			extensionList = defaultWindowsExtensionsConstant
		}
		searchSpec.Extensions = ParseExtensionList(extensionList, target.ExtensionListSeparator)
	}

	return searchSpec
}

// ParseExtensionList normalizes a PATHEXT value: entries are trimmed and
// lower-cased, malformed entries are ignored and duplicates are dropped.
func ParseExtensionList(extensionList string, separator string) []string {
	extensions := []string{}
	seenExtensions := map[string]struct{}{}
	for _, rawExtension := range strings.Split(extensionList, separator) {
		normalizedExtension := strings.ToLower(strings.TrimSpace(rawExtension))
		if !extensionPattern.MatchString(normalizedExtension) {
			continue
		}
		if _, seen := seenExtensions[normalizedExtension]; seen {
			continue
		}
		seenExtensions[normalizedExtension] = struct{}{}
		extensions = append(extensions, normalizedExtension)
	}
	return extensions
}

func (resolver *Resolver) searchDirectories(pathList string, separator rune, workingDirectory string) []string {
	directories := []string{}
	seenPaths := map[string]struct{}{}

	for _, rawEntry := range strings.Split(pathList, string(separator)) {
		trimmedEntry := strings.TrimSpace(rawEntry)
		if len(trimmedEntry) == 0 {
			continue
		}
		if _, seen := seenPaths[trimmedEntry]; seen {
			continue
		}

		resolvedEntry := trimmedEntry
		if !filepath.IsAbs(resolvedEntry) {
			resolvedEntry = filepath.Join(workingDirectory, resolvedEntry)
		}
		resolvedEntry = filepath.Clean(resolvedEntry)
		_, resolvedSeen := seenPaths[resolvedEntry]
		seenPaths[trimmedEntry] = struct{}{}
		seenPaths[resolvedEntry] = struct{}{}
		if resolvedSeen {
			continue
		}

		if _, statError := resolver.fileSystem.Stat(resolvedEntry); statError != nil {
			continue
		}
		directories = append(directories, resolvedEntry)
	}

	return directories
}

func (resolver *Resolver) absoluteWorkingDirectory(workingDirectory string) string {
	candidate := workingDirectory
	if len(strings.TrimSpace(candidate)) == 0 {
		candidate = "."
	}
	absolutePath, absError := resolver.fileSystem.Abs(candidate)
	if absError != nil {
		return filepath.Clean(candidate)
	}
	return absolutePath
}
