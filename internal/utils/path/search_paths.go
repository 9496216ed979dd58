package pathutils

import "strings"

// ExpandAll trims each path, expands a leading "~" and drops empty entries.
func (expander *HomeExpander) ExpandAll(candidatePaths []string) []string {
	expandedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedPath := strings.TrimSpace(candidatePath)
		if len(trimmedPath) == 0 {
			continue
		}
		expandedPaths = append(expandedPaths, expander.Expand(trimmedPath))
	}
	return expandedPaths
}

// PrependSearchPaths returns a search path list in which extraPaths come
// before the entries of existingPathList. Extra paths are expanded with the
// expander; the existing list is kept verbatim.
func PrependSearchPaths(expander *HomeExpander, existingPathList string, extraPaths []string, listSeparator rune) string {
	expandedPaths := expander.ExpandAll(extraPaths)
	if len(expandedPaths) == 0 {
		return existingPathList
	}
	if len(existingPathList) > 0 {
		expandedPaths = append(expandedPaths, existingPathList)
	}
	return strings.Join(expandedPaths, string(listSeparator))
}
