// Package resolver maps a command name to the executable file a shell would
// run for it.
//
// Resolution walks the PATH directories in order and, on platforms that judge
// executability by extension, tries each PATHEXT suffix within a directory
// before moving on. It is a total function: absence is reported with a false
// flag, never an error.
package resolver
