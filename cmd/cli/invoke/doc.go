// Package invoke provides the resolve, run and escape commands that expose
// executable resolution, argument escaping and process invocation on the
// command line.
package invoke
