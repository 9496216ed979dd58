// Package environment models the variables handed to a child process as an
// immutable value.
//
// An Environment is built once per invocation from the host environment and
// the caller's overrides. Keys are unique; on platforms whose environment APIs
// ignore case, keys that differ only by case collapse into a single entry and
// the most recent spelling wins.
package environment
