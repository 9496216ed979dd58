// Package cli constructs the safeexec command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives around the resolve, run and escape commands.
package cli
