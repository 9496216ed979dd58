// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor resolves a command name the way the platform shell would,
// picks a launch plan for the resolved file (a native argument vector, or an
// escaped command line for batch scripts run by cmd.exe), and runs it to
// completion through a CommandRunner while logging lifecycle events with zap.
// OSCommandRunner is the default runner backed by os/exec.
package execshell
