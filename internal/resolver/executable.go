package resolver

import (
	"path/filepath"
	"strings"
)

const (
	invocationStyleNativeArgvLabelConstant       = "native_argv"
	invocationStyleShellCommandLineLabelConstant = "shell_command_line"
	batchFileExtensionConstant                   = ".bat"
	commandFileExtensionConstant                 = ".cmd"
)

// InvocationStyle selects how arguments reach a resolved executable.
type InvocationStyle int

const (
	// InvocationStyleNativeArgv passes the argument vector through unmodified.
	InvocationStyleNativeArgv InvocationStyle = iota
	// InvocationStyleShellCommandLine builds one escaped command line for the command shell.
	InvocationStyleShellCommandLine
)

// String renders the style for logs and CLI output.
func (style InvocationStyle) String() string {
	if style == InvocationStyleShellCommandLine {
		return invocationStyleShellCommandLineLabelConstant
	}
	return invocationStyleNativeArgvLabelConstant
}

// ResolvedExecutable identifies the file selected by resolution.
type ResolvedExecutable struct {
	Path        string
	ShellScript bool
	Style       InvocationStyle
}

// Extension returns the lower-cased file extension including the leading dot.
func (executable ResolvedExecutable) Extension() string {
	return strings.ToLower(filepath.Ext(executable.Path))
}

func isShellScriptExtension(extension string) bool {
	switch strings.ToLower(extension) {
	case batchFileExtensionConstant, commandFileExtensionConstant:
		return true
	default:
		return false
	}
}
