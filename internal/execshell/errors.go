package execshell

import (
	"errors"
	"fmt"
)

const (
	loggerNotConfiguredMessageConstant         = "logger not configured"
	commandRunnerNotConfiguredMessageConstant  = "command runner not configured"
	executableNotFoundMessageConstant          = "executable not found"
	spawnFailedMessageConstant                 = "process could not be started"
	unsupportedFileTypeMessageConstant         = "file type cannot be executed"
	shellInterpreterNotFoundMessageConstant    = "command shell interpreter not found"
	shellCommandLineUnsupportedMessageConstant = "shell command line launches require windows"
	executableNotFoundTemplateConstant         = "the executable file %q was not found"
	spawnFailureTemplateConstant               = "unable to start %s: %v"
	unsupportedFileTypeTemplateConstant        = "cannot execute %q because the file type %q is not supported"
	unsupportedStdioModeTemplateConstant       = "unsupported stdio mode: %s"
	invocationInterruptedTemplateConstant      = "invocation of %s interrupted: %w"
)

var (
	// ErrLoggerNotConfigured indicates that a nil logger was provided.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates that a nil runner was provided.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
	// ErrExecutableNotFound matches every ExecutableNotFoundError.
	ErrExecutableNotFound = errors.New(executableNotFoundMessageConstant)
	// ErrSpawnFailed matches every SpawnFailureError.
	ErrSpawnFailed = errors.New(spawnFailedMessageConstant)
	// ErrUnsupportedFileType matches every UnsupportedFileTypeError.
	ErrUnsupportedFileType = errors.New(unsupportedFileTypeMessageConstant)
	// ErrShellInterpreterNotFound indicates that neither COMSPEC nor cmd.exe could be resolved.
	ErrShellInterpreterNotFound = errors.New(shellInterpreterNotFoundMessageConstant)
	// ErrShellCommandLineUnsupported indicates a shell command line plan on a platform that cannot launch it.
	ErrShellCommandLineUnsupported = errors.New(shellCommandLineUnsupportedMessageConstant)
)

// ExecutableNotFoundError reports that resolution found no executable.
type ExecutableNotFoundError struct {
	Name string
}

// Error describes the missing executable.
func (notFoundError *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(executableNotFoundTemplateConstant, notFoundError.Name)
}

// Is reports whether target is ErrExecutableNotFound.
func (notFoundError *ExecutableNotFoundError) Is(target error) bool {
	return target == ErrExecutableNotFound
}

// SpawnFailureError reports that the operating system refused to start the process.
type SpawnFailureError struct {
	Path  string
	Cause error
}

// Error describes the spawn failure.
func (spawnError *SpawnFailureError) Error() string {
	return fmt.Sprintf(spawnFailureTemplateConstant, spawnError.Path, spawnError.Cause)
}

// Unwrap exposes the operating system error.
func (spawnError *SpawnFailureError) Unwrap() error {
	return spawnError.Cause
}

// Is reports whether target is ErrSpawnFailed.
func (spawnError *SpawnFailureError) Is(target error) bool {
	return target == ErrSpawnFailed
}

// UnsupportedFileTypeError reports a resolved file whose extension cannot be launched.
type UnsupportedFileTypeError struct {
	Path      string
	Extension string
}

// Error describes the unsupported file type.
func (unsupportedError *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf(unsupportedFileTypeTemplateConstant, unsupportedError.Path, unsupportedError.Extension)
}

// Is reports whether target is ErrUnsupportedFileType.
func (unsupportedError *UnsupportedFileTypeError) Is(target error) bool {
	return target == ErrUnsupportedFileType
}

// UnsupportedStdioModeError reports an unknown stdio mode value.
type UnsupportedStdioModeError struct {
	Value string
}

// Error describes the unsupported value.
func (stdioError *UnsupportedStdioModeError) Error() string {
	return fmt.Sprintf(unsupportedStdioModeTemplateConstant, stdioError.Value)
}
