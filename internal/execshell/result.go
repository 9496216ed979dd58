package execshell

import (
	"time"

	"github.com/temirov/safeexec/internal/resolver"
)

// ExecutionResult captures the observable results of a completed child process.
// A non-zero exit code or a terminating signal is reported here, not as an error.
type ExecutionResult struct {
	StandardOutput []byte
	StandardError  []byte
	// ExitCode is -1 when the process was terminated by a signal.
	ExitCode   int
	Signal     string
	Duration   time.Duration
	Executable resolver.ResolvedExecutable
}

// Succeeded reports whether the child exited normally with status zero.
func (result ExecutionResult) Succeeded() bool {
	return result.ExitCode == 0 && len(result.Signal) == 0
}

// Signaled reports whether the child was terminated by a signal.
func (result ExecutionResult) Signaled() bool {
	return len(result.Signal) > 0
}
