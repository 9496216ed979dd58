package execshell

import "strings"

const (
	stdioModeBufferConstant  = "buffer"
	stdioModeDiscardConstant = "discard"
	stdioModeInheritConstant = "inherit"
)

// StdioMode selects what happens to the child's standard output and error.
type StdioMode string

// Supported stdio modes.
const (
	StdioBuffer  StdioMode = StdioMode(stdioModeBufferConstant)
	StdioDiscard StdioMode = StdioMode(stdioModeDiscardConstant)
	StdioInherit StdioMode = StdioMode(stdioModeInheritConstant)
)

// ParseStdioMode converts a configuration value into a StdioMode.
func ParseStdioMode(value string) (StdioMode, error) {
	switch StdioMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", StdioBuffer:
		return StdioBuffer, nil
	case StdioDiscard:
		return StdioDiscard, nil
	case StdioInherit:
		return StdioInherit, nil
	default:
		return "", &UnsupportedStdioModeError{Value: value}
	}
}

// InvocationRequest describes one synchronous tool invocation.
type InvocationRequest struct {
	// Name is a bare command name searched on PATH, or a path.
	Name      string
	Arguments []string
	// EnvironmentVariables override or extend the inherited environment.
	EnvironmentVariables map[string]string
	// IsolateEnvironment starts from an empty environment instead of the host's.
	IsolateEnvironment bool
	WorkingDirectory   string
	StdioMode          StdioMode
	StandardInput      []byte
}

func (request InvocationRequest) stdioMode() StdioMode {
	if len(request.StdioMode) == 0 {
		return StdioBuffer
	}
	return request.StdioMode
}
