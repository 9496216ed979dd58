package invoke

import "fmt"

const (
	exitStatusTemplateConstant            = "%s exited with status %d"
	exitSignalTemplateConstant            = "%s terminated by signal %s"
	runFailedTemplateConstant             = "unable to run %s: %w"
	resolveFailedTemplateConstant         = "unable to resolve %s: %w"
	escapeFailedTemplateConstant          = "unable to escape arguments: %w"
	verificationFailedTemplateConstant    = "escaped command line %s splits into %q instead of %q"
	environmentAssignmentTemplateConstant = "invalid environment assignment %q: expected KEY=VALUE"
	unsupportedOutputFormatTemplate       = "unsupported output format: %s"
	signalExitCodeConstant                = 1
)

// ExitStatusError reports that a child process finished unsuccessfully. The
// command line entrypoint exits with Code instead of printing a failure.
type ExitStatusError struct {
	Command string
	Code    int
	Signal  string
}

// Error describes the child's termination.
func (exitError ExitStatusError) Error() string {
	if len(exitError.Signal) > 0 {
		return fmt.Sprintf(exitSignalTemplateConstant, exitError.Command, exitError.Signal)
	}
	return fmt.Sprintf(exitStatusTemplateConstant, exitError.Command, exitError.Code)
}

// ExitCode returns the process exit code the entrypoint should use.
func (exitError ExitStatusError) ExitCode() int {
	if exitError.Code <= 0 {
		return signalExitCodeConstant
	}
	return exitError.Code
}
