package execshell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/safeexec/internal/escaper"
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericSignalTemplateConstant           = "%s terminated by signal %s%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
)

// CommandMessageFormatter builds human-readable messages for invocation lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage describes an invocation about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(request InvocationRequest) string {
	return fmt.Sprintf(genericStartTemplateConstant, formatter.FormatCommandLabel(request))
}

// BuildCompletedMessage describes a finished invocation, including its exit
// status and the first line of captured standard error when it failed.
func (formatter CommandMessageFormatter) BuildCompletedMessage(request InvocationRequest, result ExecutionResult) string {
	commandLabel := formatter.FormatCommandLabel(request)
	if result.Succeeded() {
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	}
	standardErrorSuffix := formatter.formatStandardErrorSuffix(result.StandardError)
	if result.Signaled() {
		return fmt.Sprintf(genericSignalTemplateConstant, commandLabel, result.Signal, standardErrorSuffix)
	}
	return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, standardErrorSuffix)
}

// BuildExecutionFailureMessage describes an invocation that could not produce a result.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(request InvocationRequest, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(genericExecutionFailureTemplateConstant, formatter.FormatCommandLabel(request), failureMessage)
}

// FormatCommandLabel renders the command and its arguments quoted for a POSIX
// shell, followed by the working directory when one was requested.
func (formatter CommandMessageFormatter) FormatCommandLabel(request InvocationRequest) string {
	commandParts := append([]string{request.Name}, request.Arguments...)
	commandLabel, quoteError := escaper.QuotePOSIX(commandParts)
	if quoteError != nil {
		quotedParts := make([]string, 0, len(commandParts))
		for _, commandPart := range commandParts {
			quotedParts = append(quotedParts, strconv.Quote(commandPart))
		}
		commandLabel = strings.Join(quotedParts, commandArgumentsJoinSeparatorConstant)
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(request.WorkingDirectory))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(workingDirectory string) string {
	trimmedWorkingDirectory := strings.TrimSpace(workingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError []byte) string {
	trimmedStandardError := strings.TrimSpace(string(standardError))
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	if newlineIndex := strings.IndexAny(trimmedStandardError, "\r\n"); newlineIndex >= 0 {
		trimmedStandardError = strings.TrimSpace(trimmedStandardError[:newlineIndex])
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}
