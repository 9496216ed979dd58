package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/temirov/safeexec/internal/resolver"
)

// OSCommandRunner executes launch plans using the operating system facilities.
type OSCommandRunner struct {
	standardOutput io.Writer
	standardError  io.Writer
	standardInput  io.Reader
}

// NewOSCommandRunner constructs a runner backed by os/exec that connects the
// host's standard streams in inherit mode.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{standardOutput: os.Stdout, standardError: os.Stderr, standardInput: os.Stdin}
}

// NewOSCommandRunnerWithStreams constructs a runner whose inherit mode uses the provided streams.
func NewOSCommandRunnerWithStreams(standardOutput io.Writer, standardError io.Writer, standardInput io.Reader) *OSCommandRunner {
	return &OSCommandRunner{standardOutput: standardOutput, standardError: standardError, standardInput: standardInput}
}

// Run starts the planned process and waits for it and its output pipes to finish.
func (runner *OSCommandRunner) Run(executionContext context.Context, launch LaunchRequest) (ExecutionResult, error) {
	executable, configureError := newProcessCommand(executionContext, launch.Plan)
	if configureError != nil {
		return ExecutionResult{}, configureError
	}

	if len(launch.WorkingDirectory) > 0 {
		executable.Dir = launch.WorkingDirectory
	}
	if launch.Environment != nil {
		executable.Env = append([]string{}, launch.Environment...)
	}

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	switch launch.StdioMode {
	case StdioDiscard:
	case StdioInherit:
		executable.Stdout = runner.standardOutput
		executable.Stderr = runner.standardError
		executable.Stdin = runner.standardInput
	default:
		executable.Stdout = &standardOutputBuffer
		executable.Stderr = &standardErrorBuffer
	}

	if len(launch.StandardInput) > 0 {
		executable.Stdin = bytes.NewReader(launch.StandardInput)
	}

	startTime := time.Now()
	runError := executable.Run()
	executionResult := ExecutionResult{
		Duration:   time.Since(startTime),
		Executable: launch.Plan.Executable,
	}
	if standardOutputBuffer.Len() > 0 {
		executionResult.StandardOutput = standardOutputBuffer.Bytes()
	}
	if standardErrorBuffer.Len() > 0 {
		executionResult.StandardError = standardErrorBuffer.Bytes()
	}

	if runError != nil {
		exitError := &exec.ExitError{}
		if !errors.As(runError, &exitError) {
			return ExecutionResult{}, &SpawnFailureError{Path: launch.Plan.ProgramPath, Cause: runError}
		}
		applyProcessState(&executionResult, exitError.ProcessState)
		if contextError := executionContext.Err(); contextError != nil {
			return executionResult, fmt.Errorf(invocationInterruptedTemplateConstant, launch.Plan.Executable.Path, contextError)
		}
		return executionResult, nil
	}

	applyProcessState(&executionResult, executable.ProcessState)
	return executionResult, nil
}

func newProcessCommand(executionContext context.Context, plan LaunchPlan) (*exec.Cmd, error) {
	if plan.Style() == resolver.InvocationStyleShellCommandLine {
		return newShellCommandLineProcess(executionContext, plan)
	}
	return exec.CommandContext(executionContext, plan.ProgramPath, plan.Arguments...), nil
}

func applyProcessState(executionResult *ExecutionResult, processState *os.ProcessState) {
	if processState == nil {
		return
	}
	executionResult.ExitCode = processState.ExitCode()
	executionResult.Signal = terminationSignal(processState)
	if len(executionResult.Signal) > 0 {
		executionResult.ExitCode = -1
	}
}
