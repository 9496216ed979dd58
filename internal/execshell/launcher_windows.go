//go:build windows

package execshell

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

// newShellCommandLineProcess launches the interpreter with the prepared command
// line verbatim so that os/exec does not quote it a second time.
func newShellCommandLineProcess(executionContext context.Context, plan LaunchPlan) (*exec.Cmd, error) {
	executable := exec.CommandContext(executionContext, plan.ProgramPath)
	executable.SysProcAttr = &syscall.SysProcAttr{CmdLine: plan.CommandLine}
	return executable, nil
}

func terminationSignal(*os.ProcessState) string {
	return emptyStringConstant
}
