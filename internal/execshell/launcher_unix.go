//go:build unix

package execshell

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

func newShellCommandLineProcess(context.Context, LaunchPlan) (*exec.Cmd, error) {
	return nil, ErrShellCommandLineUnsupported
}

func terminationSignal(processState *os.ProcessState) string {
	waitStatus, isWaitStatus := processState.Sys().(syscall.WaitStatus)
	if !isWaitStatus || !waitStatus.Signaled() {
		return emptyStringConstant
	}
	return waitStatus.Signal().String()
}
