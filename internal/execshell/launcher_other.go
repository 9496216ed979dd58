//go:build !unix && !windows

package execshell

import (
	"context"
	"os"
	"os/exec"
)

func newShellCommandLineProcess(context.Context, LaunchPlan) (*exec.Cmd, error) {
	return nil, ErrShellCommandLineUnsupported
}

func terminationSignal(*os.ProcessState) string {
	return emptyStringConstant
}
