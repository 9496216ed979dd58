package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/safeexec/cmd/cli"
	"github.com/temirov/safeexec/cmd/cli/invoke"
)

const (
	exitErrorTemplateConstant = "%v\n"
	failureExitCodeConstant   = 1
)

// main executes the safeexec command-line application. A tool that exits
// unsuccessfully under run passes its exit code through.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var exitStatusError invoke.ExitStatusError
	if errors.As(executionError, &exitStatusError) {
		if len(exitStatusError.Signal) > 0 {
			fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, exitStatusError)
		}
		os.Exit(exitStatusError.ExitCode())
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(failureExitCodeConstant)
}
