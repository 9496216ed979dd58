package execshell

import (
	"strings"

	"github.com/temirov/safeexec/internal/environment"
	"github.com/temirov/safeexec/internal/escaper"
	"github.com/temirov/safeexec/internal/platform"
	"github.com/temirov/safeexec/internal/resolver"
)

const (
	executableFileExtensionConstant = ".exe"
	commandFileExtensionConstant    = ".com"
	batchFileExtensionConstant      = ".bat"
	scriptFileExtensionConstant     = ".cmd"
)

// LaunchPlan is the exact program and arguments handed to the operating system.
type LaunchPlan struct {
	Executable resolver.ResolvedExecutable
	// ProgramPath is the resolved executable, or the shell interpreter for batch scripts.
	ProgramPath string
	// Arguments are passed unchanged for native launches.
	Arguments []string
	// CommandLine is the complete escaped command line for shell launches.
	CommandLine string
}

// Style reports how the plan delivers arguments.
func (plan LaunchPlan) Style() resolver.InvocationStyle {
	return plan.Executable.Style
}

// LaunchRequest is what a CommandRunner needs to start and wait for one process.
type LaunchRequest struct {
	Plan             LaunchPlan
	Environment      []string
	WorkingDirectory string
	StdioMode        StdioMode
	StandardInput    []byte
}

type launchPlanner struct {
	resolver *resolver.Resolver
	target   platform.Platform
}

func (planner launchPlanner) plan(executable resolver.ResolvedExecutable, arguments []string, variables environment.Environment, searchSpec resolver.SearchSpec) (LaunchPlan, error) {
	if searchSpec.Executability == platform.ExecutabilityExtensionList && !isLaunchableExtension(executable.Extension()) {
		return LaunchPlan{}, &UnsupportedFileTypeError{Path: executable.Path, Extension: executable.Extension()}
	}

	if executable.Style == resolver.InvocationStyleNativeArgv {
		return LaunchPlan{
			Executable:  executable,
			ProgramPath: executable.Path,
			Arguments:   append([]string{}, arguments...),
		}, nil
	}

	if validationError := escaper.ValidateForShell(arguments); validationError != nil {
		return LaunchPlan{}, validationError
	}

	interpreterPath, interpreterError := planner.locateShellInterpreter(variables, searchSpec)
	if interpreterError != nil {
		return LaunchPlan{}, interpreterError
	}

	commandLine, commandLineError := escaper.BuildShellCommandLine(interpreterPath, executable.Path, arguments)
	if commandLineError != nil {
		return LaunchPlan{}, commandLineError
	}

	return LaunchPlan{
		Executable:  executable,
		ProgramPath: interpreterPath,
		CommandLine: commandLine,
	}, nil
}

// locateShellInterpreter prefers the interpreter named by COMSPEC and falls
// back to searching for cmd.exe.
func (planner launchPlanner) locateShellInterpreter(variables environment.Environment, searchSpec resolver.SearchSpec) (string, error) {
	configuredInterpreter := strings.TrimSpace(variables.Value(planner.target.ShellInterpreterVariableName()))
	if len(configuredInterpreter) > 0 {
		if interpreter, found := planner.resolver.Resolve(configuredInterpreter, searchSpec); found && interpreter.Style == resolver.InvocationStyleNativeArgv {
			return interpreter.Path, nil
		}
	}

	if interpreter, found := planner.resolver.Resolve(planner.target.ShellInterpreterFileName(), searchSpec); found && interpreter.Style == resolver.InvocationStyleNativeArgv {
		return interpreter.Path, nil
	}

	return "", ErrShellInterpreterNotFound
}

func isLaunchableExtension(extension string) bool {
	switch extension {
	case executableFileExtensionConstant, commandFileExtensionConstant, batchFileExtensionConstant, scriptFileExtensionConstant:
		return true
	default:
		return false
	}
}
