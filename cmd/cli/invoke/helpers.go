package invoke

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/safeexec/internal/environment"
	"github.com/temirov/safeexec/internal/execshell"
	"github.com/temirov/safeexec/internal/platform"
	"github.com/temirov/safeexec/internal/ui"
	pathutils "github.com/temirov/safeexec/internal/utils/path"
)

const (
	environmentAssignmentSeparatorConstant = "="
	workingDirectoryFlagName               = "working-directory"
	workingDirectoryFlagDescription        = "Directory the tool runs in and relative PATH entries are anchored at"
	outputFlagName                         = "output"
	outputFlagDescription                  = "Result rendering format"
)

var invocationHomeDirectoryExpander = pathutils.NewHomeExpander()

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// InvocationConfigurationProvider yields the configured invocation defaults.
type InvocationConfigurationProvider func() InvocationConfiguration

// OutputConfigurationProvider yields the configured output settings.
type OutputConfigurationProvider func() OutputConfiguration

// HumanReadableLoggingProvider reports whether console-style event logging is active.
type HumanReadableLoggingProvider func() bool

// ExecutorFactory constructs the executor used by a command. The streams are
// the ones inherited by child processes in inherit mode.
type ExecutorFactory func(logger *zap.Logger, observer execshell.CommandEventObserver, standardOutput io.Writer, standardError io.Writer, standardInput io.Reader) (*execshell.ShellExecutor, error)

type commandDependencies struct {
	LoggerProvider               LoggerProvider
	InvocationConfiguration      InvocationConfigurationProvider
	OutputConfiguration          OutputConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ExecutorFactory              ExecutorFactory
}

func (dependencies commandDependencies) resolveLogger() *zap.Logger {
	if dependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := dependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (dependencies commandDependencies) invocationConfiguration() InvocationConfiguration {
	if dependencies.InvocationConfiguration == nil {
		return DefaultInvocationConfiguration().sanitize()
	}
	return dependencies.InvocationConfiguration().sanitize()
}

func (dependencies commandDependencies) outputConfiguration() OutputConfiguration {
	if dependencies.OutputConfiguration == nil {
		return DefaultOutputConfiguration().sanitize()
	}
	return dependencies.OutputConfiguration().sanitize()
}

// resolveExecutor builds the executor. With human-readable logging the console
// observer reports lifecycle events and the structured executor log is muted
// so each event is printed once.
func (dependencies commandDependencies) resolveExecutor(standardOutput io.Writer, standardError io.Writer, standardInput io.Reader) (*execshell.ShellExecutor, error) {
	logger := dependencies.resolveLogger()
	var observer execshell.CommandEventObserver
	if dependencies.HumanReadableLoggingProvider != nil && dependencies.HumanReadableLoggingProvider() {
		observer = ui.NewConsoleCommandEventLogger(logger)
		logger = zap.NewNop()
	}

	factory := dependencies.ExecutorFactory
	if factory == nil {
		factory = defaultExecutorFactory
	}
	return factory(logger, observer, standardOutput, standardError, standardInput)
}

func defaultExecutorFactory(logger *zap.Logger, observer execshell.CommandEventObserver, standardOutput io.Writer, standardError io.Writer, standardInput io.Reader) (*execshell.ShellExecutor, error) {
	runner := execshell.NewOSCommandRunnerWithStreams(standardOutput, standardError, standardInput)
	return execshell.NewShellExecutor(logger, runner, execshell.WithCommandEventObserver(observer))
}

// parseEnvironmentAssignments folds KEY=VALUE assignments in order, so a later
// assignment wins even when it differs only in key case on Windows.
func parseEnvironmentAssignments(assignments []string, caseInsensitive bool) (environment.Environment, error) {
	for _, assignment := range assignments {
		key, _, found := strings.Cut(assignment, environmentAssignmentSeparatorConstant)
		if !found || len(strings.TrimSpace(key)) == 0 {
			return environment.Environment{}, fmt.Errorf(environmentAssignmentTemplateConstant, assignment)
		}
	}
	return environment.New(caseInsensitive).WithAssignments(trimAssignmentKeys(assignments)), nil
}

func trimAssignmentKeys(assignments []string) []string {
	trimmedAssignments := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		key, value, _ := strings.Cut(assignment, environmentAssignmentSeparatorConstant)
		trimmedAssignments = append(trimmedAssignments, strings.TrimSpace(key)+environmentAssignmentSeparatorConstant+value)
	}
	return trimmedAssignments
}

// invocationSettings are the configuration values after command-line overrides.
type invocationSettings struct {
	StdioMode          execshell.StdioMode
	InheritEnvironment bool
	WorkingDirectory   string
	Environment        []string
	ExtraSearchPaths   []string
}

func newInvocationSettings(configuration InvocationConfiguration) (invocationSettings, error) {
	stdioMode, stdioError := execshell.ParseStdioMode(configuration.Stdio)
	if stdioError != nil {
		return invocationSettings{}, stdioError
	}
	return invocationSettings{
		StdioMode:          stdioMode,
		InheritEnvironment: configuration.InheritEnvironment,
		WorkingDirectory:   configuration.WorkingDirectory,
		Environment:        append([]string{}, configuration.Environment...),
		ExtraSearchPaths:   append([]string{}, configuration.ExtraSearchPaths...),
	}, nil
}

func buildInvocationRequest(name string, arguments []string, settings invocationSettings, target platform.Platform, hostEnvironment []string) (execshell.InvocationRequest, error) {
	overrides, parseError := parseEnvironmentAssignments(settings.Environment, target.CaseInsensitiveEnvironmentKeys)
	if parseError != nil {
		return execshell.InvocationRequest{}, parseError
	}

	if len(settings.ExtraSearchPaths) > 0 {
		baseEnvironment := environment.New(target.CaseInsensitiveEnvironmentKeys)
		if settings.InheritEnvironment {
			baseEnvironment = environment.FromPairs(hostEnvironment, target.CaseInsensitiveEnvironmentKeys)
		}
		effectiveEnvironment := baseEnvironment.WithOverrides(overrides.Map())
		pathVariableName := target.PathVariableName()
		if storedKey, present := effectiveEnvironment.StoredKey(pathVariableName); present {
			pathVariableName = storedKey
		}
		overrides = overrides.WithOverrides(map[string]string{
			pathVariableName: pathutils.PrependSearchPaths(
				invocationHomeDirectoryExpander,
				effectiveEnvironment.Value(pathVariableName),
				settings.ExtraSearchPaths,
				target.PathListSeparator,
			),
		})
	}

	return execshell.InvocationRequest{
		Name:                 name,
		Arguments:            append([]string{}, arguments...),
		EnvironmentVariables: overrides.Map(),
		IsolateEnvironment:   !settings.InheritEnvironment,
		WorkingDirectory:     invocationHomeDirectoryExpander.Expand(settings.WorkingDirectory),
		StdioMode:            settings.StdioMode,
	}, nil
}

func currentHostEnvironment() []string {
	return os.Environ()
}
