package execshell

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/safeexec/internal/environment"
	"github.com/temirov/safeexec/internal/filesystem"
	"github.com/temirov/safeexec/internal/platform"
	"github.com/temirov/safeexec/internal/resolver"
)

const (
	commandNameFieldNameConstant      = "command"
	argumentsFieldNameConstant        = "arguments"
	resolvedPathFieldNameConstant     = "resolved_path"
	invocationStyleFieldNameConstant  = "invocation_style"
	exitCodeFieldNameConstant         = "exit_code"
	signalFieldNameConstant           = "signal"
	durationFieldNameConstant         = "duration"
	workingDirectoryFieldNameConstant = "working_directory"
	stdioModeFieldNameConstant        = "stdio"
)

// CommandRunner launches a planned process and waits for it to exit.
type CommandRunner interface {
	Run(executionContext context.Context, launch LaunchRequest) (ExecutionResult, error)
}

// ExecutorOption customizes a ShellExecutor.
type ExecutorOption func(executor *ShellExecutor)

// WithPlatform overrides the platform conventions used for resolution and launching.
func WithPlatform(target platform.Platform) ExecutorOption {
	return func(executor *ShellExecutor) {
		executor.target = target
	}
}

// WithFileSystem overrides the file system consulted during resolution.
func WithFileSystem(fileSystem filesystem.FileSystem) ExecutorOption {
	return func(executor *ShellExecutor) {
		executor.resolver = resolver.NewResolver(fileSystem)
	}
}

// WithCommandEventObserver registers an observer for invocation lifecycle events.
func WithCommandEventObserver(observer CommandEventObserver) ExecutorOption {
	return func(executor *ShellExecutor) {
		if observer != nil {
			executor.observer = observer
		}
	}
}

// WithHostEnvironment overrides the source of the inherited environment.
func WithHostEnvironment(hostEnvironment func() []string) ExecutorOption {
	return func(executor *ShellExecutor) {
		if hostEnvironment != nil {
			executor.hostEnvironment = hostEnvironment
		}
	}
}

// ShellExecutor resolves, plans and runs tool invocations. It holds no mutable
// state after construction and is safe for concurrent use.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	resolver         *resolver.Resolver
	target           platform.Platform
	observer         CommandEventObserver
	messageFormatter CommandMessageFormatter
	hostEnvironment  func() []string
}

// NewShellExecutor constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, options ...ExecutorOption) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	executor := &ShellExecutor{
		logger:           logger,
		runner:           runner,
		resolver:         resolver.NewResolver(nil),
		target:           platform.Current(),
		observer:         noopCommandEventObserver{},
		messageFormatter: CommandMessageFormatter{},
		hostEnvironment:  os.Environ,
	}
	for _, option := range options {
		option(executor)
	}
	return executor, nil
}

// Resolve finds the executable the request would run without launching it.
func (executor *ShellExecutor) Resolve(request InvocationRequest) (resolver.ResolvedExecutable, error) {
	_, searchSpec := executor.searchContext(request)
	resolvedExecutable, found := executor.resolver.Resolve(request.Name, searchSpec)
	if !found {
		return resolver.ResolvedExecutable{}, &ExecutableNotFoundError{Name: request.Name}
	}
	return resolvedExecutable, nil
}

// Prepare resolves the request and builds the launch request without running it.
// Resolution, escaping and interpreter failures are reported here.
func (executor *ShellExecutor) Prepare(request InvocationRequest) (LaunchRequest, error) {
	stdioMode, stdioError := ParseStdioMode(string(request.stdioMode()))
	if stdioError != nil {
		return LaunchRequest{}, stdioError
	}

	variables, searchSpec := executor.searchContext(request)
	resolvedExecutable, found := executor.resolver.Resolve(request.Name, searchSpec)
	if !found {
		return LaunchRequest{}, &ExecutableNotFoundError{Name: request.Name}
	}

	planner := launchPlanner{resolver: executor.resolver, target: executor.target}
	launchPlan, planError := planner.plan(resolvedExecutable, request.Arguments, variables, searchSpec)
	if planError != nil {
		return LaunchRequest{}, planError
	}

	launchRequest := LaunchRequest{
		Plan:          launchPlan,
		Environment:   variables.Pairs(),
		StdioMode:     stdioMode,
		StandardInput: append([]byte(nil), request.StandardInput...),
	}
	if len(request.WorkingDirectory) > 0 {
		launchRequest.WorkingDirectory = searchSpec.WorkingDirectory
	}
	return launchRequest, nil
}

// Execute runs the request to completion. A non-zero exit status or a
// terminating signal is reported in the result with a nil error; errors are
// returned only when no process could be run.
func (executor *ShellExecutor) Execute(executionContext context.Context, request InvocationRequest) (ExecutionResult, error) {
	launchRequest, prepareError := executor.Prepare(request)
	if prepareError != nil {
		executor.reportFailure(request, prepareError, nil)
		return ExecutionResult{}, prepareError
	}

	fields := executor.launchFields(request, launchRequest)
	executor.observer.CommandStarted(request)
	executor.logger.Info(executor.messageFormatter.BuildStartedMessage(request), fields...)

	startTime := time.Now()
	executionResult, runError := executor.runner.Run(executionContext, launchRequest)
	if executionResult.Duration == 0 {
		executionResult.Duration = time.Since(startTime)
	}
	executionResult.Executable = launchRequest.Plan.Executable

	if runError != nil {
		executor.reportFailure(request, runError, fields)
		return executionResult, runError
	}

	completionFields := append(fields,
		zap.Int(exitCodeFieldNameConstant, executionResult.ExitCode),
		zap.Duration(durationFieldNameConstant, executionResult.Duration),
	)
	if executionResult.Signaled() {
		completionFields = append(completionFields, zap.String(signalFieldNameConstant, executionResult.Signal))
	}

	executor.observer.CommandCompleted(request, executionResult)
	completedMessage := executor.messageFormatter.BuildCompletedMessage(request, executionResult)
	if executionResult.Succeeded() {
		executor.logger.Info(completedMessage, completionFields...)
	} else {
		executor.logger.Warn(completedMessage, completionFields...)
	}

	return executionResult, nil
}

func (executor *ShellExecutor) searchContext(request InvocationRequest) (environment.Environment, resolver.SearchSpec) {
	variables := executor.environmentFor(request)
	workingDirectory := request.WorkingDirectory
	if len(workingDirectory) == 0 {
		if currentDirectory, currentDirectoryError := os.Getwd(); currentDirectoryError == nil {
			workingDirectory = currentDirectory
		}
	}
	return variables, executor.resolver.SearchSpecFor(variables, workingDirectory, executor.target)
}

func (executor *ShellExecutor) environmentFor(request InvocationRequest) environment.Environment {
	caseInsensitive := executor.target.CaseInsensitiveEnvironmentKeys
	variables := environment.New(caseInsensitive)
	if !request.IsolateEnvironment {
		variables = environment.FromPairs(executor.hostEnvironment(), caseInsensitive)
	}
	return variables.WithOverrides(request.EnvironmentVariables)
}

func (executor *ShellExecutor) launchFields(request InvocationRequest, launchRequest LaunchRequest) []zap.Field {
	return []zap.Field{
		zap.String(commandNameFieldNameConstant, request.Name),
		zap.Strings(argumentsFieldNameConstant, request.Arguments),
		zap.String(resolvedPathFieldNameConstant, launchRequest.Plan.Executable.Path),
		zap.Stringer(invocationStyleFieldNameConstant, launchRequest.Plan.Style()),
		zap.String(workingDirectoryFieldNameConstant, launchRequest.WorkingDirectory),
		zap.String(stdioModeFieldNameConstant, string(launchRequest.StdioMode)),
	}
}

func (executor *ShellExecutor) reportFailure(request InvocationRequest, failure error, fields []zap.Field) {
	if fields == nil {
		fields = []zap.Field{
			zap.String(commandNameFieldNameConstant, request.Name),
			zap.Strings(argumentsFieldNameConstant, request.Arguments),
			zap.String(workingDirectoryFieldNameConstant, request.WorkingDirectory),
		}
	}
	executor.observer.CommandExecutionFailed(request, failure)
	executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(request, failure), append(fields, zap.Error(failure))...)
}
