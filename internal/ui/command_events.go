package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/safeexec/internal/execshell"
)

// ConsoleCommandEventLogger renders invocation lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by logging start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(request execshell.InvocationRequest) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(request))
}

// CommandCompleted implements execshell.CommandEventObserver by logging completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(request execshell.InvocationRequest, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	message := eventLogger.formatter.BuildCompletedMessage(request, result)
	if result.Succeeded() {
		eventLogger.logger.Info(message)
		return
	}
	eventLogger.logger.Warn(message)
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging failures that produced no result.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(request execshell.InvocationRequest, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(request, failure))
}
