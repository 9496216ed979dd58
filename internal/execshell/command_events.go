package execshell

// CommandEventObserver receives lifecycle notifications for tool invocations.
type CommandEventObserver interface {
	// CommandStarted notifies observers that the resolved program is about to be launched.
	CommandStarted(request InvocationRequest)
	// CommandCompleted notifies observers that the child exited and supplies the result.
	CommandCompleted(request InvocationRequest, result ExecutionResult)
	// CommandExecutionFailed reports failures that prevented an execution result,
	// such as resolution, escaping or spawn errors.
	CommandExecutionFailed(request InvocationRequest, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(InvocationRequest) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(InvocationRequest, ExecutionResult) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(InvocationRequest, error) {}
