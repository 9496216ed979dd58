package invoke

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/safeexec/internal/execshell"
	"github.com/temirov/safeexec/internal/platform"
	"github.com/temirov/safeexec/internal/utils/flags"
)

const (
	runUseConstant                         = "run NAME [ARGS...]"
	runShortDescription                    = "Resolve a tool and run it with arguments passed unchanged"
	runLongDescription                     = "run resolves NAME the way the platform shell would and runs it to completion. Arguments are delivered byte for byte; batch scripts on Windows are launched through cmd.exe with escaped arguments, and arguments that cannot be escaped safely are rejected before anything starts."
	runStdioFlagName                       = "stdio"
	runStdioFlagDescription                = "How the tool's standard output and error are handled"
	runEnvironmentFlagName                 = "env"
	runEnvironmentFlagDescription          = "Environment variable override KEY=VALUE (repeatable)"
	runNoInheritEnvironmentFlagName        = "no-inherit-environment"
	runNoInheritEnvironmentFlagDescription = "Start the tool with only the configured and --env variables"
)

var stdioModeChoices = []string{string(execshell.StdioBuffer), string(execshell.StdioDiscard), string(execshell.StdioInherit)}

// RunCommandBuilder assembles the run command.
type RunCommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        InvocationConfigurationProvider
	OutputConfigurationProvider  OutputConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ExecutorFactory              ExecutorFactory
}

// Build constructs the run command.
func (builder *RunCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   runUseConstant,
		Short: runShortDescription,
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().SetInterspersed(false)
	flags.AddChoiceFlag(command.Flags(), new(string), runStdioFlagName, string(execshell.StdioBuffer), stdioModeChoices, runStdioFlagDescription)
	command.Flags().StringArray(runEnvironmentFlagName, nil, runEnvironmentFlagDescription)
	command.Flags().String(workingDirectoryFlagName, "", workingDirectoryFlagDescription)
	command.Flags().Bool(runNoInheritEnvironmentFlagName, false, runNoInheritEnvironmentFlagDescription)
	flags.AddChoiceFlag(command.Flags(), new(string), outputFlagName, string(OutputFormatText), outputFormatChoices, outputFlagDescription)

	return command, nil
}

func (builder *RunCommandBuilder) dependencies() commandDependencies {
	return commandDependencies{
		LoggerProvider:               builder.LoggerProvider,
		InvocationConfiguration:      builder.ConfigurationProvider,
		OutputConfiguration:          builder.OutputConfigurationProvider,
		HumanReadableLoggingProvider: builder.HumanReadableLoggingProvider,
		ExecutorFactory:              builder.ExecutorFactory,
	}
}

func (builder *RunCommandBuilder) run(command *cobra.Command, arguments []string) error {
	dependencies := builder.dependencies()
	settings, settingsError := builder.parseSettings(command, dependencies.invocationConfiguration())
	if settingsError != nil {
		return settingsError
	}

	outputFormat, formatError := resolveOutputFormat(command, dependencies.outputConfiguration())
	if formatError != nil {
		return formatError
	}

	commandName := arguments[0]
	request, requestError := buildInvocationRequest(commandName, arguments[1:], settings, platform.Current(), currentHostEnvironment())
	if requestError != nil {
		return requestError
	}

	executor, executorError := dependencies.resolveExecutor(command.OutOrStdout(), command.ErrOrStderr(), command.InOrStdin())
	if executorError != nil {
		return executorError
	}

	result, executionError := executor.Execute(command.Context(), request)
	if executionError != nil {
		return fmt.Errorf(runFailedTemplateConstant, commandName, executionError)
	}

	if renderError := renderExecution(command.OutOrStdout(), command.ErrOrStderr(), outputFormat, request, result); renderError != nil {
		return renderError
	}

	if !result.Succeeded() {
		return ExitStatusError{Command: commandName, Code: result.ExitCode, Signal: result.Signal}
	}
	return nil
}

func (builder *RunCommandBuilder) parseSettings(command *cobra.Command, configuration InvocationConfiguration) (invocationSettings, error) {
	if command.Flags().Changed(runStdioFlagName) {
		configuration.Stdio, _ = command.Flags().GetString(runStdioFlagName)
	}
	if command.Flags().Changed(workingDirectoryFlagName) {
		configuration.WorkingDirectory, _ = command.Flags().GetString(workingDirectoryFlagName)
	}
	if command.Flags().Changed(runNoInheritEnvironmentFlagName) {
		noInherit, _ := command.Flags().GetBool(runNoInheritEnvironmentFlagName)
		configuration.InheritEnvironment = !noInherit
	}
	if command.Flags().Changed(runEnvironmentFlagName) {
		flagAssignments, _ := command.Flags().GetStringArray(runEnvironmentFlagName)
		configuration.Environment = append(configuration.Environment, flagAssignments...)
	}
	return newInvocationSettings(configuration)
}

func resolveOutputFormat(command *cobra.Command, configuration OutputConfiguration) (OutputFormat, error) {
	formatValue := configuration.Format
	if command.Flags().Changed(outputFlagName) {
		formatValue, _ = command.Flags().GetString(outputFlagName)
	}
	return ParseOutputFormat(formatValue)
}
