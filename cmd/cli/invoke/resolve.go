package invoke

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/safeexec/internal/platform"
	"github.com/temirov/safeexec/internal/utils/flags"
)

const (
	resolveUseConstant      = "resolve NAME"
	resolveShortDescription = "Show which file a command name resolves to"
	resolveLongDescription  = "resolve searches PATH the way the platform shell would, honoring PATHEXT on Windows, and prints the file that run would launch without starting it."
)

// ResolveCommandBuilder assembles the resolve command.
type ResolveCommandBuilder struct {
	LoggerProvider              LoggerProvider
	ConfigurationProvider       InvocationConfigurationProvider
	OutputConfigurationProvider OutputConfigurationProvider
	ExecutorFactory             ExecutorFactory
}

// Build constructs the resolve command.
func (builder *ResolveCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   resolveUseConstant,
		Short: resolveShortDescription,
		Long:  resolveLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(workingDirectoryFlagName, "", workingDirectoryFlagDescription)
	flags.AddChoiceFlag(command.Flags(), new(string), outputFlagName, string(OutputFormatText), outputFormatChoices, outputFlagDescription)

	return command, nil
}

func (builder *ResolveCommandBuilder) run(command *cobra.Command, arguments []string) error {
	dependencies := commandDependencies{
		LoggerProvider:          builder.LoggerProvider,
		InvocationConfiguration: builder.ConfigurationProvider,
		OutputConfiguration:     builder.OutputConfigurationProvider,
		ExecutorFactory:         builder.ExecutorFactory,
	}

	configuration := dependencies.invocationConfiguration()
	if command.Flags().Changed(workingDirectoryFlagName) {
		configuration.WorkingDirectory, _ = command.Flags().GetString(workingDirectoryFlagName)
	}
	settings, settingsError := newInvocationSettings(configuration)
	if settingsError != nil {
		return settingsError
	}

	outputFormat, formatError := resolveOutputFormat(command, dependencies.outputConfiguration())
	if formatError != nil {
		return formatError
	}

	commandName := arguments[0]
	request, requestError := buildInvocationRequest(commandName, nil, settings, platform.Current(), currentHostEnvironment())
	if requestError != nil {
		return requestError
	}

	executor, executorError := dependencies.resolveExecutor(command.OutOrStdout(), command.ErrOrStderr(), command.InOrStdin())
	if executorError != nil {
		return executorError
	}

	resolvedExecutable, resolveError := executor.Resolve(request)
	if resolveError != nil {
		return fmt.Errorf(resolveFailedTemplateConstant, commandName, resolveError)
	}

	return renderResolution(command.OutOrStdout(), outputFormat, newResolutionReport(commandName, resolvedExecutable))
}
