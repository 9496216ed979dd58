package invoke

import (
	"strings"

	"github.com/temirov/safeexec/internal/execshell"
)

const (
	configurationStdioKeyConstant              = "stdio"
	configurationInheritEnvironmentKeyConstant = "inherit_environment"
	configurationWorkingDirectoryKeyConstant   = "working_directory"
	configurationEnvironmentKeyConstant        = "environment"
	configurationExtraSearchPathsKeyConstant   = "extra_search_paths"
	configurationFormatKeyConstant             = "format"
	configurationKeySeparatorConstant          = "."
)

// InvocationConfiguration describes configured defaults for launching tools.
type InvocationConfiguration struct {
	Stdio              string   `mapstructure:"stdio"`
	InheritEnvironment bool     `mapstructure:"inherit_environment"`
	WorkingDirectory   string   `mapstructure:"working_directory"`
	Environment        []string `mapstructure:"environment"`
	ExtraSearchPaths   []string `mapstructure:"extra_search_paths"`
}

// OutputConfiguration describes how command results are rendered.
type OutputConfiguration struct {
	Format string `mapstructure:"format"`
}

// DefaultInvocationConfiguration returns baseline invocation settings.
func DefaultInvocationConfiguration() InvocationConfiguration {
	return InvocationConfiguration{
		Stdio:              string(execshell.StdioBuffer),
		InheritEnvironment: true,
		WorkingDirectory:   "",
		Environment:        []string{},
		ExtraSearchPaths:   []string{},
	}
}

// DefaultOutputConfiguration returns baseline output settings.
func DefaultOutputConfiguration() OutputConfiguration {
	return OutputConfiguration{Format: string(OutputFormatText)}
}

// DefaultConfigurationValues produces Viper defaults for the invocation and output sections.
func DefaultConfigurationValues(invocationKey string, outputKey string) map[string]any {
	invocationDefaults := DefaultInvocationConfiguration()
	outputDefaults := DefaultOutputConfiguration()
	return map[string]any{
		invocationKey + configurationKeySeparatorConstant + configurationStdioKeyConstant:              invocationDefaults.Stdio,
		invocationKey + configurationKeySeparatorConstant + configurationInheritEnvironmentKeyConstant: invocationDefaults.InheritEnvironment,
		invocationKey + configurationKeySeparatorConstant + configurationWorkingDirectoryKeyConstant:   invocationDefaults.WorkingDirectory,
		invocationKey + configurationKeySeparatorConstant + configurationEnvironmentKeyConstant:        invocationDefaults.Environment,
		invocationKey + configurationKeySeparatorConstant + configurationExtraSearchPathsKeyConstant:   invocationDefaults.ExtraSearchPaths,
		outputKey + configurationKeySeparatorConstant + configurationFormatKeyConstant:                 outputDefaults.Format,
	}
}

func (configuration InvocationConfiguration) sanitize() InvocationConfiguration {
	sanitized := configuration
	sanitized.Stdio = strings.ToLower(strings.TrimSpace(configuration.Stdio))
	if len(sanitized.Stdio) == 0 {
		sanitized.Stdio = string(execshell.StdioBuffer)
	}
	sanitized.WorkingDirectory = strings.TrimSpace(configuration.WorkingDirectory)
	sanitized.Environment = append([]string{}, configuration.Environment...)
	sanitized.ExtraSearchPaths = append([]string{}, configuration.ExtraSearchPaths...)
	return sanitized
}

func (configuration OutputConfiguration) sanitize() OutputConfiguration {
	sanitized := configuration
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(OutputFormatText)
	}
	return sanitized
}
