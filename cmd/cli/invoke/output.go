package invoke

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/safeexec/internal/execshell"
	"github.com/temirov/safeexec/internal/resolver"
)

const (
	outputFormatTextConstant = "text"
	outputFormatYAMLConstant = "yaml"
	outputFormatJSONConstant = "json"
	jsonIndentConstant       = "  "
	yamlIndentConstant       = 2
	textLineTemplateConstant = "%s\n"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = OutputFormat(outputFormatTextConstant)
	OutputFormatYAML OutputFormat = OutputFormat(outputFormatYAMLConstant)
	OutputFormatJSON OutputFormat = OutputFormat(outputFormatJSONConstant)
)

var outputFormatChoices = []string{outputFormatTextConstant, outputFormatYAMLConstant, outputFormatJSONConstant}

// ParseOutputFormat converts a configured value into an OutputFormat.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", OutputFormatText:
		return OutputFormatText, nil
	case OutputFormatYAML:
		return OutputFormatYAML, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf(unsupportedOutputFormatTemplate, value)
	}
}

// ResolutionReport describes the outcome of the resolve command.
type ResolutionReport struct {
	Name            string `yaml:"name" json:"name"`
	ResolvedPath    string `yaml:"resolved_path" json:"resolved_path"`
	ShellScript     bool   `yaml:"shell_script" json:"shell_script"`
	InvocationStyle string `yaml:"invocation_style" json:"invocation_style"`
}

// ExecutionReport describes the outcome of the run command.
type ExecutionReport struct {
	Command              string   `yaml:"command" json:"command"`
	Arguments            []string `yaml:"arguments" json:"arguments"`
	ResolvedPath         string   `yaml:"resolved_path" json:"resolved_path"`
	InvocationStyle      string   `yaml:"invocation_style" json:"invocation_style"`
	ExitCode             int      `yaml:"exit_code" json:"exit_code"`
	Signal               string   `yaml:"signal,omitempty" json:"signal,omitempty"`
	DurationMilliseconds int64    `yaml:"duration_ms" json:"duration_ms"`
	StandardOutput       string   `yaml:"stdout" json:"stdout"`
	StandardError        string   `yaml:"stderr" json:"stderr"`
}

func newResolutionReport(name string, executable resolver.ResolvedExecutable) ResolutionReport {
	return ResolutionReport{
		Name:            name,
		ResolvedPath:    executable.Path,
		ShellScript:     executable.ShellScript,
		InvocationStyle: executable.Style.String(),
	}
}

func newExecutionReport(request execshell.InvocationRequest, result execshell.ExecutionResult) ExecutionReport {
	arguments := append([]string{}, request.Arguments...)
	return ExecutionReport{
		Command:              request.Name,
		Arguments:            arguments,
		ResolvedPath:         result.Executable.Path,
		InvocationStyle:      result.Executable.Style.String(),
		ExitCode:             result.ExitCode,
		Signal:               result.Signal,
		DurationMilliseconds: result.Duration.Milliseconds(),
		StandardOutput:       string(result.StandardOutput),
		StandardError:        string(result.StandardError),
	}
}

func renderStructuredReport(writer io.Writer, format OutputFormat, report any) error {
	switch format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(yamlIndentConstant)
		if encodeError := encoder.Encode(report); encodeError != nil {
			return encodeError
		}
		return encoder.Close()
	case OutputFormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", jsonIndentConstant)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(report)
	default:
		return fmt.Errorf(unsupportedOutputFormatTemplate, format)
	}
}

func renderResolution(writer io.Writer, format OutputFormat, report ResolutionReport) error {
	if format == OutputFormatText {
		_, writeError := fmt.Fprintf(writer, textLineTemplateConstant, report.ResolvedPath)
		return writeError
	}
	return renderStructuredReport(writer, format, report)
}

// renderExecution writes captured output through unchanged in text format.
func renderExecution(standardOutput io.Writer, standardError io.Writer, format OutputFormat, request execshell.InvocationRequest, result execshell.ExecutionResult) error {
	if format != OutputFormatText {
		return renderStructuredReport(standardOutput, format, newExecutionReport(request, result))
	}
	if _, writeError := standardOutput.Write(result.StandardOutput); writeError != nil {
		return writeError
	}
	_, writeError := standardError.Write(result.StandardError)
	return writeError
}
