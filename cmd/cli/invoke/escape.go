package invoke

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/safeexec/internal/escaper"
	"github.com/temirov/safeexec/internal/utils/flags"
)

const (
	escapeUseConstant               = "escape [ARGS...]"
	escapeShortDescription          = "Print arguments escaped for a command line"
	escapeLongDescription           = "escape renders its arguments as a command line fragment. The cmd style produces the quoting cmd.exe and the Microsoft C runtime read back as the original arguments and rejects characters that cannot be escaped; the posix style produces quoting for POSIX shells."
	escapeStyleFlagName             = "style"
	escapeStyleFlagDescription      = "Quoting style"
	escapeVerifyFlagName            = "verify"
	escapeVerifyFlagDescription     = "Split the escaped line again and fail unless it yields the original arguments"
	escapeStyleCommandShellConstant = "cmd"
	escapeStylePOSIXConstant        = "posix"
	commandLineJoinSeparator        = " "
)

var escapeStyleChoices = []string{escapeStyleCommandShellConstant, escapeStylePOSIXConstant}

// EscapeCommandBuilder assembles the escape command.
type EscapeCommandBuilder struct{}

// Build constructs the escape command.
func (builder *EscapeCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   escapeUseConstant,
		Short: escapeShortDescription,
		Long:  escapeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	command.Flags().SetInterspersed(false)
	flags.AddChoiceFlag(command.Flags(), new(string), escapeStyleFlagName, escapeStyleCommandShellConstant, escapeStyleChoices, escapeStyleFlagDescription)
	command.Flags().Bool(escapeVerifyFlagName, false, escapeVerifyFlagDescription)

	return command, nil
}

func (builder *EscapeCommandBuilder) run(command *cobra.Command, arguments []string) error {
	style, _ := command.Flags().GetString(escapeStyleFlagName)
	verify, _ := command.Flags().GetBool(escapeVerifyFlagName)

	commandLine, splitCommandLine, escapeError := escapeArguments(style, arguments)
	if escapeError != nil {
		return fmt.Errorf(escapeFailedTemplateConstant, escapeError)
	}

	if verify {
		splitArguments, splitError := splitCommandLine(commandLine)
		if splitError != nil {
			return fmt.Errorf(escapeFailedTemplateConstant, splitError)
		}
		if !slices.Equal(normalizeArguments(arguments), normalizeArguments(splitArguments)) {
			return fmt.Errorf(verificationFailedTemplateConstant, commandLine, splitArguments, arguments)
		}
	}

	_, writeError := fmt.Fprintf(command.OutOrStdout(), textLineTemplateConstant, commandLine)
	return writeError
}

type commandLineSplitter func(commandLine string) ([]string, error)

func escapeArguments(style string, arguments []string) (string, commandLineSplitter, error) {
	if strings.EqualFold(style, escapeStylePOSIXConstant) {
		commandLine, quoteError := escaper.QuotePOSIX(arguments)
		return commandLine, escaper.SplitPOSIX, quoteError
	}

	escapedArguments, escapeError := escaper.EscapeArgumentsForShell(arguments)
	if escapeError != nil {
		return "", nil, escapeError
	}
	splitter := func(commandLine string) ([]string, error) {
		return escaper.SplitCommandLine(commandLine), nil
	}
	return strings.Join(escapedArguments, commandLineJoinSeparator), splitter, nil
}

func normalizeArguments(arguments []string) []string {
	if arguments == nil {
		return []string{}
	}
	return arguments
}
