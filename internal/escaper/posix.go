package escaper

import (
	"strings"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// QuotePOSIX renders an argument vector as a bash-compatible command line for
// display. It fails only for arguments containing NUL bytes.
func QuotePOSIX(arguments []string) (string, error) {
	quotedArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		quotedArgument, quoteError := syntax.Quote(argument, syntax.LangBash)
		if quoteError != nil {
			return "", quoteError
		}
		quotedArguments = append(quotedArguments, quotedArgument)
	}
	return strings.Join(quotedArguments, commandLineSeparatorConstant), nil
}

// SplitPOSIX parses a POSIX shell command line into the fields a shell would
// pass to a program. Parameter expansions resolve to empty strings, so the
// result never depends on the caller's environment.
func SplitPOSIX(commandLine string) ([]string, error) {
	return shell.Fields(commandLine, func(string) string { return "" })
}
