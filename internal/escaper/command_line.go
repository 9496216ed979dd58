package escaper

import (
	"strings"
)

const (
	disableAutoRunSwitchConstant     = "/d"
	stripOuterQuotesSwitchConstant   = "/s"
	runAndExitSwitchConstant         = "/c"
	commandLineSeparatorConstant     = " "
	quoteStringConstant              = `"`
	unquotablePathCharactersConstant = "%\"\r\n"
)

// BuildShellCommandLine assembles the complete command line that runs a batch
// script through the command shell:
//
//	"<interpreter>" /d /s /c ""<script>" <escaped arguments>"
//
// /d skips AutoRun commands, /s makes cmd.exe strip exactly the outermost pair
// of quotes, and /c exits once the script finishes.
func BuildShellCommandLine(interpreterPath string, scriptPath string, arguments []string) (string, error) {
	if unquotableIndex := strings.IndexAny(scriptPath, unquotablePathCharactersConstant); unquotableIndex >= 0 {
		return "", &UnescapableArgumentError{
			Character: scriptPath[unquotableIndex : unquotableIndex+1],
			Argument:  scriptPath,
		}
	}

	escapedArguments, escapeError := EscapeArgumentsForShell(arguments)
	if escapeError != nil {
		return "", escapeError
	}

	innerParts := make([]string, 0, len(escapedArguments)+1)
	innerParts = append(innerParts, quoteStringConstant+scriptPath+quoteStringConstant)
	innerParts = append(innerParts, escapedArguments...)
	innerCommand := strings.Join(innerParts, commandLineSeparatorConstant)

	commandLineParts := []string{
		QuoteProgramPath(interpreterPath),
		disableAutoRunSwitchConstant,
		stripOuterQuotesSwitchConstant,
		runAndExitSwitchConstant,
		quoteStringConstant + innerCommand + quoteStringConstant,
	}

	return strings.Join(commandLineParts, commandLineSeparatorConstant), nil
}

// QuoteProgramPath quotes a program path only when it contains whitespace.
// Windows paths cannot contain quotes, and the program-name token is not
// subject to backslash escaping.
func QuoteProgramPath(programPath string) string {
	if len(programPath) > 0 && !strings.ContainsAny(programPath, argumentWhitespaceConstant) {
		return programPath
	}
	return quoteStringConstant + programPath + quoteStringConstant
}
