package escaper

import (
	"strings"
)

const (
	reservedShellCharactersConstant = "%^&|<>\r\n"
	argumentWhitespaceConstant      = " \t"
	quoteCharacterConstant          = '"'
	backslashCharacterConstant      = '\\'
	backslashStringConstant         = `\`
)

// ReservedCharacters lists the characters cmd.exe reinterprets even inside
// quotes.
func ReservedCharacters() string {
	return reservedShellCharactersConstant
}

// ValidateForShell returns an UnescapableArgumentError for the first argument
// containing a reserved character.
func ValidateForShell(arguments []string) error {
	for _, argument := range arguments {
		if validationError := validateArgument(argument); validationError != nil {
			return validationError
		}
	}
	return nil
}

// EscapeForShell encodes one argument so that, after cmd.exe hands the command
// line to the script's C runtime, it is reconstructed unchanged.
func EscapeForShell(argument string) (string, error) {
	if validationError := validateArgument(argument); validationError != nil {
		return "", validationError
	}
	return quoteArgument(argument), nil
}

// EscapeArgumentsForShell validates every argument before escaping any of them.
func EscapeArgumentsForShell(arguments []string) ([]string, error) {
	if validationError := ValidateForShell(arguments); validationError != nil {
		return nil, validationError
	}
	escapedArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		escapedArguments = append(escapedArguments, quoteArgument(argument))
	}
	return escapedArguments, nil
}

func validateArgument(argument string) error {
	reservedIndex := strings.IndexAny(argument, reservedShellCharactersConstant)
	if reservedIndex < 0 {
		return nil
	}
	return &UnescapableArgumentError{
		Character: argument[reservedIndex : reservedIndex+1],
		Argument:  argument,
	}
}

// quoteArgument scans once, holding back runs of backslashes until it learns
// whether a quote follows them. A run before a quote becomes 2N+1 backslashes
// and an escaped quote. A run that ends a quoted argument is doubled so the
// closing quote survives; any other run is copied unchanged.
func quoteArgument(argument string) string {
	requiresQuotes := len(argument) == 0 || strings.ContainsAny(argument, argumentWhitespaceConstant)

	var builder strings.Builder
	builder.Grow(len(argument) + 2)
	if requiresQuotes {
		builder.WriteByte(quoteCharacterConstant)
	}

	pendingBackslashes := 0
	for index := 0; index < len(argument); index++ {
		character := argument[index]
		switch character {
		case backslashCharacterConstant:
			pendingBackslashes++
		case quoteCharacterConstant:
			builder.WriteString(strings.Repeat(backslashStringConstant, 2*pendingBackslashes+1))
			builder.WriteByte(quoteCharacterConstant)
			pendingBackslashes = 0
		default:
			builder.WriteString(strings.Repeat(backslashStringConstant, pendingBackslashes))
			builder.WriteByte(character)
			pendingBackslashes = 0
		}
	}

	if requiresQuotes {
		builder.WriteString(strings.Repeat(backslashStringConstant, 2*pendingBackslashes))
		builder.WriteByte(quoteCharacterConstant)
	} else {
		builder.WriteString(strings.Repeat(backslashStringConstant, pendingBackslashes))
	}

	return builder.String()
}
