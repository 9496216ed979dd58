package escaper

import "strings"

// SplitCommandLine tokenizes the argument portion of a command line the way
// the Microsoft C runtime builds argv:
//
//   - space and tab separate arguments outside quotes;
//   - 2N backslashes before a quote yield N backslashes and the quote toggles quoting;
//   - 2N+1 backslashes before a quote yield N backslashes and a literal quote;
//   - backslashes not followed by a quote are literal;
//   - a doubled quote inside a quoted region yields a literal quote.
//
// The program-name token follows different rules and must not be included.
func SplitCommandLine(commandLine string) []string {
	arguments := []string{}
	var current strings.Builder
	insideArgument := false
	insideQuotes := false

	for index := 0; index < len(commandLine); {
		character := commandLine[index]

		if !insideQuotes && (character == ' ' || character == '\t') {
			if insideArgument {
				arguments = append(arguments, current.String())
				current.Reset()
				insideArgument = false
			}
			index++
			continue
		}

		insideArgument = true

		switch character {
		case backslashCharacterConstant:
			runEnd := index
			for runEnd < len(commandLine) && commandLine[runEnd] == backslashCharacterConstant {
				runEnd++
			}
			runLength := runEnd - index
			if runEnd < len(commandLine) && commandLine[runEnd] == quoteCharacterConstant {
				current.WriteString(strings.Repeat(backslashStringConstant, runLength/2))
				if runLength%2 == 1 {
					current.WriteByte(quoteCharacterConstant)
					index = runEnd + 1
					continue
				}
				index = runEnd
				continue
			}
			current.WriteString(strings.Repeat(backslashStringConstant, runLength))
			index = runEnd
		case quoteCharacterConstant:
			if insideQuotes && index+1 < len(commandLine) && commandLine[index+1] == quoteCharacterConstant {
				current.WriteByte(quoteCharacterConstant)
				index += 2
				continue
			}
			insideQuotes = !insideQuotes
			index++
		default:
			current.WriteByte(character)
			index++
		}
	}

	if insideArgument {
		arguments = append(arguments, current.String())
	}

	return arguments
}
