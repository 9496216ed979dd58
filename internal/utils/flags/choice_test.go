package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "buffer",
			choices:        []string{"buffer", "discard", "inherit"},
			description:    "Choose how child output is handled.",
			expectedOutput: "`<BUFFER|discard|inherit>` Choose how child output is handled.",
		},
		{
			name:           "DefaultSecondChoice",
			defaultChoice:  "posix",
			choices:        []string{"cmd", "posix"},
			description:    "Quoting style.",
			expectedOutput: "`<cmd|POSIX>` Quoting style.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "text",
			choices:        []string{"text", "yaml", "json"},
			description:    "",
			expectedOutput: "`<TEXT|yaml|json>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "yaml",
			choices:        []string{"yaml", "yaml", "json", "json"},
			description:    "Select between options.",
			expectedOutput: "`<YAML|json>` Select between options.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  "cmd",
			choices:        []string{" cmd ", " posix "},
			description:    "Pick a style.",
			expectedOutput: "`<CMD|posix>` Pick a style.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestAddChoiceFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedValue   string
		expectedChanged bool
		expectError     bool
	}{
		{name: "Default", arguments: []string{}, expectedValue: "text"},
		{name: "Explicit", arguments: []string{"--output", "json"}, expectedValue: "json", expectedChanged: true},
		{name: "CaseInsensitive", arguments: []string{"--output=YAML"}, expectedValue: "yaml", expectedChanged: true},
		{name: "Rejected", arguments: []string{"--output", "xml"}, expectedValue: "text", expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}

			var outputFormat string
			AddChoiceFlag(command.Flags(), &outputFormat, "output", "text", []string{"text", "yaml", "json"}, "Output format")

			parseError := command.ParseFlags(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
			} else {
				require.NoError(t, parseError)
			}

			require.Equal(t, testCase.expectedValue, outputFormat)
			flag := command.Flags().Lookup("output")
			require.NotNil(t, flag)
			require.Equal(t, testCase.expectedChanged, flag.Changed)
		})
	}
}
