//go:build windows

package execshell_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/safeexec/internal/escaper"
	"github.com/temirov/safeexec/internal/execshell"
	"github.com/temirov/safeexec/internal/resolver"
)

const (
	echoWrapperNameConstant       = "npm-binary-wrapper"
	echoWrapperFileNameConstant   = echoWrapperNameConstant + ".cmd"
	echoWrapperScriptConstant     = "@echo off\r\necho(%*\r\n"
	exitWrapperNameConstant       = "exit-seven"
	exitWrapperFileNameConstant   = exitWrapperNameConstant + ".bat"
	exitWrapperScriptConstant     = "@echo off\r\n>&2 echo failing\r\nexit /b 7\r\n"
	batchOutputLineEndingConstant = "\r\n"
)

func newBatchExecutor(testInstance *testing.T) *execshell.ShellExecutor {
	testInstance.Helper()
	searchDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(searchDirectory, echoWrapperFileNameConstant), []byte(echoWrapperScriptConstant), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(searchDirectory, exitWrapperFileNameConstant), []byte(exitWrapperScriptConstant), 0o644))

	hostEnvironment := append(os.Environ(), "PATH="+searchDirectory+string(os.PathListSeparator)+os.Getenv("PATH"))
	executor, creationError := execshell.NewShellExecutor(
		zap.NewNop(),
		execshell.NewOSCommandRunner(),
		execshell.WithHostEnvironment(staticEnvironment(hostEnvironment...)),
	)
	require.NoError(testInstance, creationError)
	return executor
}

func TestBatchScriptReceivesArgumentsUnchanged(testInstance *testing.T) {
	executor := newBatchExecutor(testInstance)

	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "plain", arguments: []string{"alpha", "beta"}},
		{name: "whitespace", arguments: []string{"a b", "tab\there", " leading"}},
		{name: "quotes", arguments: []string{`say "hi"`, `\"\d`, `""`}},
		{name: "backslashes", arguments: []string{`C:\Program Files\`, `C:\dir\`, `a\\b`}},
		{name: "empty_argument", arguments: []string{"first", "", "last"}},
		{name: "shell_lookalikes", arguments: []string{"!TEST_VAR!", "(x)", "$(echo injected)", "key=value"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executionResult, executionError := executor.Execute(context.Background(), execshell.InvocationRequest{
				Name:      echoWrapperNameConstant,
				Arguments: testCase.arguments,
			})
			require.NoError(testInstance, executionError)
			require.True(testInstance, executionResult.Succeeded())
			require.Equal(testInstance, resolver.InvocationStyleShellCommandLine, executionResult.Executable.Style)
			require.True(testInstance, strings.EqualFold(echoWrapperFileNameConstant, filepath.Base(executionResult.Executable.Path)))

			echoedCommandLine := strings.TrimSuffix(string(executionResult.StandardOutput), batchOutputLineEndingConstant)
			require.Equal(testInstance, testCase.arguments, escaper.SplitCommandLine(echoedCommandLine))
		})
	}
}

func TestBatchScriptReportsExitStatus(testInstance *testing.T) {
	executor := newBatchExecutor(testInstance)

	executionResult, executionError := executor.Execute(context.Background(), execshell.InvocationRequest{Name: exitWrapperNameConstant})
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, 7, executionResult.ExitCode)
	require.Equal(testInstance, "failing"+batchOutputLineEndingConstant, string(executionResult.StandardError))
}

func TestBatchScriptRejectsReservedCharactersBeforeLaunch(testInstance *testing.T) {
	executor := newBatchExecutor(testInstance)

	for _, argument := range []string{"abc%123", "abc^123", "a&b", "a|b", "a<b", "a>b", "line\nbreak"} {
		_, executionError := executor.Execute(context.Background(), execshell.InvocationRequest{
			Name:      echoWrapperNameConstant,
			Arguments: []string{argument},
		})
		require.ErrorIs(testInstance, executionError, escaper.ErrUnescapableArgument, argument)
	}
}
