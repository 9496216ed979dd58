package environment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/safeexec/internal/environment"
)

const (
	testPathKeyConstant          = "PATH"
	testMixedCasePathKeyConstant = "Path"
	testInheritedPathConstant    = "/usr/bin"
	testOverriddenPathConstant   = "/opt/tools"
	testVariableKeyConstant      = "TEST_VAR"
	testVariableValueConstant    = "123"
)

func TestFromPairsParsesAssignments(testInstance *testing.T) {
	parsedEnvironment := environment.FromPairs([]string{
		"PATH=/usr/bin",
		"EMPTY=",
		"EQUALS=a=b",
		"=C:=C:\\work",
		"MALFORMED",
		"",
		"PATH=/bin",
	}, false)

	require.Equal(testInstance, 4, parsedEnvironment.Len())
	require.Equal(testInstance, "/bin", parsedEnvironment.Value(testPathKeyConstant))
	require.Equal(testInstance, "a=b", parsedEnvironment.Value("EQUALS"))
	require.Equal(testInstance, "C:\\work", parsedEnvironment.Value("=C:"))

	emptyValue, emptyPresent := parsedEnvironment.Lookup("EMPTY")
	require.True(testInstance, emptyPresent)
	require.Empty(testInstance, emptyValue)

	_, malformedPresent := parsedEnvironment.Lookup("MALFORMED")
	require.False(testInstance, malformedPresent)
}

func TestWithOverridesKeysComparison(testInstance *testing.T) {
	testCases := []struct {
		name            string
		caseInsensitive bool
		expectedLength  int
		expectedPairs   []string
	}{
		{
			name:            "case_insensitive_keys_collapse",
			caseInsensitive: true,
			expectedLength:  2,
			expectedPairs:   []string{"Path=/opt/tools", "TEST_VAR=123"},
		},
		{
			name:            "case_sensitive_keys_coexist",
			caseInsensitive: false,
			expectedLength:  3,
			expectedPairs:   []string{"PATH=/usr/bin", "Path=/opt/tools", "TEST_VAR=123"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			inherited := environment.FromPairs([]string{testPathKeyConstant + "=" + testInheritedPathConstant}, testCase.caseInsensitive)
			merged := inherited.WithOverrides(map[string]string{
				testMixedCasePathKeyConstant: testOverriddenPathConstant,
				testVariableKeyConstant:      testVariableValueConstant,
				"":                           "ignored",
			})

			require.Equal(testInstance, testCase.expectedLength, merged.Len())
			require.Equal(testInstance, testCase.expectedPairs, merged.Pairs())
			require.Equal(testInstance, testInheritedPathConstant, inherited.Value(testPathKeyConstant))
			require.Equal(testInstance, 1, inherited.Len())
		})
	}
}

func TestLookupHonorsCaseSensitivity(testInstance *testing.T) {
	insensitive := environment.FromMap(map[string]string{testPathKeyConstant: testInheritedPathConstant}, true)
	require.Equal(testInstance, testInheritedPathConstant, insensitive.Value("path"))
	require.True(testInstance, insensitive.CaseInsensitive())

	sensitive := environment.FromMap(map[string]string{testPathKeyConstant: testInheritedPathConstant}, false)
	_, present := sensitive.Lookup("path")
	require.False(testInstance, present)
}

func TestZeroValueEnvironmentIsUsable(testInstance *testing.T) {
	var emptyEnvironment environment.Environment
	require.Zero(testInstance, emptyEnvironment.Len())
	require.Empty(testInstance, emptyEnvironment.Pairs())

	extended := emptyEnvironment.WithOverrides(map[string]string{testVariableKeyConstant: testVariableValueConstant})
	require.Equal(testInstance, map[string]string{testVariableKeyConstant: testVariableValueConstant}, extended.Map())
	require.Zero(testInstance, emptyEnvironment.Len())
}

func TestWithAssignmentsAppliesInOrder(testInstance *testing.T) {
	testCases := []struct {
		name            string
		caseInsensitive bool
		expectedPairs   []string
	}{
		{
			name:            "case_insensitive_later_spelling_wins",
			caseInsensitive: true,
			expectedPairs:   []string{"FOO=flag", "Path=/opt/tools"},
		},
		{
			name:            "case_sensitive_spellings_coexist",
			caseInsensitive: false,
			expectedPairs:   []string{"FOO=flag", "PATH=/usr/bin", "Path=/opt/tools", "foo=configured"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			inherited := environment.FromPairs([]string{testPathKeyConstant + "=" + testInheritedPathConstant}, testCase.caseInsensitive)
			assigned := inherited.WithAssignments([]string{
				"foo=configured",
				"FOO=flag",
				testMixedCasePathKeyConstant + "=" + testOverriddenPathConstant,
				"MALFORMED",
			})

			require.Equal(testInstance, testCase.expectedPairs, assigned.Pairs())
			require.Equal(testInstance, 1, inherited.Len())
		})
	}
}

func TestStoredKeyReportsSpelling(testInstance *testing.T) {
	insensitive := environment.FromPairs([]string{testMixedCasePathKeyConstant + "=" + testInheritedPathConstant}, true)
	storedKey, present := insensitive.StoredKey(testPathKeyConstant)
	require.True(testInstance, present)
	require.Equal(testInstance, testMixedCasePathKeyConstant, storedKey)

	sensitive := environment.FromPairs([]string{testMixedCasePathKeyConstant + "=" + testInheritedPathConstant}, false)
	_, present = sensitive.StoredKey(testPathKeyConstant)
	require.False(testInstance, present)
}
