package environment

import (
	"sort"
	"strings"
)

const (
	assignmentSeparatorConstant = "="
)

type variable struct {
	key   string
	value string
}

// Environment is an immutable mapping of environment variable names to values.
type Environment struct {
	variables       []variable
	indexByKey      map[string]int
	caseInsensitive bool
}

// New returns an empty environment.
func New(caseInsensitive bool) Environment {
	return Environment{indexByKey: map[string]int{}, caseInsensitive: caseInsensitive}
}

// FromPairs builds an environment from KEY=VALUE assignments such as os.Environ.
// Later assignments of the same key replace earlier ones. Entries without a
// separator are ignored.
func FromPairs(assignments []string, caseInsensitive bool) Environment {
	return New(caseInsensitive).WithAssignments(assignments)
}

// FromMap builds an environment from a mapping.
func FromMap(values map[string]string, caseInsensitive bool) Environment {
	return New(caseInsensitive).WithOverrides(values)
}

// WithOverrides returns a new environment in which the supplied values replace
// or extend the receiver's variables. The receiver is left untouched.
func (environment Environment) WithOverrides(overrides map[string]string) Environment {
	builder := newBuilder(environment)
	overrideKeys := make([]string, 0, len(overrides))
	for overrideKey := range overrides {
		overrideKeys = append(overrideKeys, overrideKey)
	}
	sort.Strings(overrideKeys)
	for _, overrideKey := range overrideKeys {
		if len(overrideKey) == 0 {
			continue
		}
		builder.set(overrideKey, overrides[overrideKey])
	}
	return builder.environment
}

// Lookup returns the value stored for key and whether it is present.
func (environment Environment) Lookup(key string) (string, bool) {
	index, present := environment.indexByKey[environment.canonicalKey(key)]
	if !present {
		return "", false
	}
	return environment.variables[index].value, true
}

// StoredKey returns the spelling under which key is stored. With
// case-insensitive keys this may differ from key, for example "Path" for "PATH".
func (environment Environment) StoredKey(key string) (string, bool) {
	index, present := environment.indexByKey[environment.canonicalKey(key)]
	if !present {
		return "", false
	}
	return environment.variables[index].key, true
}

// WithAssignments returns a new environment with KEY=VALUE assignments applied
// in order, so a later assignment of the same key wins. Entries without a
// separator are ignored.
func (environment Environment) WithAssignments(assignments []string) Environment {
	builder := newBuilder(environment)
	for _, assignment := range assignments {
		key, value, parsed := splitAssignment(assignment)
		if !parsed {
			continue
		}
		builder.set(key, value)
	}
	return builder.environment
}

// Value returns the value stored for key or an empty string.
func (environment Environment) Value(key string) string {
	value, _ := environment.Lookup(key)
	return value
}

// Len reports the number of variables.
func (environment Environment) Len() int {
	return len(environment.variables)
}

// CaseInsensitive reports whether keys are compared without regard to case.
func (environment Environment) CaseInsensitive() bool {
	return environment.caseInsensitive
}

// Pairs renders the environment as KEY=VALUE assignments sorted by key,
// suitable for exec.Cmd.Env.
func (environment Environment) Pairs() []string {
	ordered := make([]variable, len(environment.variables))
	copy(ordered, environment.variables)
	sort.SliceStable(ordered, func(leftIndex int, rightIndex int) bool {
		return environment.canonicalKey(ordered[leftIndex].key) < environment.canonicalKey(ordered[rightIndex].key)
	})

	assignments := make([]string, 0, len(ordered))
	for _, entry := range ordered {
		assignments = append(assignments, entry.key+assignmentSeparatorConstant+entry.value)
	}
	return assignments
}

// Map returns a copy of the environment as a map keyed by the stored spelling.
func (environment Environment) Map() map[string]string {
	values := make(map[string]string, len(environment.variables))
	for _, entry := range environment.variables {
		values[entry.key] = entry.value
	}
	return values
}

func (environment Environment) canonicalKey(key string) string {
	if environment.caseInsensitive {
		return strings.ToUpper(key)
	}
	return key
}

type builder struct {
	environment Environment
}

func newBuilder(source Environment) *builder {
	variables := make([]variable, len(source.variables))
	copy(variables, source.variables)
	indexByKey := make(map[string]int, len(source.indexByKey))
	for key, index := range source.indexByKey {
		indexByKey[key] = index
	}
	return &builder{environment: Environment{
		variables:       variables,
		indexByKey:      indexByKey,
		caseInsensitive: source.caseInsensitive,
	}}
}

func (environmentBuilder *builder) set(key string, value string) {
	canonicalKey := environmentBuilder.environment.canonicalKey(key)
	if index, present := environmentBuilder.environment.indexByKey[canonicalKey]; present {
		environmentBuilder.environment.variables[index] = variable{key: key, value: value}
		return
	}
	environmentBuilder.environment.indexByKey[canonicalKey] = len(environmentBuilder.environment.variables)
	environmentBuilder.environment.variables = append(environmentBuilder.environment.variables, variable{key: key, value: value})
}

// splitAssignment separates KEY=VALUE. Windows stores per-drive working
// directories as "=C:=C:\dir", so a leading separator belongs to the key.
func splitAssignment(assignment string) (string, string, bool) {
	if len(assignment) == 0 {
		return "", "", false
	}
	separatorIndex := strings.Index(assignment[1:], assignmentSeparatorConstant)
	if separatorIndex < 0 {
		return "", "", false
	}
	separatorIndex++
	return assignment[:separatorIndex], assignment[separatorIndex+1:], true
}
