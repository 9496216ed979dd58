// Package platform describes the process-creation conventions of a target
// operating system.
//
// Resolution and invocation never consult runtime.GOOS directly; they receive
// a Platform so that Windows semantics can be exercised from any host.
package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

const (
	windowsPathListSeparatorConstant     = ';'
	unixPathListSeparatorConstant        = ':'
	extensionListSeparatorConstant       = ";"
	pathVariableNameConstant             = "PATH"
	pathExtensionVariableNameConstant    = "PATHEXT"
	shellInterpreterVariableNameConstant = "COMSPEC"
	shellInterpreterFileNameConstant     = "cmd.exe"
)

// ExecutabilityRule selects how a candidate file is judged executable.
type ExecutabilityRule int

const (
	// ExecutabilityPermissionBits accepts files carrying an execute permission bit.
	ExecutabilityPermissionBits ExecutabilityRule = iota
	// ExecutabilityExtensionList accepts files whose extension appears in PATHEXT.
	ExecutabilityExtensionList
)

// String renders the rule for logs.
func (rule ExecutabilityRule) String() string {
	switch rule {
	case ExecutabilityExtensionList:
		return "extension_list"
	default:
		return "permission_bits"
	}
}

// Platform captures the conventions of one operating system family.
type Platform struct {
	Name                           string
	PathListSeparator              rune
	ExtensionListSeparator         string
	Executability                  ExecutabilityRule
	BackslashIsPathSeparator       bool
	CaseInsensitiveEnvironmentKeys bool
}

// Current describes the platform the process is running on.
func Current() Platform {
	return ForName(runtime.GOOS)
}

// ForName describes the platform identified by a runtime.GOOS value.
func ForName(operatingSystemName string) Platform {
	if operatingSystemName == Windows {
		return Platform{
			Name:                           Windows,
			PathListSeparator:              windowsPathListSeparatorConstant,
			ExtensionListSeparator:         extensionListSeparatorConstant,
			Executability:                  ExecutabilityExtensionList,
			BackslashIsPathSeparator:       true,
			CaseInsensitiveEnvironmentKeys: true,
		}
	}
	return Platform{
		Name:                   operatingSystemName,
		PathListSeparator:      unixPathListSeparatorConstant,
		ExtensionListSeparator: extensionListSeparatorConstant,
		Executability:          ExecutabilityPermissionBits,
	}
}

// IsWindows reports whether the platform follows Windows conventions.
func (target Platform) IsWindows() bool {
	return target.Name == Windows
}

// UsesExtensionList reports whether PATHEXT participates in resolution.
func (target Platform) UsesExtensionList() bool {
	return target.Executability == ExecutabilityExtensionList
}

// PathVariableName is the environment variable holding the search path.
func (target Platform) PathVariableName() string {
	return pathVariableNameConstant
}

// PathExtensionVariableName is the environment variable holding executable extensions.
func (target Platform) PathExtensionVariableName() string {
	return pathExtensionVariableNameConstant
}

// ShellInterpreterVariableName is the environment variable naming the command shell.
func (target Platform) ShellInterpreterVariableName() string {
	return shellInterpreterVariableNameConstant
}

// ShellInterpreterFileName is searched on PATH when the shell variable is unusable.
func (target Platform) ShellInterpreterFileName() string {
	return shellInterpreterFileNameConstant
}
