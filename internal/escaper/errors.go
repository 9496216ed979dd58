package escaper

import (
	"errors"
	"fmt"
)

const (
	unescapableArgumentMessageConstant  = "argument cannot be escaped for the Windows shell"
	unescapableArgumentTemplateConstant = "the command line argument %q contains a special character %q that cannot be escaped for the Windows shell"
)

// ErrUnescapableArgument matches every UnescapableArgumentError.
var ErrUnescapableArgument = errors.New(unescapableArgumentMessageConstant)

// UnescapableArgumentError names the first character that cannot be
// represented and the argument that contained it.
type UnescapableArgumentError struct {
	Character string
	Argument  string
}

// Error describes the offending character and argument.
func (unescapableError *UnescapableArgumentError) Error() string {
	return fmt.Sprintf(unescapableArgumentTemplateConstant, unescapableError.Argument, unescapableError.Character)
}

// Is reports whether target is ErrUnescapableArgument.
func (unescapableError *UnescapableArgumentError) Is(target error) bool {
	return target == ErrUnescapableArgument
}
