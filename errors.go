package args

import (
	"fmt"
)

// ErrorCode identifies the reason parsing of a schema or of the arguments failed.
// It implements error, so a returned *Error can be matched with errors.Is(err, UnexpectedArgument).
type ErrorCode int

const (
	OK ErrorCode = iota
	MissingString
	MissingInteger
	InvalidInteger
	MissingDouble
	InvalidDouble
	MissingStringArrayElement
	UnexpectedArgument
	InvalidArgumentName
	InvalidArgumentFormat
)

var errorCodeNames = map[ErrorCode]string{
	OK:                        "OK",
	MissingString:             "MISSING_STRING",
	MissingInteger:            "MISSING_INTEGER",
	InvalidInteger:            "INVALID_INTEGER",
	MissingDouble:             "MISSING_DOUBLE",
	InvalidDouble:             "INVALID_DOUBLE",
	MissingStringArrayElement: "MISSING_STRING_ARRAY_ELEMENT",
	UnexpectedArgument:        "UNEXPECTED_ARGUMENT",
	InvalidArgumentName:       "INVALID_ARGUMENT_NAME",
	InvalidArgumentFormat:     "INVALID_ARGUMENT_FORMAT",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

func (c ErrorCode) Error() string {
	return c.String()
}

// Error is returned by the parser constructors. It is never modified after creation.
type Error struct {
	// Code is the kind of the failure
	Code ErrorCode
	// ArgumentID is the argument name the failure relates to
	ArgumentID string
	// Parameter is the literal offending input, empty if there is none
	Parameter string
}

// NewError creates an *Error. Pass an empty parameter for the codes that have none
func NewError(code ErrorCode, argumentID string, parameter string) *Error {
	return &Error{
		Code:       code,
		ArgumentID: argumentID,
		Parameter:  parameter,
	}
}

func newRuneError(code ErrorCode, argumentID rune, parameter string) *Error {
	return NewError(code, string(argumentID), parameter)
}

// ErrorMessage renders a human-readable message for the error code
func (e *Error) ErrorMessage() string {
	switch e.Code {
	case OK:
		return "TILT: Should not get here."
	case UnexpectedArgument:
		return fmt.Sprintf("Argument -%s unexpected.", e.ArgumentID)
	case MissingString:
		return fmt.Sprintf("Could not find string parameter for -%s.", e.ArgumentID)
	case InvalidInteger:
		return fmt.Sprintf("Argument -%s expects an integer but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingInteger:
		return fmt.Sprintf("Could not find integer parameter for -%s.", e.ArgumentID)
	case InvalidDouble:
		return fmt.Sprintf("Argument -%s expects a double but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingDouble:
		return fmt.Sprintf("Could not find double parameter for -%s.", e.ArgumentID)
	case MissingStringArrayElement:
		return fmt.Sprintf("Could not find string array element for -%s.", e.ArgumentID)
	case InvalidArgumentName:
		return fmt.Sprintf("'%s' is not a valid argument name.", e.ArgumentID)
	case InvalidArgumentFormat:
		return fmt.Sprintf("'%s' is not a valid argument format.", e.Parameter)
	}
	return fmt.Sprintf("%s: -%s %q", e.Code, e.ArgumentID, e.Parameter)
}

func (e *Error) Error() string {
	return e.ErrorMessage()
}

func (e *Error) Unwrap() error {
	return e.Code
}

// Is reports whether target is an *Error with the same code, argument and parameter
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other == nil {
		return false
	}
	return *e == *other
}
