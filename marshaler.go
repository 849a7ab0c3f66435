package args

import (
	"strconv"

	"github.com/cardinalby/go-args/cmdargs"
)

// argumentMarshaler consumes the parameters of a single flag occurrence and keeps the value
type argumentMarshaler interface {
	parse(name rune, cursor *cmdargs.Cursor) error
	value() any
}

func newArgumentMarshaler(kind Kind) argumentMarshaler {
	switch kind {
	case String:
		return &stringMarshaler{}
	case Integer:
		return &integerMarshaler{}
	case Double:
		return &doubleMarshaler{}
	case StringArray:
		return &stringArrayMarshaler{}
	default:
		return &booleanMarshaler{}
	}
}

type booleanMarshaler struct {
	val bool
}

func (m *booleanMarshaler) parse(rune, *cmdargs.Cursor) error {
	m.val = true
	return nil
}

func (m *booleanMarshaler) value() any {
	return m.val
}

type stringMarshaler struct {
	val string
}

func (m *stringMarshaler) parse(name rune, cursor *cmdargs.Cursor) error {
	token, ok := cursor.NextValue()
	if !ok {
		return newRuneError(MissingString, name, "")
	}
	m.val = token.Arg
	return nil
}

func (m *stringMarshaler) value() any {
	return m.val
}

type integerMarshaler struct {
	val int
}

func (m *integerMarshaler) parse(name rune, cursor *cmdargs.Cursor) error {
	token, ok := cursor.NextValue()
	if !ok {
		return newRuneError(MissingInteger, name, "")
	}
	val, err := strconv.Atoi(token.Arg)
	if err != nil {
		return newRuneError(InvalidInteger, name, token.Arg)
	}
	m.val = val
	return nil
}

func (m *integerMarshaler) value() any {
	return m.val
}

type doubleMarshaler struct {
	val float64
}

func (m *doubleMarshaler) parse(name rune, cursor *cmdargs.Cursor) error {
	token, ok := cursor.NextValue()
	if !ok {
		return newRuneError(MissingDouble, name, "")
	}
	val, err := strconv.ParseFloat(token.Arg, 64)
	if err != nil {
		return newRuneError(InvalidDouble, name, token.Arg)
	}
	m.val = val
	return nil
}

func (m *doubleMarshaler) value() any {
	return m.val
}

// stringArrayMarshaler appends one element per flag occurrence
type stringArrayMarshaler struct {
	val []string
}

func (m *stringArrayMarshaler) parse(name rune, cursor *cmdargs.Cursor) error {
	token, ok := cursor.NextValue()
	if !ok {
		// reported the same way as a missing string parameter
		return newRuneError(MissingString, name, "")
	}
	m.val = append(m.val, token.Arg)
	return nil
}

func (m *stringArrayMarshaler) value() any {
	return m.val
}
