package args

import (
	"slices"

	"github.com/cardinalby/go-args/cmdargs"
)

// Parser holds the values of the arguments parsed against a schema.
// All the validation happens in the constructors, accessors never fail.
type Parser struct {
	schema Schema
	kinds  map[rune]Kind
	// parsed contains marshalers only for the arguments found in the input
	parsed       map[rune]argumentMarshaler
	nextArgument int
	remaining    []string
}

// New parses `arguments` against the schema in the compact notation, e.g. "x,y*,z#,w##,v[*]".
// The returned error is always *Error
func New(schema string, arguments []string) (*Parser, error) {
	parsedSchema, err := ParseSchema(schema)
	if err != nil {
		return nil, err
	}
	return NewFromSchema(parsedSchema, arguments)
}

// NewFromSchema parses `arguments` against the schema in the structured notation.
// The returned error is always *Error
func NewFromSchema(schema Schema, arguments []string) (*Parser, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	p := &Parser{
		schema: slices.Clone(schema),
		kinds:  make(map[rune]Kind, len(schema)),
		parsed: make(map[rune]argumentMarshaler),
	}
	for _, entry := range schema {
		name, _ := entryName(entry.Name)
		p.kinds[name] = entry.Kind
	}

	cursor := cmdargs.NewCursor(arguments)
	if err := p.parseArguments(cursor); err != nil {
		return nil, err
	}
	p.nextArgument = cursor.Index()
	if remaining := cursor.Remaining(); len(remaining) > 0 {
		p.remaining = slices.Clone(remaining)
	}
	return p, nil
}

func (p *Parser) parseArguments(cursor *cmdargs.Cursor) error {
	for {
		token, ok := cursor.Next()
		if !ok {
			return nil
		}
		for _, flagChar := range token.FlagChars {
			if err := p.parseArgument(flagChar, cursor); err != nil {
				return err
			}
		}
	}
}

func (p *Parser) parseArgument(name rune, cursor *cmdargs.Cursor) error {
	kind, ok := p.kinds[name]
	if !ok {
		return newRuneError(UnexpectedArgument, name, "")
	}
	m, ok := p.parsed[name]
	if !ok {
		m = newArgumentMarshaler(kind)
	}
	if err := m.parse(name, cursor); err != nil {
		return err
	}
	p.parsed[name] = m
	return nil
}

// Has reports whether the argument was present in the input
func (p *Parser) Has(name rune) bool {
	_, has := p.parsed[name]
	return has
}

// Cardinality returns the number of distinct arguments present in the input
func (p *Parser) Cardinality() int {
	return len(p.parsed)
}

// NextArgument returns the index of the first argument that is not a flag or a flag parameter
func (p *Parser) NextArgument() int {
	return p.nextArgument
}

// Remaining returns the arguments starting from NextArgument(), nil if there are none
func (p *Parser) Remaining() []string {
	return slices.Clone(p.remaining)
}

// Schema returns the schema the arguments were parsed against
func (p *Parser) Schema() Schema {
	return slices.Clone(p.schema)
}

// Usage returns the schema in the compact notation wrapped as "-[...]", or "" for an empty schema
func (p *Parser) Usage() string {
	if len(p.schema) == 0 {
		return ""
	}
	return "-[" + p.schema.String() + "]"
}

// GetBoolean returns true if the Boolean argument was present
func (p *Parser) GetBoolean(name rune) bool {
	return getValue[bool](p, name)
}

// GetString returns the parameter of the String argument, "" if it is absent
func (p *Parser) GetString(name rune) string {
	return getValue[string](p, name)
}

// GetInt returns the parameter of the Integer argument, 0 if it is absent
func (p *Parser) GetInt(name rune) int {
	return getValue[int](p, name)
}

// GetDouble returns the parameter of the Double argument, 0 if it is absent
func (p *Parser) GetDouble(name rune) float64 {
	return getValue[float64](p, name)
}

// GetStringArray returns a copy of the collected elements, nil if the argument is absent
func (p *Parser) GetStringArray(name rune) []string {
	return slices.Clone(getValue[[]string](p, name))
}

// getValue returns the zero value of T if the argument is absent or has a different kind
func getValue[T any](p *Parser, name rune) (res T) {
	m, has := p.parsed[name]
	if !has {
		return res
	}
	if val, ok := m.value().(T); ok {
		return val
	}
	return res
}
