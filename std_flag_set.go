package args

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/cardinalby/go-args/stdutil"
)

// SchemaFromFlagSet builds a schema from the flags defined in the std FlagSet.
// Bool flags become Boolean, int flags become Integer and float64 flags become Double.
// Other flags (string, duration, text, func) become String and are validated by their flag.Value.
// The flag names must be single letters, otherwise the result is InvalidArgumentName *Error
func SchemaFromFlagSet(flagSet *flag.FlagSet) (Schema, error) {
	formalFlags := stdutil.GetFormalFlags(flagSet)
	var schema Schema
	flagSet.VisitAll(func(f *flag.Flag) {
		schema = append(schema, Entry{
			Name: f.Name,
			Kind: kindOfFlagValue(formalFlags[f.Name]),
		})
	})
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func kindOfFlagValue(value any) Kind {
	switch value.(type) {
	case bool:
		return Boolean
	case int, int64:
		return Integer
	case float64:
		return Double
	default:
		return String
	}
}

// ParseFlagSet parses `arguments` against the flags of the std FlagSet and sets the values of the
// flags that were found. Single dash flags can be combined: "-vn 3" sets both "v" and "n".
// After it returns successfully, flagSet.Parsed() is true and flagSet.Args() contains
// Parser.Remaining().
// Besides *Error, it returns an error if flag.Value rejects a parameter
func ParseFlagSet(flagSet *flag.FlagSet, arguments []string) (*Parser, error) {
	schema, err := SchemaFromFlagSet(flagSet)
	if err != nil {
		return nil, err
	}
	p, err := NewFromSchema(schema, arguments)
	if err != nil {
		return nil, err
	}
	for _, entry := range p.schema {
		name, _ := entryName(entry.Name)
		value, has := p.flagSetValue(name)
		if !has {
			continue
		}
		if err := flagSet.Set(entry.Name, value); err != nil {
			return nil, fmt.Errorf(`invalid value "%s" for flag -%s: %w`, value, entry.Name, err)
		}
	}
	// marks the FlagSet as parsed and assigns FlagSet.Args()
	if err := flagSet.Parse(append([]string{"--"}, p.remaining...)); err != nil {
		return nil, err
	}
	return p, nil
}

// flagSetValue formats the parsed value as a flag.Value.Set argument
func (p *Parser) flagSetValue(name rune) (string, bool) {
	m, has := p.parsed[name]
	if !has {
		return "", false
	}
	switch val := m.value().(type) {
	case bool:
		return strconv.FormatBool(val), true
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	}
	return "", false
}
