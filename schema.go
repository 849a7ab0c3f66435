package args

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is a type of value an argument holds
type Kind int

const (
	Boolean Kind = iota
	String
	Integer
	Double
	StringArray
)

type kindInfo struct {
	name   string
	marker string
}

var kinds = map[Kind]kindInfo{
	Boolean:     {name: "boolean", marker: ""},
	String:      {name: "string", marker: "*"},
	Integer:     {name: "integer", marker: "#"},
	Double:      {name: "double", marker: "##"},
	StringArray: {name: "string-array", marker: "[*]"},
}

var kindByMarker = map[string]Kind{
	"":    Boolean,
	"*":   String,
	"#":   Integer,
	"##":  Double,
	"[*]": StringArray,
}

func (k Kind) isValid() bool {
	_, ok := kinds[k]
	return ok
}

// Marker returns the suffix that selects the kind in the compact schema notation
func (k Kind) Marker() string {
	return kinds[k].marker
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.isValid() {
		return nil, fmt.Errorf("unknown argument kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, info := range kinds {
		if info.name == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown argument kind %q", string(text))
}

// Entry binds a single letter argument name to the kind of its value
type Entry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Kind Kind   `json:"kind" yaml:"kind" toml:"kind"`
}

func (e Entry) String() string {
	return e.Name + e.Kind.Marker()
}

// Schema is the structured notation of the expected arguments.
// The compact notation (e.g. "x,y*,z#") is converted to it by ParseSchema
type Schema []Entry

// String renders the schema in the compact notation
func (s Schema) String() string {
	parts := make([]string, len(s))
	for i, entry := range s {
		parts[i] = entry.String()
	}
	return strings.Join(parts, ",")
}

// Validate checks that every name is a single letter used only once and every kind is known
func (s Schema) Validate() error {
	seen := make(map[rune]struct{}, len(s))
	for _, entry := range s {
		name, err := entryName(entry.Name)
		if err != nil {
			return err
		}
		if _, has := seen[name]; has {
			return NewError(InvalidArgumentName, entry.Name, "")
		}
		seen[name] = struct{}{}
		if !entry.Kind.isValid() {
			return NewError(InvalidArgumentFormat, entry.Name, entry.Kind.String())
		}
	}
	return nil
}

func entryName(name string) (rune, error) {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) || !unicode.IsLetter(r) {
		return 0, NewError(InvalidArgumentName, name, "")
	}
	return r, nil
}

// ParseSchema parses the compact schema notation. Each entry is a letter optionally followed by
// a kind marker: none for Boolean, "*" for String, "#" for Integer, "##" for Double and
// "[*]" for StringArray. Commas and whitespace between entries are ignored.
func ParseSchema(schema string) (Schema, error) {
	var res Schema
	runes := []rune(schema)
	for i := 0; i < len(runes); {
		name := runes[i]
		if isSchemaSeparator(name) {
			i++
			continue
		}
		if !unicode.IsLetter(name) {
			return nil, newRuneError(InvalidArgumentName, name, "")
		}
		markerEnd := i + 1
		for markerEnd < len(runes) && !unicode.IsLetter(runes[markerEnd]) && !isSchemaSeparator(runes[markerEnd]) {
			markerEnd++
		}
		marker := string(runes[i+1 : markerEnd])
		kind, ok := kindByMarker[marker]
		if !ok {
			return nil, newRuneError(InvalidArgumentFormat, name, marker)
		}
		res = append(res, Entry{Name: string(name), Kind: kind})
		i = markerEnd
	}
	return res, nil
}

func isSchemaSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
