package args

import (
	"os"
)

// CommandLineArgs are the arguments parsed by the package level Parse function.
// It follows the pattern of flag.CommandLine and can be replaced in tests
var CommandLineArgs = os.Args[1:]

// Parse parses CommandLineArgs (program arguments by default) against the schema in the compact notation.
// See New
func Parse(schema string) (*Parser, error) {
	return New(schema, CommandLineArgs)
}

// ParseSchemaArgs parses CommandLineArgs against the schema in the structured notation.
// See NewFromSchema
func ParseSchemaArgs(schema Schema) (*Parser, error) {
	return NewFromSchema(schema, CommandLineArgs)
}
