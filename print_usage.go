package args

import (
	"fmt"
	"io"
)

func printUsageTitle(w io.Writer, name string) {
	if name == "" {
		_, _ = fmt.Fprintf(w, "Usage:\n")
	} else {
		_, _ = fmt.Fprintf(w, "Usage of %s:\n", name)
	}
}

// PrintUsage prints the title followed by the schema arguments in the format of flag.PrintDefaults
func PrintUsage(w io.Writer, name string, schema Schema) {
	printUsageTitle(w, name)
	PrintDefaults(w, schema)
}

// PrintDefaults prints one line per schema entry: the flag and the kind of its parameter.
// Boolean flags have no parameter
func PrintDefaults(w io.Writer, schema Schema) {
	for _, entry := range schema {
		if entry.Kind == Boolean {
			_, _ = fmt.Fprintf(w, "  -%s\n", entry.Name)
			continue
		}
		_, _ = fmt.Fprintf(w, "  -%s %s\n", entry.Name, entry.Kind)
	}
}
