package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	args "github.com/cardinalby/go-args"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	nameColor  = color.New(color.FgCyan)
)

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintln(w, msg)
}

func printOwnUsage(w io.Writer) {
	schema, _ := args.SchemaFromStruct(&options{})
	args.PrintUsage(w, "argscheck", schema)
}

func printValues(w io.Writer, p *args.Parser) {
	for _, entry := range p.Schema() {
		name := []rune(entry.Name)[0]
		if !p.Has(name) {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", nameColor.Sprint("-"+entry.Name), entry.Kind, formatValue(p, name, entry.Kind))
	}
	_, _ = fmt.Fprintf(w, "next argument: %d\n", p.NextArgument())
	if remaining := p.Remaining(); len(remaining) > 0 {
		_, _ = fmt.Fprintf(w, "remaining: %s\n", strings.Join(remaining, " "))
	}
}

func formatValue(p *args.Parser, name rune, kind args.Kind) string {
	switch kind {
	case args.String:
		return fmt.Sprintf("%q", p.GetString(name))
	case args.Integer:
		return fmt.Sprintf("%d", p.GetInt(name))
	case args.Double:
		return fmt.Sprintf("%g", p.GetDouble(name))
	case args.StringArray:
		return fmt.Sprintf("%q", p.GetStringArray(name))
	default:
		return fmt.Sprintf("%t", p.GetBoolean(name))
	}
}
