// Command argscheck validates arguments against a schema and prints the parsed values.
//
// Usage:
//
//	argscheck [-s schema] [-f schemafile] [-v] [-h] program args...
//
// Own flags end at the first positional argument. It names the checked program and
// the arguments after it are checked. The schema is given in the compact notation ("x,y*,z#,w##,v[*]") or loaded from a
// YAML, TOML or JSON file. Defaults are read from ARGSCHECK_SCHEMA, ARGSCHECK_SCHEMA_FILE
// and ARGSCHECK_LOG_LEVEL environment variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joeshaw/envdecode"
	"golang.org/x/term"

	args "github.com/cardinalby/go-args"
	"github.com/cardinalby/go-args/cmdargs"
	"github.com/cardinalby/go-args/internal/schemafile"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type config struct {
	Schema     string `env:"ARGSCHECK_SCHEMA"`
	SchemaFile string `env:"ARGSCHECK_SCHEMA_FILE"`
	LogLevel   string `env:"ARGSCHECK_LOG_LEVEL,default=warn"`
}

type options struct {
	Schema     string   `arg:"s"`
	SchemaFile string   `arg:"f"`
	Verbose    bool     `arg:"v"`
	Help       bool     `arg:"h"`
	// Args is the checked program name followed by its arguments
	Args []string `argRest:"true"`
}

const defaultProgramName = "arguments"

func main() {
	// errors go to stderr, color only detects whether stdout is a terminal
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		printError(stderr, fmt.Sprintf("invalid environment: %s", err))
		return exitError
	}

	opts := options{
		Schema:     cfg.Schema,
		SchemaFile: cfg.SchemaFile,
	}
	optsParser, err := args.ParseStruct(&opts, argv)
	if err != nil {
		printError(stderr, err.Error())
		printOwnUsage(stderr)
		return exitUsage
	}
	if opts.Help {
		printOwnUsage(stdout)
		return exitOK
	}

	logger := newLogger(stderr, cfg.LogLevel, opts.Verbose)
	logger.Debug("options parsed",
		slog.String("schema", opts.Schema),
		slog.String("schema_file", opts.SchemaFile),
		slog.Int("args", len(opts.Args)),
		slog.Int("options_count", optsParser.Cardinality()),
	)

	schema, err := loadSchema(opts)
	if err != nil {
		logger.Error("loading schema", slog.Any("error", err))
		printError(stderr, err.Error())
		return exitError
	}
	program, checked := splitProgram(opts.Args)
	logTokens(logger, schema, checked)

	p, err := args.NewFromSchema(schema, checked)
	if err != nil {
		logger.Debug("arguments rejected", slog.String("program", program), slog.Any("error", err))
		printError(stderr, err.Error())
		args.PrintUsage(stderr, program, schema)
		return exitUsage
	}
	printValues(stdout, p)
	return exitOK
}

func splitProgram(positional []string) (program string, checked []string) {
	if len(positional) == 0 {
		return defaultProgramName, nil
	}
	return positional[0], positional[1:]
}

func loadSchema(opts options) (args.Schema, error) {
	if opts.SchemaFile != "" {
		return schemafile.Load(opts.SchemaFile)
	}
	return args.ParseSchema(opts.Schema)
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelWarn
	}
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// logTokens logs the role of every argument as the parser is going to see it
func logTokens(logger *slog.Logger, schema args.Schema, argv []string) {
	var valueFlags []rune
	for _, entry := range schema {
		if entry.Kind != args.Boolean {
			valueFlags = append(valueFlags, []rune(entry.Name)...)
		}
	}
	cmdargs.NewArgs(argv).WithValueFlags(valueFlags...).IterateTokens(func(token cmdargs.Token) bool {
		logger.Debug("token",
			slog.Int("index", token.Index),
			slog.String("arg", token.Arg),
			slog.String("role", roleName(token.Role)),
		)
		return true
	})
}

func roleName(role cmdargs.Role) string {
	switch {
	case role.Has(cmdargs.RoleFlagRun):
		return "flags"
	case role.Has(cmdargs.RoleFlagValue):
		return "value"
	default:
		return "unnamed"
	}
}
