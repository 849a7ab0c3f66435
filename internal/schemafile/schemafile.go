// Package schemafile loads argument schemas in the structured notation from YAML, TOML and JSON documents.
//
// All the formats share the same shape:
//
//	args:
//	  - name: x
//	    kind: boolean
//	  - name: o
//	    kind: string
//
// Supported kinds are "boolean", "string", "integer", "double" and "string-array".
package schemafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	args "github.com/cardinalby/go-args"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown schema file format")

type document struct {
	Args args.Schema `json:"args" yaml:"args" toml:"args"`
}

// FormatOf detects the format by the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownFormat, path)
}

// Load reads and validates the schema from the file
func Load(path string) (args.Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	schema, err := Decode(format, f)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return schema, nil
}

// Decode reads and validates the schema. Unknown keys are rejected. An empty document is an empty schema
func Decode(format Format, r io.Reader) (args.Schema, error) {
	var doc document
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf(`%w: "%s"`, ErrUnknownFormat, format)
	}
	if err := doc.Args.Validate(); err != nil {
		return nil, err
	}
	return doc.Args, nil
}
