package structure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry lists the headings one document must contain.
type Entry struct {
	Filename string
	Headings []string
}

// Schema is the ordered set of document requirements. Order follows the
// source file so reports are stable between runs.
type Schema []Entry

// Filenames returns the document names in schema order.
func (s Schema) Filenames() []string {
	names := make([]string, len(s))
	for i, e := range s {
		names[i] = e.Filename
	}
	return names
}

// LoadSchema reads the schema at path. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON. A missing file returns
// ErrSchemaNotFound, any other read failure wraps ErrSchemaUnreadable and any
// parse or shape problem wraps ErrInvalidSchema.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSchemaUnreadable, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseSchemaYAML(data)
	default:
		return ParseSchemaJSON(data)
	}
}

// ParseSchemaJSON decodes a JSON object of filename to heading list while
// keeping key order.
func ParseSchemaJSON(data []byte) (Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, invalidSchema("parse JSON: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, invalidSchema("schema must be a JSON object (file -> list of headings)")
	}

	var schema Schema
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, invalidSchema("parse JSON: %v", err)
		}
		filename, _ := tok.(string)

		var raw []any
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, invalidSchema("parse JSON: %v", err)
		}
		trimmed := bytes.TrimSpace(value)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, invalidSchema("schema values must be lists of strings (key %q)", filename)
		}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, invalidSchema("parse JSON: %v", err)
		}

		headings := make([]string, 0, len(raw))
		for _, v := range raw {
			h, ok := v.(string)
			if !ok {
				return nil, invalidSchema("schema values must be lists of strings (key %q)", filename)
			}
			headings = append(headings, h)
		}

		if _, dup := seen[filename]; dup {
			return nil, invalidSchema("duplicate schema key %q", filename)
		}
		seen[filename] = struct{}{}
		schema = append(schema, Entry{Filename: filename, Headings: headings})
	}

	if _, err := dec.Token(); err != nil {
		return nil, invalidSchema("parse JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, invalidSchema("unexpected data after schema object")
	}
	return schema, nil
}

// ParseSchemaYAML decodes a YAML mapping of filename to heading list while
// keeping key order.
func ParseSchemaYAML(data []byte) (Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalidSchema("parse YAML: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, invalidSchema("schema must be a mapping (file -> list of headings)")
	}

	root := doc.Content[0]
	schema := make(Schema, 0, len(root.Content)/2)
	seen := make(map[string]struct{})
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, invalidSchema("schema keys must be filenames (line %d)", key.Line)
		}
		filename := key.Value
		if value.Kind != yaml.SequenceNode {
			return nil, invalidSchema("schema values must be lists of strings (key %q)", filename)
		}

		headings := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, invalidSchema("schema values must be lists of strings (key %q)", filename)
			}
			headings = append(headings, item.Value)
		}

		if _, dup := seen[filename]; dup {
			return nil, invalidSchema("duplicate schema key %q", filename)
		}
		seen[filename] = struct{}{}
		schema = append(schema, Entry{Filename: filename, Headings: headings})
	}
	return schema, nil
}

func invalidSchema(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(format, args...))
}
