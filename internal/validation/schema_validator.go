// Package validation checks stored documents against embedded JSON Schemas.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaSnapshot names the persisted player snapshot schema
const SchemaSnapshot = "snapshot"

const schemaSuffix = ".schema.json"

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// ErrUnknownSchema is returned for a name with no embedded schema
var ErrUnknownSchema = errors.New("unknown schema")

// Violation is one failed keyword at one document location
type Violation struct {
	Path    string // JSON pointer, "" for the document root
	Keyword string
}

func (v Violation) String() string {
	p := v.Path
	if p == "" {
		p = "(root)"
	}
	return fmt.Sprintf("%s: %s", p, v.Keyword)
}

// SchemaError lists every violation found in a document
type SchemaError struct {
	Schema     string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s schema: %s", e.Schema, strings.Join(parts, "; "))
}

// Registry holds the compiled embedded schemas
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// NewRegistry compiles every embedded schema up front so a broken schema
// fails at startup instead of on first use
func NewRegistry() (*Registry, error) {
	files, err := fs.Glob(schemaFS, "schemas/*"+schemaSuffix)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(files))}
	for _, file := range files {
		raw, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		url := "mem://" + file
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s: %w", file, err)
		}
		schema, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", file, err)
		}
		r.schemas[strings.TrimSuffix(path.Base(file), schemaSuffix)] = schema
	}
	return r, nil
}

// Validate checks data against the named schema. Schema failures come back
// as *SchemaError.
func (r *Registry) Validate(name string, data []byte) error {
	schema, ok := r.schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	err = schema.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		se := &SchemaError{Schema: name}
		collect(verr, &se.Violations)
		return se
	}
	return err
}

// collect appends the leaves of the cause tree
func collect(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		v := Violation{Keyword: "invalid"}
		if len(err.InstanceLocation) > 0 {
			v.Path = "/" + strings.Join(err.InstanceLocation, "/")
		}
		if err.ErrorKind != nil {
			if kp := err.ErrorKind.KeywordPath(); len(kp) > 0 {
				v.Keyword = strings.Join(kp, ".")
			}
		}
		*out = append(*out, v)
		return
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}

var defaultRegistry = sync.OnceValues(NewRegistry)

// ValidateSnapshot checks a persisted snapshot document before it is decoded
func ValidateSnapshot(data []byte) error {
	r, err := defaultRegistry()
	if err != nil {
		return err
	}
	return r.Validate(SchemaSnapshot, data)
}
