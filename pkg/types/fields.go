package types

import (
	"fmt"
	"strings"
)

// FieldIdentifier is the mandatory schema field. It keys every item in
// a repository and must be part of every schema.
const FieldIdentifier = "identifier"

// Field is one named property in a metadata schema.
type Field struct {
	// Name is the field's key, unique within a schema.
	Name string

	// Description is a one-line explanation shown to contributors.
	Description string
}

// FieldSet is an ordered metadata schema. The zero value is unusable;
// construct one with NewFieldSet or DublinCore.
type FieldSet struct {
	fields []Field
	index  map[string]int
}

// NewFieldSet builds a schema from the given fields, preserving their
// order. Field names are trimmed of surrounding whitespace.
// Returns an error if a name is empty or duplicated, or if the
// mandatory identifier field is missing.
func NewFieldSet(fields ...Field) (*FieldSet, error) {
	fs := &FieldSet{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("schema field with empty name")
		}
		if _, dup := fs.index[name]; dup {
			return nil, fmt.Errorf("duplicate schema field %q", name)
		}
		fs.index[name] = len(fs.fields)
		fs.fields = append(fs.fields, Field{Name: name, Description: f.Description})
	}
	if !fs.Has(FieldIdentifier) {
		return nil, fmt.Errorf("schema must include the %q field", FieldIdentifier)
	}
	return fs, nil
}

// DublinCore returns the default metadata schema, the Dublin Core
// subset used to describe media submissions.
func DublinCore() *FieldSet {
	fs, err := NewFieldSet(
		Field{Name: "creator", Description: "An entity primarily responsible for making the resource."},
		Field{Name: "date", Description: "A point or period of time associated with an event in the lifecycle of the resource."},
		Field{Name: "description", Description: "An account of the resource."},
		Field{Name: "format", Description: "The file format, physical medium, or dimensions of the resource."},
		Field{Name: "identifier", Description: "An unambiguous reference to the resource within a given context."},
		Field{Name: "rights", Description: "Information about rights held in and over the resource."},
		Field{Name: "source", Description: "A related resource from which the described resource is derived."},
		Field{Name: "title", Description: "A name given to the resource."},
	)
	if err != nil {
		panic(err)
	}
	return fs
}

// Has reports whether name is part of the schema.
func (s *FieldSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the field names in schema order. The slice is a copy.
func (s *FieldSet) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns the fields in schema order. The slice is a copy.
func (s *FieldSet) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Describe returns the description registered for name, or "" when the
// name is not part of the schema.
func (s *FieldSet) Describe(name string) string {
	i, ok := s.index[name]
	if !ok {
		return ""
	}
	return s.fields[i].Description
}

// Len returns the number of fields in the schema.
func (s *FieldSet) Len() int {
	return len(s.fields)
}
