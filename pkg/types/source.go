package types

import (
	"fmt"
	"sort"
	"strings"
)

// ItemSource is the normalized view Repository.Add reads from a
// candidate. The two accepted shapes, plain field mappings and items
// themselves, are expressed as explicit adapters implementing this
// interface rather than by runtime shape probing. String supplies the
// diagnostic rendering embedded in rejection errors.
type ItemSource interface {
	// Identifier returns the candidate's identifier, or "" when the
	// candidate cannot name one.
	Identifier() string

	// Field returns the candidate's value for a schema field name, or
	// "" when unset. Adapters are only consulted for recognized names,
	// so they need not pre-filter their keys.
	Field(name string) string

	fmt.Stringer
}

// FieldMap adapts a plain field mapping to ItemSource. Keys outside
// the metadata schema may be present; normalization happens at store
// time.
type FieldMap map[string]string

// Identifier returns the mapping's identifier value, if any.
func (m FieldMap) Identifier() string {
	return m[FieldIdentifier]
}

// Field returns the mapped value for name, or "" when absent.
func (m FieldMap) Field(name string) string {
	return m[name]
}

// String renders the mapping with sorted keys for diagnostics.
func (m FieldMap) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for n, k := range keys {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %q", k, m[k])
	}
	b.WriteByte('}')
	return b.String()
}
