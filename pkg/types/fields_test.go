package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldSet(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr string
	}{
		{
			name: "valid minimal schema",
			fields: []Field{
				{Name: "identifier"},
			},
		},
		{
			name: "valid schema with descriptions",
			fields: []Field{
				{Name: "identifier", Description: "the key"},
				{Name: "title", Description: "a name"},
			},
		},
		{
			name: "names are trimmed",
			fields: []Field{
				{Name: "  identifier  "},
				{Name: " title "},
			},
		},
		{
			name: "empty name rejected",
			fields: []Field{
				{Name: "identifier"},
				{Name: "   "},
			},
			wantErr: "empty name",
		},
		{
			name: "duplicate name rejected",
			fields: []Field{
				{Name: "identifier"},
				{Name: "title"},
				{Name: "title"},
			},
			wantErr: "duplicate schema field",
		},
		{
			name: "identifier field mandatory",
			fields: []Field{
				{Name: "title"},
				{Name: "creator"},
			},
			wantErr: "must include",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := NewFieldSet(tt.fields...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, fs.Has(FieldIdentifier))
		})
	}
}

func TestDublinCoreSchema(t *testing.T) {
	fs := DublinCore()

	wantOrder := []string{
		"creator", "date", "description", "format",
		"identifier", "rights", "source", "title",
	}
	assert.Equal(t, wantOrder, fs.Names())
	assert.Equal(t, len(wantOrder), fs.Len())

	for _, name := range wantOrder {
		assert.True(t, fs.Has(name), "missing field %q", name)
		assert.NotEmpty(t, fs.Describe(name), "field %q has no description", name)
	}

	assert.False(t, fs.Has("checksum"))
	assert.Empty(t, fs.Describe("checksum"))
}

func TestFieldSetCopies(t *testing.T) {
	fs := DublinCore()

	names := fs.Names()
	names[0] = "mutated"
	assert.Equal(t, "creator", fs.Names()[0])

	fields := fs.Fields()
	fields[0].Name = "mutated"
	assert.Equal(t, "creator", fs.Fields()[0].Name)
}

func TestCustomFieldSet(t *testing.T) {
	fs, err := NewFieldSet(
		Field{Name: "identifier", Description: "content digest"},
		Field{Name: "title"},
		Field{Name: "license"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"identifier", "title", "license"}, fs.Names())
	assert.True(t, fs.Has("license"))
	assert.False(t, fs.Has("creator"))
}
