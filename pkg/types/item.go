package types

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// Digest names a content digest algorithm used to derive item
// identifiers from media content. The historic store used Whirlpool;
// identifiers only need to be deterministic and collision resistant,
// so this implementation offers the SHA-2 family.
type Digest string

// Supported content digests.
const (
	DigestSHA256 Digest = "sha256"
	DigestSHA512 Digest = "sha512"
)

// DefaultDigest applies when no digest is configured.
const DefaultDigest = DigestSHA256

// New returns a fresh hash state for the digest.
// Returns an error for unrecognized digest names.
func (d Digest) New() (hash.Hash, error) {
	switch d {
	case DigestSHA256:
		return sha256.New(), nil
	case DigestSHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unknown digest %q", string(d))
	}
}

// Item is a single media entry: an identifier plus whichever schema
// fields were set at construction. Items are immutable once built;
// construction filters fields leniently while Get rejects unknown
// names strictly.
type Item struct {
	schema *FieldSet
	id     string
	fields map[string]string
}

// NewItem constructs an item with an explicit identifier. Keys in
// fields that are not part of the schema are dropped silently. An
// identifier key inside fields is ignored; the identifier argument is
// authoritative.
// Returns ErrNoIdentifier if identifier is empty.
func NewItem(schema *FieldSet, identifier string, fields map[string]string) (*Item, error) {
	if schema == nil {
		return nil, fmt.Errorf("nil schema")
	}
	if identifier == "" {
		return nil, fmt.Errorf("%w: no content and no explicit identifier", ErrNoIdentifier)
	}
	return newItem(schema, identifier, fields), nil
}

// NewItemFromContent constructs an item whose identifier is the
// lowercase hex digest of everything readable from r. The same bytes
// always produce the same identifier. Keys in fields outside the
// schema are dropped silently; an identifier key in fields is ignored
// because content determines identity.
func NewItemFromContent(schema *FieldSet, digest Digest, r io.Reader, fields map[string]string) (*Item, error) {
	if schema == nil {
		return nil, fmt.Errorf("nil schema")
	}
	h, err := digest.New()
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("digesting content: %w", err)
	}
	return newItem(schema, hex.EncodeToString(h.Sum(nil)), fields), nil
}

// newItem copies the recognized schema fields. The identifier is held
// separately from the field map so it cannot be shadowed.
func newItem(schema *FieldSet, id string, fields map[string]string) *Item {
	it := &Item{
		schema: schema,
		id:     id,
		fields: make(map[string]string, len(fields)),
	}
	for name, value := range fields {
		if name == FieldIdentifier || !schema.Has(name) {
			continue
		}
		it.fields[name] = value
	}
	return it
}

// Identifier returns the item's identifier. A nil item has none.
func (i *Item) Identifier() string {
	if i == nil {
		return ""
	}
	return i.id
}

// Get returns the value of a schema field. Fields that belong to the
// schema but were never set read as the empty string.
// Returns ErrUnknownAttribute for names outside the schema. This is
// the only read path; callers that need every field iterate the
// schema's names, as the persistence code does.
func (i *Item) Get(name string) (string, error) {
	if !i.schema.Has(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if name == FieldIdentifier {
		return i.id, nil
	}
	return i.fields[name], nil
}

// Field returns the value of a schema field, or "" for unknown or
// unset names. Together with Identifier it lets an item act as its own
// ItemSource. A nil item reads entirely unset, so the nil result of a
// failed Lookup stays safe to pass around as an ItemSource.
func (i *Item) Field(name string) string {
	if i == nil {
		return ""
	}
	v, err := i.Get(name)
	if err != nil {
		return ""
	}
	return v
}

// String renders the item for diagnostics.
func (i *Item) String() string {
	if i == nil {
		return "item <nil>"
	}
	return fmt.Sprintf("item %s", i.id)
}
