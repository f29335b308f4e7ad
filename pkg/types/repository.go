package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Repository is the authoritative in-memory collection of items, keyed
// by identifier. Mutation goes through Add only; persistence is a
// whole-snapshot dump and load through the injected SnapshotStore.
// Not safe for concurrent use.
type Repository struct {
	schema *FieldSet
	store  SnapshotStore
	items  map[string]*Item
}

// NewRepository returns an empty repository over the given schema,
// persisting through store.
func NewRepository(schema *FieldSet, store SnapshotStore) *Repository {
	return &Repository{
		schema: schema,
		store:  store,
		items:  make(map[string]*Item),
	}
}

// Schema returns the repository's metadata schema.
func (r *Repository) Schema() *FieldSet {
	return r.schema
}

// Add normalizes src to an Item and stores it under its identifier.
// An existing entry with the same identifier is overwritten; callers
// that need duplicate rejection check Lookup first, the way the shell
// does. A failed add leaves the repository unchanged.
// Returns ErrInvalidItem, wrapping a rendering of the candidate, if
// src yields no identifier.
func (r *Repository) Add(src ItemSource) error {
	if src == nil {
		return fmt.Errorf("%w: <nil>", ErrInvalidItem)
	}
	id := src.Identifier()
	if id == "" {
		return fmt.Errorf("%w: %s", ErrInvalidItem, src)
	}

	item, ok := src.(*Item)
	if !ok || item.schema != r.schema {
		fields := make(map[string]string, r.schema.Len())
		for _, name := range r.schema.Names() {
			if name == FieldIdentifier {
				continue
			}
			if v := src.Field(name); v != "" {
				fields[name] = v
			}
		}
		rebuilt, err := NewItem(r.schema, id, fields)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidItem, src)
		}
		item = rebuilt
	}

	r.items[id] = item
	return nil
}

// Lookup returns the item stored under identifier.
func (r *Repository) Lookup(identifier string) (*Item, bool) {
	it, ok := r.items[identifier]
	return it, ok
}

// Len returns the number of stored items.
func (r *Repository) Len() int {
	return len(r.items)
}

// Items returns the stored items sorted by identifier. The slice is a
// copy; the repository itself only changes through Add and Load.
func (r *Repository) Items() []*Item {
	out := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].id < out[b].id })
	return out
}

// Dump serializes every item and writes the items snapshot through the
// store, replacing any previous snapshot. Each item is reduced to its
// set schema fields; the identifier appears both as the entry key and
// inside the record. Unset and empty fields are omitted.
func (r *Repository) Dump() error {
	entries := make(map[string]map[string]string, len(r.items))
	for id, it := range r.items {
		rec := map[string]string{FieldIdentifier: id}
		for _, name := range r.schema.Names() {
			if name == FieldIdentifier {
				continue
			}
			if v := it.Field(name); v != "" {
				rec[name] = v
			}
		}
		entries[id] = rec
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding items snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := r.store.Write(SnapshotItems, data); err != nil {
		return fmt.Errorf("writing items snapshot: %w", err)
	}
	return nil
}

// Load reads the items snapshot and merges its entries into the
// repository. Each entry is rebuilt through the explicit-identifier
// construction path, preferring the identifier inside the record and
// falling back to the entry key, then stored through Add so loaded
// entries are normalized exactly like fresh ones. Entries overwrite
// in-memory items with the same identifier.
//
// A missing snapshot surfaces as ErrNoSnapshot for the caller to treat
// as "start empty". Any other failure wraps ErrInvalidSnapshot and
// leaves the repository unchanged.
func (r *Repository) Load() error {
	data, err := r.store.Read(SnapshotItems)
	if err != nil {
		return fmt.Errorf("reading items snapshot: %w", err)
	}

	var entries map[string]map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	// Unmarshal accepts a null document or null records without
	// complaint; neither is the expected structure.
	if entries == nil {
		return fmt.Errorf("%w: snapshot is null", ErrInvalidSnapshot)
	}

	loaded := make([]*Item, 0, len(entries))
	for key, rec := range entries {
		if rec == nil {
			return fmt.Errorf("%w: entry %q is null", ErrInvalidSnapshot, key)
		}
		id := rec[FieldIdentifier]
		if id == "" {
			id = key
		}
		it, err := NewItem(r.schema, id, rec)
		if err != nil {
			return fmt.Errorf("%w: entry %q names no identifier", ErrInvalidSnapshot, key)
		}
		loaded = append(loaded, it)
	}

	for _, it := range loaded {
		if err := r.Add(it); err != nil {
			return err
		}
	}
	return nil
}
