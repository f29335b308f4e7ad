package types

import (
	"fmt"
	"sort"
	"strings"
)

// AccountEntry is one registered contributor. The address is the
// uniqueness key; the name is display metadata.
type AccountEntry struct {
	Address string
	Name    string
}

// Accounts is the registry of contributor identities, keyed by
// address. Not safe for concurrent use.
type Accounts struct {
	store SnapshotStore
	names map[string]string
}

// NewAccounts returns an empty registry persisting through store.
func NewAccounts(store SnapshotStore) *Accounts {
	return &Accounts{
		store: store,
		names: make(map[string]string),
	}
}

// Add parses raw as either a bare address or the display form
// `"Name" <address>` and registers it. Parsing splits on the first "<"
// only: the left part, trimmed of whitespace and surrounding quotes,
// is the name; the right part, trimmed of whitespace and a trailing
// ">", is the address. Addresses are not validated beyond that.
// Returns ErrEmptyAddress when nothing remains after trimming and
// ErrDuplicateAddress when the address is already registered.
func (a *Accounts) Add(raw string) error {
	address, name := splitAddress(raw)
	if address == "" {
		return ErrEmptyAddress
	}
	if _, exists := a.names[address]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAddress, address)
	}
	a.names[address] = name
	return nil
}

// splitAddress applies the first-"<" parse rule. A "<" inside the name
// part is not supported.
func splitAddress(raw string) (address, name string) {
	raw = strings.TrimSpace(raw)
	idx := strings.Index(raw, "<")
	if idx < 0 {
		return raw, ""
	}
	name = strings.Trim(strings.TrimSpace(raw[:idx]), `"`)
	address = strings.TrimSpace(raw[idx+1:])
	address = strings.TrimSpace(strings.TrimSuffix(address, ">"))
	return address, name
}

// Lookup returns the display name registered for address.
func (a *Accounts) Lookup(address string) (string, bool) {
	name, ok := a.names[address]
	return name, ok
}

// Len returns the number of registered accounts.
func (a *Accounts) Len() int {
	return len(a.names)
}

// Entries returns the registered accounts sorted by address. The
// slice is a copy.
func (a *Accounts) Entries() []AccountEntry {
	out := make([]AccountEntry, 0, len(a.names))
	for addr, name := range a.names {
		out = append(out, AccountEntry{Address: addr, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Dump writes the accounts snapshot through the store: one
// display-form line per account, sorted by address, so snapshots of
// the same registry are byte identical.
func (a *Accounts) Dump() error {
	var b strings.Builder
	for _, e := range a.Entries() {
		fmt.Fprintf(&b, "\"%s\" <%s>\n", e.Name, e.Address)
	}
	if err := a.store.Write(SnapshotAccounts, []byte(b.String())); err != nil {
		return fmt.Errorf("writing accounts snapshot: %w", err)
	}
	return nil
}

// Load reads the accounts snapshot and feeds every non-blank line
// through Add, so restoring inherits the exact parse, validation, and
// duplicate semantics of direct input. A snapshot holding a duplicate
// address therefore fails mid-load, with the lines before it already
// registered. A missing snapshot surfaces as ErrNoSnapshot.
func (a *Accounts) Load() error {
	data, err := a.store.Read(SnapshotAccounts)
	if err != nil {
		return fmt.Errorf("reading accounts snapshot: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := a.Add(line); err != nil {
			return fmt.Errorf("restoring account %q: %w", strings.TrimSpace(line), err)
		}
	}
	return nil
}
