package types

import "errors"

// Item construction and field access errors.
var (
	// ErrNoIdentifier is returned when neither content nor an explicit
	// identifier can determine an item's identity.
	ErrNoIdentifier = errors.New("can not determine item identifier")

	// ErrUnknownAttribute is returned when a field outside the metadata
	// schema is requested from an item.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidItem is returned when a candidate without a usable
	// identifier is added to a repository.
	ErrInvalidItem = errors.New("invalid item")
)

// Accounts registry errors.
var (
	// ErrEmptyAddress is returned when parsing account input leaves no
	// address.
	ErrEmptyAddress = errors.New("empty address")

	// ErrDuplicateAddress is returned when an address is already
	// registered.
	ErrDuplicateAddress = errors.New("address already exists")
)

// Snapshot storage errors.
var (
	// ErrNoSnapshot is returned by a SnapshotStore when nothing has
	// been written under the requested name. Callers usually treat it
	// as "start empty" rather than as a failure.
	ErrNoSnapshot = errors.New("snapshot not found")

	// ErrInvalidSnapshot is returned when snapshot bytes cannot be
	// decoded into the expected structure.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
