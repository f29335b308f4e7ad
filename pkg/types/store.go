package types

// Snapshot names. The values carry the file names the store has always
// used, so a file backend pointed at an existing data directory keeps
// reading the same files.
const (
	// SnapshotItems holds the serialized repository: one JSON object
	// mapping each identifier to a record of its set schema fields.
	SnapshotItems = "repository.json"

	// SnapshotAccounts holds the contributor registry: one
	// display-form line per account.
	SnapshotAccounts = "accounts.txt"
)

// SnapshotStore persists whole-store snapshots under fixed names.
// Write replaces the previous snapshot in full; partial updates do not
// exist at this layer, which keeps Repository and Accounts independent
// of the storage representation.
//
// Durability is the implementation's concern. The file backend writes
// through a temp file and rename so an interrupted write cannot leave
// a truncated snapshot behind.
type SnapshotStore interface {
	// Write stores data as the complete snapshot for name.
	Write(name string, data []byte) error

	// Read returns the complete snapshot stored under name.
	// Returns ErrNoSnapshot when none has been written.
	Read(name string) ([]byte, error)
}
