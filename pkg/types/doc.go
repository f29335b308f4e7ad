// Package types defines the metadata schema, the Item entity, the
// Repository and Accounts stores, the SnapshotStore interface, and the
// sentinel error values shared across mediashelf.
//
// None of the types here lock. Every operation runs in the caller's
// goroutine and completes before returning; serializing access is the
// caller's obligation. The CLI shell runs single-goroutine, which
// satisfies the contract.
package types
