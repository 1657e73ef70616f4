// Package store provides file-based persistence for speedread's launch state.
//
// It serialises data as JSON on disk with atomic temp-file-then-rename writes.
// All methods are concurrency-safe via internal locking. The launch record
// lives inside the virtual-environment directory it describes, so deleting the
// environment also forgets the record.
package store
