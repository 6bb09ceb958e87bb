// Package store provides the delimited flat-file persistence used by every
// record collection in the system: one file per entity, a header line, one
// record per line, comma-separated fields with the record key in the first
// field.
package store

import "strconv"

// Delimiter separates fields on disk. Field values must never contain it;
// input validation enforces that before records reach a store.
const Delimiter = ","

// Store is the ordered-collection contract shared by the file-backed
// implementation and the in-memory test double. ReplaceAll is the only update
// primitive: services perform read-modify-ReplaceAll sequences under their own
// locks, so no row-level update exists.
type Store[R any] interface {
	LoadAll() ([]R, error)
	Append(R) error
	ReplaceAll([]R) error
}

// Codec maps one record type onto its row layout. Parse returning an error
// marks the row malformed, which LoadAll skips rather than failing the load.
type Codec[R any] interface {
	Header() []string
	Fields(R) []string
	Parse([]string) (R, error)
}

// NextID derives the next identifier from the records currently present:
// one past the highest numeric key, ignoring unparseable keys, "1" when the
// collection is empty. It is re-derived on every allocation, so deletions
// leave gaps but an emptied collection starts over at 1. Callers must hold
// their mutation lock across NextID and the subsequent append.
func NextID[R any](records []R, key func(R) string) string {
	maxID := 0
	for _, r := range records {
		id, err := strconv.Atoi(key(r))
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}

	return strconv.Itoa(maxID + 1)
}

// FindByKey returns the first record whose key matches want.
func FindByKey[R any](records []R, key func(R) string, want string) (R, bool) {
	for _, r := range records {
		if key(r) == want {
			return r, true
		}
	}

	var zero R
	return zero, false
}
