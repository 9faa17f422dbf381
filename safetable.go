package corekit

import "sync"

// tableEntry owns one V plus a dedicated mutex guarding only that V,
// following the original's "ordered collection of entries, each with its
// own lock" design -- disjoint keys never contend with each other, only
// with the table's own reader/writer lock.
type tableEntry[K comparable, V any] struct {
	key   K
	value V
	mu    sync.Mutex
}

// SafeAccessTable is a keyed table where lookups across disjoint keys do
// not block each other; they only contend on the table's reader/writer
// lock, and concurrent readers of the *same* key serialize through that
// entry's mutex. Grounded on the snapshot-under-read-lock,
// mutate-under-write-lock idiom used for segmented-array growth in the
// wider pack.
type SafeAccessTable[K comparable, V any] struct {
	mu      sync.RWMutex
	entries []*tableEntry[K, V]
}

// NewSafeAccessTable creates an empty table.
func NewSafeAccessTable[K comparable, V any]() *SafeAccessTable[K, V] {
	return &SafeAccessTable[K, V]{}
}

// Insert appends a new entry under the write lock without checking for an
// existing key. Both entries of a duplicate key remain present; Find,
// TryInsert and Erase act on the earliest one, so a later duplicate is
// reachable through them only after the earlier entry is erased.
func (t *SafeAccessTable[K, V]) Insert(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, &tableEntry[K, V]{key: key, value: value})
}

// TryInsert replaces the existing entry's value if key is present,
// otherwise appends a new entry. Both paths run under the write lock; a
// replace additionally locks the entry itself so it cannot race a
// concurrently held [SafeAccessTable.Find] handle for the same key.
func (t *SafeAccessTable[K, V]) TryInsert(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		if e.key == key {
			e.mu.Lock()
			e.value = value
			e.mu.Unlock()
			return
		}
	}
	t.entries = append(t.entries, &tableEntry[K, V]{key: key, value: value})
}

// Find reader-locks the table, scans for key, and if found locks that
// entry's dedicated mutex before releasing the table lock -- only the
// per-entry lock is held once Find returns. Returns nil if key is absent.
// The returned handle must be released via [TableHandle.Release].
func (t *SafeAccessTable[K, V]) Find(key K) *TableHandle[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.key == key {
			e.mu.Lock()
			return &TableHandle[K, V]{entry: e}
		}
	}
	return nil
}

// Erase write-locks the table and, if key is present, waits for any
// outstanding Find handle on that entry to release before removing it.
func (t *SafeAccessTable[K, V]) Erase(key K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e.key == key {
			e.mu.Lock()
			e.mu.Unlock()
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Len returns the current entry count under the read lock.
func (t *SafeAccessTable[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// TableHandle is a non-owning borrow of one entry's value, held open by
// that entry's dedicated mutex. The table's own lock is not held while a
// TableHandle is live.
type TableHandle[K comparable, V any] struct {
	entry *tableEntry[K, V]
}

// Value returns a pointer to the entry's value, valid until Release.
func (h *TableHandle[K, V]) Value() *V { return &h.entry.value }

// Release unlocks the entry. The handle must not be used afterward.
func (h *TableHandle[K, V]) Release() {
	h.entry.mu.Unlock()
	h.entry = nil
}
