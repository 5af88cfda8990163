package nbt

import (
	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/hashkey"
	"github.com/nullab-io/nbt/internal/parser"
)

// ReadonlyCompound is a read-only view over a parsed compound's children,
// in source order.
type ReadonlyCompound[E bufcursor.Endian] struct {
	inner parser.Compound[E]
}

func (c ReadonlyCompound[E]) Len() int { return c.inner.Len() }

// Get returns the first entry for key, per the duplicate-key policy:
// first occurrence wins (spec.md §9 Open Question, decided in DESIGN.md).
func (c ReadonlyCompound[E]) Get(key string) (ReadonlyValue[E], bool) {
	v, ok := c.inner.Get([]byte(key))
	return wrapValue(v), ok
}

func (c ReadonlyCompound[E]) Contains(key string) bool {
	return c.inner.Contains([]byte(key))
}

// ReadonlyEntry is one (key, value) pair of a compound, in source order.
type ReadonlyEntry[E bufcursor.Endian] struct {
	Key   string
	Value ReadonlyValue[E]
}

// Entries exposes the full entry slice, including duplicates, in source
// order.
func (c ReadonlyCompound[E]) Entries() []ReadonlyEntry[E] {
	es := c.inner.Entries()
	out := make([]ReadonlyEntry[E], len(es))
	for i, e := range es {
		out[i] = ReadonlyEntry[E]{Key: string(e.Key), Value: wrapValue(e.Value)}
	}
	return out
}

// hashIndexThreshold is the entry count at or above which OwnedCompound builds
// an xxhash-assisted lookup index instead of relying on a linear scan, the
// same small-map/large-map split the arloliu/mebo pack repo's
// internal/hash package documents for its own metric-name index.
const hashIndexThreshold = 16

// OwnedCompound is a mutable, insertion-ordered key/value container.
type OwnedCompound struct {
	entries []ownedEntry
	index   *hashkey.Index
}

type ownedEntry struct {
	Key   string
	Value OwnedValue
}

// OwnedEntry is one (key, value) pair returned by OwnedCompound.Entries.
type OwnedEntry struct {
	Key   string
	Value OwnedValue
}

// NewOwnedCompound returns an empty, mutable compound.
func NewOwnedCompound() *OwnedCompound { return &OwnedCompound{} }

func (c *OwnedCompound) Kind() TagID { return TagCompound }
func (c *OwnedCompound) Len() int    { return len(c.entries) }

func (c *OwnedCompound) keyAt(i int) []byte { return []byte(c.entries[i].Key) }

// rebuildIndex rebuilds the lookup index from scratch rather than updating
// it incrementally, so "first occurrence wins" for duplicate keys falls
// directly out of the rebuild's forward scan order instead of needing
// separate bookkeeping for insertion order under mutation.
func (c *OwnedCompound) rebuildIndex() {
	if len(c.entries) < hashIndexThreshold {
		c.index = nil
		return
	}
	c.index = hashkey.Build(len(c.entries), c.keyAt)
}

func (c *OwnedCompound) indexOf(key string) int {
	if c.index != nil {
		return c.index.First([]byte(key), c.keyAt)
	}
	for i, e := range c.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the first entry for key.
func (c *OwnedCompound) Get(key string) (OwnedValue, bool) {
	i := c.indexOf(key)
	if i < 0 {
		return nil, false
	}
	return c.entries[i].Value, true
}

func (c *OwnedCompound) Contains(key string) bool {
	return c.indexOf(key) >= 0
}

// appendRaw appends key/v unconditionally, without checking whether key
// already exists. Callers that append a whole batch this way must call
// rebuildIndex once afterward; used by ToOwned to preserve a source tree's
// duplicate keys exactly (see convert.go), which Insert's dedup would
// otherwise collapse to the wrong occurrence.
func (c *OwnedCompound) appendRaw(key string, v OwnedValue) {
	c.entries = append(c.entries, ownedEntry{Key: key, Value: v})
}

// Insert replaces the value of the first existing entry for key in place,
// or appends a new entry if key is absent. It reports whether an existing
// entry was replaced.
func (c *OwnedCompound) Insert(key string, v OwnedValue) bool {
	if i := c.indexOf(key); i >= 0 {
		c.entries[i].Value = v
		return true
	}
	c.entries = append(c.entries, ownedEntry{Key: key, Value: v})
	c.rebuildIndex()
	return false
}

// Remove deletes the first entry for key, if present, preserving the
// relative order of the remaining entries.
func (c *OwnedCompound) Remove(key string) bool {
	i := c.indexOf(key)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.rebuildIndex()
	return true
}

// Entries returns every entry, including duplicates, in insertion order.
func (c *OwnedCompound) Entries() []OwnedEntry {
	out := make([]OwnedEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = OwnedEntry{Key: e.Key, Value: e.Value}
	}
	return out
}
