// Package hashkey provides an xxhash-assisted lookup index for compounds
// whose entry count makes a linear key scan worth skipping, the same
// pattern the arloliu/mebo pack repo's internal/hash package uses to
// accelerate metric-name lookups.
package hashkey

import "github.com/cespare/xxhash/v2"

// Hash returns the xxhash of key. Two equal key byte slices always hash
// equal; this is a lookup accelerator, not a content digest, so no
// collision resistance beyond xxhash's own is assumed or required.
func Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Index buckets entry positions by key hash, preserving insertion order
// within a bucket so "first occurrence wins" falls out of a forward scan
// of each bucket rather than needing separate bookkeeping.
type Index struct {
	buckets map[uint64][]int
}

// Build indexes n entries, calling keyAt(i) to get the key bytes for entry
// i. The index does not retain keyAt or the entries themselves; it is
// rebuilt from scratch whenever a compound is mutated, rather than
// incrementally maintained, which keeps insertion-order and duplicate-key
// semantics simple at the cost of an O(n) rebuild.
func Build(n int, keyAt func(i int) []byte) *Index {
	idx := &Index{buckets: make(map[uint64][]int, n)}
	for i := 0; i < n; i++ {
		h := Hash(keyAt(i))
		idx.buckets[h] = append(idx.buckets[h], i)
	}
	return idx
}

// First returns the index of the first entry whose key (as resolved by
// keyAt) equals want, or -1 if none match.
func (idx *Index) First(want []byte, keyAt func(i int) []byte) int {
	if idx == nil {
		return -1
	}
	h := Hash(want)
	for _, i := range idx.buckets[h] {
		if bytesEqual(keyAt(i), want) {
			return i
		}
	}
	return -1
}

// All returns every entry index whose key equals want, in insertion order.
func (idx *Index) All(want []byte, keyAt func(i int) []byte) []int {
	if idx == nil {
		return nil
	}
	h := Hash(want)
	var out []int
	for _, i := range idx.buckets[h] {
		if bytesEqual(keyAt(i), want) {
			out = append(out, i)
		}
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
