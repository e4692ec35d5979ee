// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single opaque application record: a mapping from field names
// to JSON-compatible values. The vault never inspects its contents.
type Record map[string]any

// RecordCollection is the ordered plaintext payload sealed into a vault.
// Order is significant and is preserved across seal/unlock.
type RecordCollection []Record

// Clone returns a copy of the collection with independent top-level maps.
// Nested values (slices, maps) are shared with the original.
func (c RecordCollection) Clone() RecordCollection {
	if c == nil {
		return nil
	}

	out := make(RecordCollection, len(c))
	for i, r := range c {
		cp := make(Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
