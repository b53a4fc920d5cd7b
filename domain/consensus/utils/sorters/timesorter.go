// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorters

import (
	"sort"

	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// TimestampedHash pairs a candidate block's time with its hash, the unit
// the modifier-selection round of spec.md §4.3 sorts on.
type TimestampedHash struct {
	Time uint32
	Hash *externalapi.DomainHash
}

// ByTimeThenHash implements sort.Interface over candidate blocks, ordered
// ascending by (time, block_hash) with the hash compared as a big-endian
// unsigned 256-bit tie-breaker, exactly as spec.md §4.3 requires.
type ByTimeThenHash []TimestampedHash

// Len is part of the sort.Interface implementation.
func (s ByTimeThenHash) Len() int {
	return len(s)
}

// Swap is part of the sort.Interface implementation.
func (s ByTimeThenHash) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Less is part of the sort.Interface implementation.
func (s ByTimeThenHash) Less(i, j int) bool {
	if s[i].Time != s[j].Time {
		return s[i].Time < s[j].Time
	}
	return s[i].Hash.Less(s[j].Hash)
}

// Sort is a convenience method: s.Sort() calls sort.Sort(s).
func (s ByTimeThenHash) Sort() { sort.Sort(s) }
