// Package hashset provides the excluded-block set the modifier-selection
// round of spec.md §4.3 grows round by round ("Add the selected block to
// the excluded set"). It is a general-purpose hash set, kept narrow to the
// handful of operations stakemodifier actually needs.
package hashset

import (
	"strings"

	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// HashSet is a set of block hashes.
type HashSet map[externalapi.DomainHash]struct{}

// New returns an empty HashSet.
func New() HashSet {
	return HashSet{}
}

// String joins every member's hex string with ", ".
func (hs HashSet) String() string {
	hashStrings := make([]string, 0, len(hs))
	for hash := range hs {
		hashStrings = append(hashStrings, hash.String())
	}
	return strings.Join(hashStrings, ", ")
}

// Add inserts hash into the set.
func (hs HashSet) Add(hash *externalapi.DomainHash) {
	hs[*hash] = struct{}{}
}

// Contains reports whether hash is already in the set — used by
// stakemodifier's selection round to skip blocks picked in an earlier
// round of the same refresh.
func (hs HashSet) Contains(hash *externalapi.DomainHash) bool {
	_, ok := hs[*hash]
	return ok
}
