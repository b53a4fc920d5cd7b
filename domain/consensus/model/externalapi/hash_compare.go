package externalapi

import "github.com/holiman/uint256"

// Less reports whether hash is numerically less than other when both are
// interpreted as big-endian unsigned 256-bit integers (byte 0 most
// significant). This is the tie-breaker ordering of spec.md §4.3
// ("block_hash as big-endian unsigned 256-bit tie-breaker"). ToUint256
// gives the same ordering as an integer, which is what the kernel-hash
// versus weighted-target comparison (spec.md §4.5) uses.
//
// Because this hash type's byte layout is chosen end-to-end by this
// module, "big-endian" here simply means byte-for-byte lexicographic
// order: no reversal is needed anywhere else in the kernel.
func (hash *DomainHash) Less(other *DomainHash) bool {
	for i := 0; i < DomainHashSize; i++ {
		if hash.hashArray[i] != other.hashArray[i] {
			return hash.hashArray[i] < other.hashArray[i]
		}
	}
	return false
}

// ToUint256 interprets the hash as a big-endian unsigned 256-bit integer.
func (hash *DomainHash) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes(hash.hashArray[:])
}
