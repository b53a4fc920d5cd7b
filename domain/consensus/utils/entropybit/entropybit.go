// Package entropybit implements component C3 of spec.md §4.2: the
// deterministic 0/1 entropy bit a block contributes to a stake modifier.
package entropybit

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/doublesha256"
)

// Compute returns entropy_bit(header) = low_bit(SHA256d(blockHash)), per
// spec.md §4.2. The same formula applies whether the block is PoW or PoS.
//
// "Low bit" is the least-significant bit of the digest interpreted as the
// big-endian unsigned 256-bit integer that externalapi.DomainHash.ToUint256
// and Less use everywhere else in the kernel, i.e. bit 0 of the digest's
// last byte.
func Compute(blockHash *externalapi.DomainHash) uint8 {
	digest := doublesha256.Sum(blockHash.BytesSlice())
	digestBytes := digest.BytesSlice()
	return digestBytes[len(digestBytes)-1] & 1
}
