package externalapi

import (
	"crypto/sha256"
	"encoding/binary"
)

// HeaderFlags is a bitset carried on a block header. Spec.md §3.
type HeaderFlags uint32

const (
	// FlagGeneratedStakeModifier is set when the block generated (as
	// opposed to inherited from its parent) its stake modifier.
	FlagGeneratedStakeModifier HeaderFlags = 1 << 0

	// FlagStakeEntropyBit carries the per-block entropy bit described in
	// spec.md §4.2. It is always 0 or 1.
	FlagStakeEntropyBit HeaderFlags = 1 << 1
)

// DomainBlockHeader is the immutable, kernel-relevant view of a block
// header (spec.md §3). It models a single linear chain, not a DAG: each
// header has exactly one PrevHash.
type DomainBlockHeader struct {
	Height   uint32
	PrevHash DomainHash
	Time     uint32
	Bits     uint32
	Flags    HeaderFlags

	IsProofOfStake bool

	// StakeModifier is the v1 (pre-upgrade) 64-bit stake modifier. Only
	// meaningful when Params.IsModifierV2(Height) is false.
	StakeModifier uint64

	// StakeModifierV2 is the v2 256-bit chained stake modifier. Only
	// meaningful when Params.IsModifierV2(Height) is true.
	StakeModifierV2 DomainHash

	ProofOfStakeHash DomainHash
	ModifierChecksum uint32
}

// Clone returns a clone of DomainBlockHeader.
func (header *DomainBlockHeader) Clone() *DomainBlockHeader {
	clone := *header
	return &clone
}

// Equal returns whether header equals other.
func (header *DomainBlockHeader) Equal(other *DomainBlockHeader) bool {
	if header == nil || other == nil {
		return header == other
	}
	return *header == *other
}

// GeneratedStakeModifier reports whether this header generated (rather than
// inherited) its stake modifier. Spec.md §3 invariant.
func (header *DomainBlockHeader) GeneratedStakeModifier() bool {
	return header.Flags&FlagGeneratedStakeModifier != 0
}

// StakeEntropyBit returns the 0/1 entropy bit carried in the header's
// flags.
func (header *DomainBlockHeader) StakeEntropyBit() uint8 {
	if header.Flags&FlagStakeEntropyBit != 0 {
		return 1
	}
	return 0
}

// WithGeneratedStakeModifier returns a clone of header with the
// GeneratedStakeModifier flag set or cleared.
func (header *DomainBlockHeader) WithGeneratedStakeModifier(generated bool) *DomainBlockHeader {
	clone := header.Clone()
	if generated {
		clone.Flags |= FlagGeneratedStakeModifier
	} else {
		clone.Flags &^= FlagGeneratedStakeModifier
	}
	return clone
}

// WithStakeEntropyBit returns a clone of header with its entropy-bit flag
// set to the given 0/1 value.
func (header *DomainBlockHeader) WithStakeEntropyBit(bit uint8) *DomainBlockHeader {
	clone := header.Clone()
	if bit != 0 {
		clone.Flags |= FlagStakeEntropyBit
	} else {
		clone.Flags &^= FlagStakeEntropyBit
	}
	return clone
}

// BlockHash computes the header's own block hash: double-SHA256 over its
// fixed little-endian serialization (spec.md §4.1). This is deliberately a
// narrower serialization than a wire-format header; it covers exactly the
// fields that identify the header for kernel purposes.
func (header *DomainBlockHeader) BlockHash() *DomainHash {
	var buf []byte
	var u32 [4]byte

	binary.LittleEndian.PutUint32(u32[:], header.Height)
	buf = append(buf, u32[:]...)

	buf = append(buf, header.PrevHash.BytesSlice()...)

	binary.LittleEndian.PutUint32(u32[:], header.Time)
	buf = append(buf, u32[:]...)

	binary.LittleEndian.PutUint32(u32[:], header.Bits)
	buf = append(buf, u32[:]...)

	binary.LittleEndian.PutUint32(u32[:], uint32(header.Flags))
	buf = append(buf, u32[:]...)

	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	return NewDomainHashFromByteArray(&second)
}

// DomainBlock pairs a header with its transactions. By PoS convention
// (spec.md §4.7), Transactions[0] is the coinbase and, on a PoS block,
// Transactions[1] is the coinstake.
type DomainBlock struct {
	Header       *DomainBlockHeader
	Transactions []*DomainTransaction
}

// Clone returns a clone of DomainBlock.
func (block *DomainBlock) Clone() *DomainBlock {
	transactionsClone := make([]*DomainTransaction, len(block.Transactions))
	for i, tx := range block.Transactions {
		transactionsClone[i] = tx.Clone()
	}
	return &DomainBlock{
		Header:       block.Header.Clone(),
		Transactions: transactionsClone,
	}
}

// Coinstake returns the block's coinstake transaction (Transactions[1]) and
// whether the block has one at all.
func (block *DomainBlock) Coinstake() (*DomainTransaction, bool) {
	if len(block.Transactions) < 2 {
		return nil, false
	}
	return block.Transactions[1], true
}
