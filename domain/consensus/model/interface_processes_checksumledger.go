package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// ChecksumLedger is the C9 component of spec.md §4.8: it computes the
// per-block 32-bit modifier checksum and enforces the hard-coded mainnet
// checkpoint table.
type ChecksumLedger interface {
	// ModifierChecksum implements modifier_checksum of spec.md §6.
	ModifierChecksum(prevChecksum uint32, header *externalapi.DomainBlockHeader) uint32

	// CheckModifierCheckpoint implements check_modifier_checkpoint of
	// spec.md §6. Callers are expected to skip the call entirely on
	// non-mainnet networks (spec.md §4.8).
	CheckModifierCheckpoint(height uint32, checksum uint32) bool
}
