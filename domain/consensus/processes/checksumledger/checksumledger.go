// Package checksumledger implements component C9 of spec.md §4.8: the
// per-block modifier checksum chain and the hard-coded mainnet checkpoint
// table that guards it.
package checksumledger

import (
	"encoding/binary"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/doublesha256"
)

// mainnetCheckpoints hard-codes the known-good modifier checksum at every
// height the mainnet chain has ever been checkpointed at. Spec.md §4.8:
// checked only on mainnet.
var mainnetCheckpoints = map[uint32]uint32{
	0: 0xfd11f4e7,
}

// Ledger implements model.ChecksumLedger.
type Ledger struct {
	params *dagconfig.Params
}

// New returns a Ledger. Checkpoints are only enforced when params is
// dagconfig.MainnetParams; callers are still expected to skip the
// CheckModifierCheckpoint call on other networks per spec.md §4.8, but a
// Ledger built for a non-mainnet network answers every height as
// unchecked anyway.
func New(params *dagconfig.Params) *Ledger {
	return &Ledger{params: params}
}

// ModifierChecksum implements model.ChecksumLedger: H32(SHA256d(
// prev_checksum ‖ flags ‖ pos_hash ‖ modifier)), where H32 takes the high
// 32 bits of the digest — read big-endian, matching the byte order
// DomainHash itself treats as most-significant (externalapi.hash_compare.go)
// — and modifier is whichever of the v1/v2 modifiers is active at
// header.Height.
func (l *Ledger) ModifierChecksum(prevChecksum uint32, header *externalapi.DomainBlockHeader) uint32 {
	writer := doublesha256.NewHashWriter()
	writer.InfallibleWriteUint32LE(prevChecksum)
	writer.InfallibleWriteUint32LE(uint32(header.Flags))
	writer.InfallibleWrite(header.ProofOfStakeHash.BytesSlice())

	if l.params.IsModifierV2(header.Height) {
		modifierV2 := header.StakeModifierV2
		writer.InfallibleWrite(modifierV2.BytesSlice())
	} else {
		writer.InfallibleWriteUint64LE(header.StakeModifier)
	}

	digest := writer.Finalize().BytesSlice()
	return binary.BigEndian.Uint32(digest[:4])
}

// CheckModifierCheckpoint implements model.ChecksumLedger: true if height
// carries no hard-coded checkpoint, or if checksum matches the one it
// carries.
func (l *Ledger) CheckModifierCheckpoint(height uint32, checksum uint32) bool {
	if l.params.NetworkID != dagconfig.Mainnet {
		return true
	}
	want, ok := mainnetCheckpoints[height]
	if !ok {
		return true
	}
	return want == checksum
}
