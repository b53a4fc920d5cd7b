// Package kernelhasher implements component C5 of spec.md §4.4: the
// kernel proof hash every stake attempt is tested against.
package kernelhasher

import (
	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/doublesha256"
)

// Hasher implements model.KernelHasher.
type Hasher struct {
	params *dagconfig.Params
}

// New returns a Hasher reading the modifier-upgrade height from params.
func New(params *dagconfig.Params) *Hasher {
	return &Hasher{params: params}
}

// ComputeKernelHash implements model.KernelHasher: SHA256d(modifier ‖
// origin_block_time ‖ uniqueness_bytes ‖ attempt_time). Under the v1 rule
// the modifier is the stake input's own forward-walked 64-bit modifier
// (spec.md §9: this is the bug-free replacement for GetKernelStakeModifier's
// collapsed do-once loop); under v2 it is the previous block's chained
// 256-bit modifier.
func (h *Hasher) ComputeKernelHash(prevHeader *externalapi.DomainBlockHeader, stakeInput model.StakeInput, attemptTime uint32) (*externalapi.DomainHash, error) {
	writer := doublesha256.NewHashWriter()

	if h.params.IsModifierV2(prevHeader.Height + 1) {
		modifierV2 := prevHeader.StakeModifierV2
		writer.InfallibleWrite(modifierV2.BytesSlice())
	} else {
		modifier, err := stakeInput.KernelModifier()
		if err != nil {
			return nil, err
		}
		writer.InfallibleWriteUint64LE(modifier)
	}

	origin := stakeInput.OriginBlockRef()
	writer.InfallibleWriteUint32LE(origin.Time)
	writer.InfallibleWrite(stakeInput.UniquenessBytes())
	writer.InfallibleWriteUint32LE(attemptTime)

	return writer.Finalize(), nil
}
