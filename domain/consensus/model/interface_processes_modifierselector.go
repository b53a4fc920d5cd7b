package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// ModifierSelector is the C4 component of spec.md §4.3: given an ancestor
// window, it deterministically selects 64 blocks and folds their entropy
// bits into a fresh 64-bit stake modifier.
type ModifierSelector interface {
	// ComputeNextModifier implements compute_next_modifier of spec.md §6.
	// It returns the modifier to carry on a block whose parent is prev,
	// and whether that block generates (rather than inherits) it.
	ComputeNextModifier(prev *externalapi.DomainBlockHeader) (modifier uint64, generated bool, err error)

	// ComputeStakeModifierV2 implements compute_stake_modifier_v2 of
	// spec.md §6: the v2 chained 256-bit modifier,
	// SHA256d(kernelHash ‖ prevModifier).
	ComputeStakeModifierV2(prev *externalapi.DomainBlockHeader, kernelHash *externalapi.DomainHash) (*externalapi.DomainHash, error)
}
