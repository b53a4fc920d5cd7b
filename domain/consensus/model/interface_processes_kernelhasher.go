package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// KernelHasher is the C5 component of spec.md §4.4: it computes the 256-bit
// kernel proof hash a stake input must produce.
type KernelHasher interface {
	// ComputeKernelHash serializes and double-SHA256-hashes
	// (modifier ‖ originBlockTime ‖ uniquenessBytes ‖ attemptTime),
	// choosing the v1 or v2 modifier serialization by
	// params.IsModifierV2(prevHeader.Height + 1).
	ComputeKernelHash(prevHeader *externalapi.DomainBlockHeader, stakeInput StakeInput, attemptTime uint32) (*externalapi.DomainHash, error)
}
