// Package stakeinput implements component C7 of spec.md §4.6: the narrow
// view a UTXO needs to expose to serve as a stake origin.
package stakeinput

import (
	"github.com/pkg/errors"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/ruleerrors"
)

// Input is a UTXO-backed model.StakeInput.
type Input struct {
	params    *dagconfig.Params
	chainView model.ChainView

	outpoint      externalapi.DomainOutpoint
	originHeader  *externalapi.DomainBlockHeader
	valueSatoshis int64
}

// New builds a StakeInput from an outpoint and the UTXO entry it resolves
// to. It fails with ErrStakeOriginUnknown if the entry's origin block is
// not present in chainView (spec.md §4.7 step 2).
func New(params *dagconfig.Params, chainView model.ChainView, outpoint externalapi.DomainOutpoint, entry externalapi.UTXOEntry) (*Input, error) {
	originHeader, ok := chainView.ByHeight(entry.BlockHeight())
	if !ok {
		return nil, errors.WithStack(ruleerrors.ErrStakeOriginUnknown)
	}
	return &Input{
		params:        params,
		chainView:     chainView,
		outpoint:      outpoint,
		originHeader:  originHeader,
		valueSatoshis: int64(entry.Amount()),
	}, nil
}

// OriginBlockRef implements model.StakeInput.
func (in *Input) OriginBlockRef() *externalapi.DomainBlockHeader {
	return in.originHeader
}

// UniquenessBytes implements model.StakeInput.
func (in *Input) UniquenessBytes() []byte {
	return in.outpoint.UniquenessBytes()
}

// ValueSatoshis implements model.StakeInput.
func (in *Input) ValueSatoshis() int64 {
	return in.valueSatoshis
}

// KernelModifier implements model.StakeInput: walk forward along the
// active chain from the origin block, height by height, tracking the most
// recently visited block that actually generated (rather than inherited)
// its modifier, until that block's time is at least
// OldModifierIntervalSeconds newer than the origin. Returns that
// generated block's v1 modifier.
//
// Spec.md §9 calls out that the source this kernel is modeled on collapsed
// this walk into a do-once loop via a stray `while(cond);`, so the origin
// block's own immediate successor was used unconditionally. This walk
// keeps advancing until the time condition is actually satisfied, and —
// like lastGeneratedModifier in the stakemodifier package — only updates
// its tracked time/modifier pair on a block that generated its modifier,
// since an inherited block's own StakeModifier field is not populated.
func (in *Input) KernelModifier() (uint64, error) {
	requiredTime := in.originHeader.Time + in.params.OldModifierIntervalSeconds

	cur := in.originHeader
	var lastGeneratedTime uint32
	var lastGeneratedModifier uint64
	haveGenerated := false
	if cur.GeneratedStakeModifier() {
		lastGeneratedTime = cur.Time
		lastGeneratedModifier = cur.StakeModifier
		haveGenerated = true
	}

	for !haveGenerated || lastGeneratedTime < requiredTime {
		next, ok := in.chainView.ByHeight(cur.Height + 1)
		if !ok {
			return 0, errors.WithStack(ruleerrors.ErrModifierUnavailable)
		}
		cur = next
		if cur.GeneratedStakeModifier() {
			lastGeneratedTime = cur.Time
			lastGeneratedModifier = cur.StakeModifier
			haveGenerated = true
		}
	}
	return lastGeneratedModifier, nil
}
