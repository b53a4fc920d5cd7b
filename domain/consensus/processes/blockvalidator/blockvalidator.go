// Package blockvalidator implements component C8 of spec.md §4.7: the
// top-level proof-of-stake check a candidate block's coinstake must pass
// against its parent.
package blockvalidator

import (
	"github.com/pkg/errors"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/processes/stakeinput"
	"github.com/ppcoin/ppcd/domain/consensus/ruleerrors"
)

// Validator implements model.BlockValidator.
type Validator struct {
	params    *dagconfig.Params
	chainView model.ChainView

	utxoSet        model.UTXOSet
	scriptVerifier model.ScriptVerifier
	kernelHasher   model.KernelHasher
	targetCheck    model.TargetCheck
}

// New wires a Validator's collaborators. Script interpretation and UTXO
// lookup are supplied by the caller (spec.md §1 Non-goals); this package
// never constructs them itself.
func New(params *dagconfig.Params, chainView model.ChainView, utxoSet model.UTXOSet,
	scriptVerifier model.ScriptVerifier, kernelHasher model.KernelHasher, targetCheck model.TargetCheck) *Validator {

	return &Validator{
		params:         params,
		chainView:      chainView,
		utxoSet:        utxoSet,
		scriptVerifier: scriptVerifier,
		kernelHasher:   kernelHasher,
		targetCheck:    targetCheck,
	}
}

// CheckProofOfStake implements model.BlockValidator, per spec.md §4.7
// steps 1-7.
func (v *Validator) CheckProofOfStake(block *externalapi.DomainBlock, prev *externalapi.DomainBlockHeader) (*externalapi.DomainHash, error) {
	coinstake, ok := block.Coinstake()
	if !ok || !coinstake.IsCoinStake() {
		return nil, errors.WithStack(ruleerrors.ErrNotCoinstake)
	}

	outpoint := coinstake.Inputs[0].PreviousOutpoint
	entry, ok := v.utxoSet.Get(&outpoint)
	if !ok {
		return nil, errors.WithStack(ruleerrors.ErrStakeOriginUnknown)
	}

	if err := v.scriptVerifier.VerifySignatureScript(coinstake, 0, entry.ScriptPublicKey()); err != nil {
		return nil, errors.WithStack(ruleerrors.ErrBadScriptSig)
	}

	input, err := stakeinput.New(v.params, v.chainView, outpoint, entry)
	if err != nil {
		return nil, err
	}

	origin := input.OriginBlockRef()
	if !v.params.HasMinAgeOrDepth(prev.Height+1, block.Header.Time, origin.Height, origin.Time) {
		return nil, errors.WithStack(ruleerrors.ErrImmatureStake)
	}

	kernelHash, err := v.kernelHasher.ComputeKernelHash(prev, input, coinstake.Time)
	if err != nil {
		return nil, err
	}

	passes, err := v.targetCheck.Passes(block.Header.Bits, input.ValueSatoshis(), kernelHash)
	if err != nil {
		return nil, err
	}
	if !passes {
		return nil, errors.WithStack(ruleerrors.ErrKernelTargetMissed)
	}

	if block.Header.Time != coinstake.Time {
		return nil, errors.WithStack(ruleerrors.ErrTimestampMismatch)
	}

	return kernelHash, nil
}
