package consensus

import (
	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/processes/blockvalidator"
	"github.com/ppcoin/ppcd/domain/consensus/processes/checksumledger"
	"github.com/ppcoin/ppcd/domain/consensus/processes/kernelhasher"
	"github.com/ppcoin/ppcd/domain/consensus/processes/stakemodifier"
	"github.com/ppcoin/ppcd/domain/consensus/processes/targetcheck"
	"github.com/ppcoin/ppcd/domain/consensus/utils/chainview"
)

// Factory instantiates new Consensuses.
type Factory interface {
	NewConsensus(params *dagconfig.Params, utxoSet model.UTXOSet, scriptVerifier model.ScriptVerifier) Consensus
}

type factory struct{}

// NewConsensus wires the nine kernel components (C1-C9) into a Consensus.
// utxoSet and scriptVerifier are the only collaborators this package
// cannot construct itself (spec.md §1 Non-goals: no persistence format,
// no script interpreter).
func (f *factory) NewConsensus(params *dagconfig.Params, utxoSet model.UTXOSet, scriptVerifier model.ScriptVerifier) Consensus {
	chainView := chainview.New()

	modifierSelector := stakemodifier.New(params, chainView)
	kernelHasher := kernelhasher.New(params)
	targetCheck := targetcheck.New()
	checksumLedger := checksumledger.New(params)
	blockValidator := blockvalidator.New(params, chainView, utxoSet, scriptVerifier, kernelHasher, targetCheck)

	return &consensus{
		params:    params,
		chainView: chainView,

		modifierSelector: modifierSelector,
		kernelHasher:     kernelHasher,
		targetCheck:      targetCheck,
		checksumLedger:   checksumLedger,
		blockValidator:   blockValidator,

		selectionTracer: modifierSelector,
	}
}

// NewFactory creates a new Consensus factory.
func NewFactory() Factory {
	return &factory{}
}
