package consensus

import (
	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/processes/stakeinput"
	"github.com/ppcoin/ppcd/domain/consensus/processes/stakemodifier"
	"github.com/ppcoin/ppcd/domain/consensus/utils/chainview"
	"github.com/ppcoin/ppcd/domain/consensus/utils/stakesearch"
)

// Consensus exposes the nine kernel components (spec.md §4) as a single
// collaborator, wired once by Factory.NewConsensus. Everything outside
// this package's concern — block assembly, networking, script
// interpretation, wallets, and persistence — is supplied by the caller
// through model.UTXOSet and model.ScriptVerifier, or is entirely out of
// scope (spec.md §1).
type Consensus interface {
	// CheckProofOfStake validates block's coinstake kernel against prev.
	CheckProofOfStake(block *externalapi.DomainBlock, prev *externalapi.DomainBlockHeader) (*externalapi.DomainHash, error)

	// ComputeNextModifier returns the stake modifier a block whose parent
	// is prev should carry, and whether that block generates it.
	ComputeNextModifier(prev *externalapi.DomainBlockHeader) (modifier uint64, generated bool, err error)

	// ComputeStakeModifierV2 returns the v2 chained modifier a block
	// carrying kernelHash should record, given its parent prev.
	ComputeStakeModifierV2(prev *externalapi.DomainBlockHeader, kernelHash *externalapi.DomainHash) (*externalapi.DomainHash, error)

	// ComputeKernelHash computes the kernel hash stakeInput would produce
	// against prev at attemptTime.
	ComputeKernelHash(prev *externalapi.DomainBlockHeader, stakeInput model.StakeInput, attemptTime uint32) (*externalapi.DomainHash, error)

	// TargetPasses reports whether kernelHash clears bits, weighted by
	// valueSatoshis.
	TargetPasses(bits uint32, valueSatoshis int64, kernelHash *externalapi.DomainHash) (bool, error)

	// ModifierChecksum extends the checksum chain through header.
	ModifierChecksum(prevChecksum uint32, header *externalapi.DomainBlockHeader) uint32

	// CheckModifierCheckpoint enforces the hard-coded mainnet checkpoint
	// table at height, if any.
	CheckModifierCheckpoint(height uint32, checksum uint32) bool

	// NewStakeInput resolves outpoint/entry into a model.StakeInput, for
	// use with ComputeKernelHash or a Miner.
	NewStakeInput(outpoint externalapi.DomainOutpoint, entry externalapi.UTXOEntry) (model.StakeInput, error)

	// NewMiner returns a stakesearch.Miner wired to this Consensus's
	// KernelHasher and TargetCheck, for use by an out-of-process search
	// loop (spec.md §9).
	NewMiner() *stakesearch.Miner

	// Connect registers header with the chain view this Consensus reads
	// ancestors through. The caller is responsible for calling it in
	// height order as blocks are accepted; this package never decides
	// chain selection itself (spec.md §1 Non-goals).
	Connect(header *externalapi.DomainBlockHeader)

	// ChainView returns the underlying chain view, for callers that need
	// direct header lookups (e.g. to build a model.UTXOSet).
	ChainView() model.ChainView

	// Params returns the active network's consensus parameter set.
	Params() *dagconfig.Params
}

type consensus struct {
	params    *dagconfig.Params
	chainView *chainview.View

	modifierSelector model.ModifierSelector
	kernelHasher     model.KernelHasher
	targetCheck      model.TargetCheck
	checksumLedger   model.ChecksumLedger
	blockValidator   model.BlockValidator

	// selectionTracer is non-nil exactly when modifierSelector is a
	// *stakemodifier.Selector, which is always the case via Factory. It is
	// a separate field rather than a type assertion at every call so a
	// future caller wiring a different ModifierSelector just gets silent
	// no-op tracing instead of a panic.
	selectionTracer *stakemodifier.Selector
}

func (c *consensus) CheckProofOfStake(block *externalapi.DomainBlock, prev *externalapi.DomainBlockHeader) (*externalapi.DomainHash, error) {
	return c.blockValidator.CheckProofOfStake(block, prev)
}

func (c *consensus) ComputeNextModifier(prev *externalapi.DomainBlockHeader) (uint64, bool, error) {
	modifier, generated, err := c.modifierSelector.ComputeNextModifier(prev)
	if err == nil && generated && c.selectionTracer != nil {
		for _, round := range c.selectionTracer.LastSelectionTrace() {
			log.Tracef("selection round %d: chose block %s (height %d), entropy bit %d",
				round.Round, round.BlockHash, round.Height, round.EntropyBit)
		}
	}
	return modifier, generated, err
}

func (c *consensus) ComputeStakeModifierV2(prev *externalapi.DomainBlockHeader, kernelHash *externalapi.DomainHash) (*externalapi.DomainHash, error) {
	return c.modifierSelector.ComputeStakeModifierV2(prev, kernelHash)
}

func (c *consensus) ComputeKernelHash(prev *externalapi.DomainBlockHeader, stakeInput model.StakeInput, attemptTime uint32) (*externalapi.DomainHash, error) {
	return c.kernelHasher.ComputeKernelHash(prev, stakeInput, attemptTime)
}

func (c *consensus) TargetPasses(bits uint32, valueSatoshis int64, kernelHash *externalapi.DomainHash) (bool, error) {
	return c.targetCheck.Passes(bits, valueSatoshis, kernelHash)
}

func (c *consensus) ModifierChecksum(prevChecksum uint32, header *externalapi.DomainBlockHeader) uint32 {
	return c.checksumLedger.ModifierChecksum(prevChecksum, header)
}

func (c *consensus) CheckModifierCheckpoint(height uint32, checksum uint32) bool {
	return c.checksumLedger.CheckModifierCheckpoint(height, checksum)
}

func (c *consensus) NewStakeInput(outpoint externalapi.DomainOutpoint, entry externalapi.UTXOEntry) (model.StakeInput, error) {
	return stakeinput.New(c.params, c.chainView, outpoint, entry)
}

func (c *consensus) NewMiner() *stakesearch.Miner {
	return stakesearch.New(c.kernelHasher, c.targetCheck)
}

func (c *consensus) Connect(header *externalapi.DomainBlockHeader) {
	c.chainView.Connect(header)
}

func (c *consensus) ChainView() model.ChainView {
	return c.chainView
}

func (c *consensus) Params() *dagconfig.Params {
	return c.params
}
