package consensus

import (
	"testing"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/testutils"
)

func TestNewConsensusWiresParamsAndChainView(t *testing.T) {
	params := &dagconfig.RegtestParams
	c := NewFactory().NewConsensus(params, testutils.MapUTXOSet{}, testutils.AcceptAllScriptVerifier{})

	if c.Params() != params {
		t.Fatal("Params() did not return the params passed to NewConsensus")
	}
	if c.ChainView() == nil {
		t.Fatal("ChainView() returned nil")
	}
}

func TestConnectExtendsTheWiredChainView(t *testing.T) {
	params := &dagconfig.RegtestParams
	c := NewFactory().NewConsensus(params, testutils.MapUTXOSet{}, testutils.AcceptAllScriptVerifier{})

	genesis := &externalapi.DomainBlockHeader{Height: 0, Time: 1000, Flags: externalapi.FlagGeneratedStakeModifier}
	c.Connect(genesis)

	got, ok := c.ChainView().ByHeight(0)
	if !ok || !got.Equal(genesis) {
		t.Fatalf("ByHeight(0) = (%v, %v), want (genesis, true)", got, ok)
	}
	if c.ChainView().ActiveHeight() != 0 {
		t.Fatalf("ActiveHeight() = %d, want 0", c.ChainView().ActiveHeight())
	}
}

func TestNewStakeInputDelegatesToStakeinputPackage(t *testing.T) {
	params := &dagconfig.RegtestParams
	outpoint := externalapi.DomainOutpoint{Index: 0}
	entry := &testutils.Entry{AmountValue: 5000, BlockHeightValue: 0}
	utxoSet := testutils.MapUTXOSet{outpoint: entry}

	c := NewFactory().NewConsensus(params, utxoSet, testutils.AcceptAllScriptVerifier{})
	genesis := &externalapi.DomainBlockHeader{Height: 0, Time: 1000, Flags: externalapi.FlagGeneratedStakeModifier}
	c.Connect(genesis)

	input, err := c.NewStakeInput(outpoint, entry)
	if err != nil {
		t.Fatalf("NewStakeInput returned error: %+v", err)
	}
	if input.ValueSatoshis() != 5000 {
		t.Fatalf("ValueSatoshis() = %d, want 5000", input.ValueSatoshis())
	}
	if !input.OriginBlockRef().Equal(genesis) {
		t.Fatal("OriginBlockRef() did not resolve to the connected genesis header")
	}
}

func TestComputeNextModifierLeavesATraceTheFacadeCanLog(t *testing.T) {
	params := &dagconfig.Params{
		ModifierIntervalSeconds:    60,
		ModifierIntervalRatio:      3,
		TargetSpacingSeconds:       60,
		OldModifierIntervalSeconds: 600,
		ModifierUpgradeBlockHeight: 1000,
	}
	c := NewFactory().NewConsensus(params, testutils.MapUTXOSet{}, testutils.AcceptAllScriptVerifier{})

	genesis := &externalapi.DomainBlockHeader{Height: 0, Time: 1000, Flags: externalapi.FlagGeneratedStakeModifier}
	c.Connect(genesis)

	prev := genesis
	for i := uint32(1); i <= 20; i++ {
		h := &externalapi.DomainBlockHeader{Height: i, PrevHash: *prev.BlockHash(), Time: prev.Time + 30}
		c.Connect(h)
		prev = h
	}

	_, generated, err := c.ComputeNextModifier(prev)
	if err != nil {
		t.Fatalf("ComputeNextModifier returned error: %+v", err)
	}
	if !generated {
		t.Fatal("expected a fresh selection round to generate a new modifier")
	}

	cc := c.(*consensus)
	if len(cc.selectionTracer.LastSelectionTrace()) == 0 {
		t.Fatal("expected the facade's wired tracer to record the selection round it just ran")
	}
}

func TestNewMinerIsWiredToTheSameCollaborators(t *testing.T) {
	params := &dagconfig.RegtestParams
	c := NewFactory().NewConsensus(params, testutils.MapUTXOSet{}, testutils.AcceptAllScriptVerifier{})

	miner := c.NewMiner()
	if miner == nil {
		t.Fatal("NewMiner() returned nil")
	}
}
