package blockvalidator

import (
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/processes/kernelhasher"
	"github.com/ppcoin/ppcd/domain/consensus/processes/targetcheck"
	"github.com/ppcoin/ppcd/domain/consensus/ruleerrors"
	"github.com/ppcoin/ppcd/domain/consensus/utils/chainview"
	"github.com/ppcoin/ppcd/domain/consensus/utils/testutils"
	"github.com/ppcoin/ppcd/domain/consensus/utils/transactionhelper"
)

func testFixture() (*dagconfig.Params, *chainview.View, *externalapi.DomainOutpoint, *externalapi.DomainBlockHeader, testutils.MapUTXOSet) {
	params := &dagconfig.Params{
		ModifierUpgradeBlockHeight: 1000,
		// Zero so every fixture's KernelModifier walk resolves at the
		// origin block itself; the forward-walk algorithm has its own
		// dedicated coverage in the stakeinput package.
		OldModifierIntervalSeconds:    0,
		StakeMinAgeSeconds:            3600,
		StakeMinDepthActivationHeight: 1000,
	}
	view := chainview.New()

	origin := &externalapi.DomainBlockHeader{Height: 0, Time: 1000, StakeModifier: 7, Flags: externalapi.FlagGeneratedStakeModifier}
	view.Connect(origin)

	prev := &externalapi.DomainBlockHeader{
		Height: 10, PrevHash: *origin.BlockHash(), Time: 1000 + params.StakeMinAgeSeconds + 100, Bits: 0x20123456,
	}
	view.Connect(prev)

	outpoint := &externalapi.DomainOutpoint{Index: 0}
	utxoSet := testutils.MapUTXOSet{
		*outpoint: &testutils.Entry{AmountValue: 1 << 62, BlockHeightValue: 0},
	}

	return params, view, outpoint, prev, utxoSet
}

func coinstakeBlock(outpoint externalapi.DomainOutpoint, blockTime, txTime uint32, bits uint32) *externalapi.DomainBlock {
	coinstake := transactionhelper.NewCoinstakeTransaction(1, txTime,
		&externalapi.DomainTransactionInput{PreviousOutpoint: outpoint},
		[]*externalapi.DomainTransactionOutput{
			{Value: 1000, ScriptPublicKey: []byte{0x01}},
		})
	coinbase := &externalapi.DomainTransaction{
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{Index: ^uint32(0)}},
		},
	}
	return &externalapi.DomainBlock{
		Header:       &externalapi.DomainBlockHeader{Time: blockTime, Bits: bits},
		Transactions: []*externalapi.DomainTransaction{coinbase, coinstake},
	}
}

func TestCheckProofOfStakeRejectsNonCoinstakeShape(t *testing.T) {
	params, view, outpoint, prev, utxoSet := testFixture()
	v := New(params, view, utxoSet, testutils.AcceptAllScriptVerifier{}, kernelhasher.New(params), targetcheck.New())

	block := coinstakeBlock(*outpoint, prev.Time, prev.Time, prev.Bits)
	block.Transactions[1].Outputs = block.Transactions[1].Outputs[:1] // drop below the 2-output minimum

	_, err := v.CheckProofOfStake(block, prev)
	if pkgerrors.Cause(err) != ruleerrors.ErrNotCoinstake {
		t.Fatalf("CheckProofOfStake error = %+v, want ErrNotCoinstake", err)
	}
}

func TestCheckProofOfStakeRejectsUnknownStakeOrigin(t *testing.T) {
	params, view, outpoint, prev, _ := testFixture()
	v := New(params, view, testutils.MapUTXOSet{}, testutils.AcceptAllScriptVerifier{}, kernelhasher.New(params), targetcheck.New())

	block := coinstakeBlock(*outpoint, prev.Time, prev.Time, prev.Bits)
	_, err := v.CheckProofOfStake(block, prev)
	if pkgerrors.Cause(err) != ruleerrors.ErrStakeOriginUnknown {
		t.Fatalf("CheckProofOfStake error = %+v, want ErrStakeOriginUnknown", err)
	}
}

func TestCheckProofOfStakeRejectsBadScriptSig(t *testing.T) {
	params, view, outpoint, prev, utxoSet := testFixture()
	wantErr := pkgerrors.New("bad sig")
	v := New(params, view, utxoSet, testutils.RejectAllScriptVerifier{Err: wantErr}, kernelhasher.New(params), targetcheck.New())

	block := coinstakeBlock(*outpoint, prev.Time, prev.Time, prev.Bits)
	_, err := v.CheckProofOfStake(block, prev)
	if pkgerrors.Cause(err) != ruleerrors.ErrBadScriptSig {
		t.Fatalf("CheckProofOfStake error = %+v, want ErrBadScriptSig", err)
	}
}

func TestCheckProofOfStakeRejectsImmatureStake(t *testing.T) {
	params, view, outpoint, _, utxoSet := testFixture()
	v := New(params, view, utxoSet, testutils.AcceptAllScriptVerifier{}, kernelhasher.New(params), targetcheck.New())

	origin := &externalapi.DomainBlockHeader{Height: 0, Time: 1000}
	freshPrev := &externalapi.DomainBlockHeader{Height: 1, PrevHash: *origin.BlockHash(), Time: 1001, Bits: 0x20123456}
	view.Connect(freshPrev)

	block := coinstakeBlock(*outpoint, freshPrev.Time, freshPrev.Time, freshPrev.Bits)
	_, err := v.CheckProofOfStake(block, freshPrev)
	if pkgerrors.Cause(err) != ruleerrors.ErrImmatureStake {
		t.Fatalf("CheckProofOfStake error = %+v, want ErrImmatureStake", err)
	}
}

func TestCheckProofOfStakeRejectsTimestampMismatch(t *testing.T) {
	params, view, outpoint, prev, utxoSet := testFixture()
	v := New(params, view, utxoSet, testutils.AcceptAllScriptVerifier{}, kernelhasher.New(params), targetcheck.New())

	block := coinstakeBlock(*outpoint, prev.Time, prev.Time+1, prev.Bits)
	_, err := v.CheckProofOfStake(block, prev)
	if pkgerrors.Cause(err) != ruleerrors.ErrTimestampMismatch {
		t.Fatalf("CheckProofOfStake error = %+v, want ErrTimestampMismatch", err)
	}
}

func TestCheckProofOfStakeSucceedsAgainstASaturatedTarget(t *testing.T) {
	params, view, outpoint, prev, utxoSet := testFixture()
	v := New(params, view, utxoSet, testutils.AcceptAllScriptVerifier{}, kernelhasher.New(params), targetcheck.New())

	// bits' wide exponent combined with the fixture's huge staked value
	// saturates the weighted target, so the kernel hash is guaranteed to
	// clear it regardless of its actual bit pattern.
	block := coinstakeBlock(*outpoint, prev.Time, prev.Time, prev.Bits)
	kernelHash, err := v.CheckProofOfStake(block, prev)
	if err != nil {
		t.Fatalf("CheckProofOfStake returned error: %+v", err)
	}
	if kernelHash == nil {
		t.Fatal("CheckProofOfStake returned a nil kernel hash on success")
	}
}
