package stakesearch

import (
	"testing"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/processes/kernelhasher"
	"github.com/ppcoin/ppcd/domain/consensus/processes/targetcheck"
)

type stubStakeInput struct {
	origin     *externalapi.DomainBlockHeader
	uniqueness []byte
	value      int64
	modifier   uint64
}

func (s *stubStakeInput) OriginBlockRef() *externalapi.DomainBlockHeader { return s.origin }
func (s *stubStakeInput) UniquenessBytes() []byte                       { return s.uniqueness }
func (s *stubStakeInput) ValueSatoshis() int64                          { return s.value }
func (s *stubStakeInput) KernelModifier() (uint64, error)               { return s.modifier, nil }

func TestSearchFindsImmediatelyAgainstASaturatedTarget(t *testing.T) {
	params := &dagconfig.Params{ModifierUpgradeBlockHeight: 1000}
	m := New(kernelhasher.New(params), targetcheck.New())

	prev := &externalapi.DomainBlockHeader{Height: 5}
	input := &stubStakeInput{origin: &externalapi.DomainBlockHeader{Time: 1000}, value: 1 << 62}

	result, err := m.Search(prev, input, 0x20123456, 1000, 2000)
	if err != nil {
		t.Fatalf("Search returned error: %+v", err)
	}
	if !result.Found {
		t.Fatal("expected Search to find a passing attempt against a saturated target")
	}
	if result.AttemptTime != 1000 {
		t.Fatalf("AttemptTime = %d, want the window's start (1000) since every attempt should pass", result.AttemptTime)
	}
}

func TestSearchExhaustsTheWindowAgainstAZeroTarget(t *testing.T) {
	params := &dagconfig.Params{ModifierUpgradeBlockHeight: 1000}
	m := New(kernelhasher.New(params), targetcheck.New())

	prev := &externalapi.DomainBlockHeader{Height: 5}
	input := &stubStakeInput{origin: &externalapi.DomainBlockHeader{Time: 1000}, value: 1000}

	// bits with a zero mantissa decompresses to a zero base target, which
	// no kernel hash can ever clear.
	result, err := m.Search(prev, input, 0x03000000, 1000, 1010)
	if err != nil {
		t.Fatalf("Search returned error: %+v", err)
	}
	if result.Found {
		t.Fatal("expected Search to report Found=false once the window is exhausted")
	}
}

func TestSearchNeverMutatesTheStakeInputOrPrevHeader(t *testing.T) {
	params := &dagconfig.Params{ModifierUpgradeBlockHeight: 1000}
	m := New(kernelhasher.New(params), targetcheck.New())

	prev := &externalapi.DomainBlockHeader{Height: 5}
	prevSnapshot := *prev
	input := &stubStakeInput{origin: &externalapi.DomainBlockHeader{Time: 1000}, value: 1000, modifier: 7}
	originSnapshot := *input.origin
	wantValue, wantModifier := input.value, input.modifier

	_, err := m.Search(prev, input, 0x03000000, 1000, 1010)
	if err != nil {
		t.Fatalf("Search returned error: %+v", err)
	}
	if *prev != prevSnapshot {
		t.Fatal("Search mutated the previous header")
	}
	if *input.origin != originSnapshot || input.value != wantValue || input.modifier != wantModifier {
		t.Fatal("Search mutated the stake input")
	}
}
