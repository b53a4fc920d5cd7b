// Package stakemodifier implements component C4 of spec.md §4.3: given an
// ancestor window, it deterministically selects 64 blocks and folds their
// entropy bits into a fresh stake modifier. This is the hardest single
// piece of the kernel — see spec.md §9 for the source bugs this package
// deliberately does not reproduce.
package stakemodifier

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/ruleerrors"
	"github.com/ppcoin/ppcd/domain/consensus/utils/doublesha256"
	"github.com/ppcoin/ppcd/domain/consensus/utils/entropybit"
	"github.com/ppcoin/ppcd/domain/consensus/utils/hashset"
	"github.com/ppcoin/ppcd/domain/consensus/utils/sorters"
)

// h1SentinelModifier is H1_SENTINEL_MODIFIER of spec.md §6: the first 8
// bytes of the ASCII string "stakemodifier", read as a little-endian
// uint64. It is the fixed modifier the block at height 1 carries.
var h1SentinelModifier = binary.LittleEndian.Uint64([]byte("stakemodifier")[:8])

// RoundSelection records which block a single round of a selection round
// picked and the entropy bit it contributed. Selector keeps the trace of
// its most recently run selection round so a caller (the domain/consensus
// facade) can log it without this package importing a logger itself —
// spec.md's "-printstakemodifier"-style introspection is the facade's
// concern, not this pure function's.
type RoundSelection struct {
	Round      int
	Height     uint32
	BlockHash  *externalapi.DomainHash
	EntropyBit uint8
}

// Selector implements model.ModifierSelector.
type Selector struct {
	params    *dagconfig.Params
	chainView model.ChainView

	lastTrace []RoundSelection
}

// New returns a Selector reading ancestor headers through chainView and
// tunables (MODIFIER_INTERVAL, MODIFIER_INTERVAL_RATIO, etc.) from params.
func New(params *dagconfig.Params, chainView model.ChainView) *Selector {
	return &Selector{params: params, chainView: chainView}
}

// LastSelectionTrace returns the per-round selections of the most recent
// selection round ComputeNextModifier actually ran, oldest round first. It
// is nil if ComputeNextModifier has never run a selection round (rules
// 1/2/4 of spec.md §4.3 never populate it).
func (s *Selector) LastSelectionTrace() []RoundSelection {
	return s.lastTrace
}

// ComputeNextModifier implements model.ModifierSelector, per spec.md §4.3
// rules 1-6.
func (s *Selector) ComputeNextModifier(prev *externalapi.DomainBlockHeader) (uint64, bool, error) {
	if prev == nil {
		// Rule 1: genesis.
		return 0, true, nil
	}
	if prev.Height == 0 {
		// Rule 2: first post-genesis block carries the sentinel.
		return h1SentinelModifier, true, nil
	}

	prevMod, prevModTime, err := s.lastGeneratedModifier(prev)
	if err != nil {
		return 0, false, err
	}

	interval := int64(s.params.ModifierIntervalSeconds)
	if prevModTime/interval == int64(prev.Time)/interval {
		// Rule 4: still inside the same refresh interval.
		return uint64(prevMod), false, nil
	}

	return s.selectionRound(prev, uint64(prevMod))
}

// lastGeneratedModifier walks backward from start (inclusive) until it
// finds the last ancestor that generated (as opposed to inherited) its
// modifier, per spec.md §4.3 rule 3. It fails with ErrModifierUnavailable
// if it reaches a header whose parent is not in the chain view without
// having found one.
func (s *Selector) lastGeneratedModifier(start *externalapi.DomainBlockHeader) (modifier uint64, modifierTime int64, err error) {
	cur := start
	for {
		if cur.GeneratedStakeModifier() {
			return cur.StakeModifier, int64(cur.Time), nil
		}
		parent, ok := s.chainView.ByHash(&cur.PrevHash)
		if !ok {
			return 0, 0, errors.WithStack(ruleerrors.ErrModifierUnavailable)
		}
		cur = parent
	}
}

// selectionRound performs the selection round of spec.md §4.3 rule 5,
// returning a freshly generated modifier.
func (s *Selector) selectionRound(prev *externalapi.DomainBlockHeader, prevMod uint64) (uint64, bool, error) {
	interval := int64(s.params.ModifierIntervalSeconds)
	selectionStart := (int64(prev.Time)/interval)*interval - int64(s.params.OldModifierIntervalSeconds)

	hint := 0
	if s.params.TargetSpacingSeconds > 0 {
		hint = 64 * int(s.params.ModifierIntervalSeconds) / int(s.params.TargetSpacingSeconds)
	}
	pairs := make([]sorters.TimestampedHash, 0, hint)

	cur := prev
	for int64(cur.Time) >= selectionStart {
		pairs = append(pairs, sorters.TimestampedHash{Time: cur.Time, Hash: cur.BlockHash()})
		parent, ok := s.chainView.ByHash(&cur.PrevHash)
		if !ok {
			break
		}
		cur = parent
	}
	sorters.ByTimeThenHash(pairs).Sort()

	if len(pairs) == 0 {
		return 0, false, errors.WithStack(ruleerrors.ErrNoSelectionCandidate)
	}

	// The v1/v2 decision is fixed once per whole selection, from the
	// oldest (first, after sorting) candidate — never re-decided
	// per-round.
	oldest, ok := s.chainView.ByHash(pairs[0].Hash)
	if !ok {
		return 0, false, errors.WithStack(ruleerrors.ErrNoSelectionCandidate)
	}
	modifierV2 := oldest.Height >= s.params.ModifierUpgradeBlockHeight

	numRounds := len(pairs)
	if numRounds > 64 {
		numRounds = 64
	}

	excluded := hashset.New()
	trace := make([]RoundSelection, 0, numRounds)
	var newModifier uint64
	stop := selectionStart
	for round := 0; round < numRounds; round++ {
		stop += s.intervalSection(round)

		selected, err := s.selectOne(pairs, excluded, stop, prevMod, modifierV2)
		if err != nil {
			return 0, false, err
		}

		bit := entropybit.Compute(selected.BlockHash())
		newModifier |= uint64(bit) << uint(round)
		excluded.Add(selected.BlockHash())
		trace = append(trace, RoundSelection{Round: round, Height: selected.Height, BlockHash: selected.BlockHash(), EntropyBit: bit})
	}

	s.lastTrace = trace
	return newModifier, true, nil
}

// intervalSection computes interval_section(round) of spec.md §4.3.
func (s *Selector) intervalSection(round int) int64 {
	interval := int64(s.params.ModifierIntervalSeconds)
	ratio := int64(s.params.ModifierIntervalRatio)
	return interval * 63 / (63 + int64(63-round)*(ratio-1))
}

// selectOne implements SelectOne of spec.md §4.3: iterate the sorted
// candidates oldest-first, skip already-excluded blocks, and track the
// candidate with the numerically smallest selection_hash (right-shifted by
// 32 bits for PoS candidates), stopping early once a candidate has been
// found and the window closes.
func (s *Selector) selectOne(pairs []sorters.TimestampedHash, excluded hashset.HashSet,
	stop int64, prevMod uint64, modifierV2 bool) (*externalapi.DomainBlockHeader, error) {

	var best *externalapi.DomainBlockHeader
	var bestHash *uint256.Int
	selected := false

	for _, pair := range pairs {
		header, ok := s.chainView.ByHash(pair.Hash)
		if !ok {
			return nil, errors.WithStack(ruleerrors.ErrNoSelectionCandidate)
		}
		if selected && int64(header.Time) > stop {
			break
		}
		if excluded.Contains(pair.Hash) {
			continue
		}

		var proofHash *externalapi.DomainHash
		switch {
		case modifierV2:
			proofHash = pair.Hash
		case header.IsProofOfStake:
			proofHash = &externalapi.DomainHash{}
		default:
			proofHash = pair.Hash
		}

		writer := doublesha256.NewHashWriter()
		writer.InfallibleWrite(proofHash.BytesSlice())
		writer.InfallibleWriteUint64LE(prevMod)
		selectionHash := writer.Finalize().ToUint256()
		if header.IsProofOfStake {
			selectionHash.Rsh(selectionHash, 32)
		}

		if !selected {
			selected = true
			best = header
			bestHash = selectionHash
			continue
		}
		if selectionHash.Lt(bestHash) {
			best = header
			bestHash = selectionHash
		}
	}

	if !selected {
		return nil, errors.WithStack(ruleerrors.ErrNoSelectionCandidate)
	}
	return best, nil
}

// ComputeStakeModifierV2 implements model.ModifierSelector: the v2 chained
// 256-bit modifier, SHA256d(kernelHash ‖ prevModifier). Spec.md §6/§9: it
// deliberately does not mix in the origin block time the way the v1
// kernel hash does.
func (s *Selector) ComputeStakeModifierV2(prev *externalapi.DomainBlockHeader, kernelHash *externalapi.DomainHash) (*externalapi.DomainHash, error) {
	if prev == nil {
		return &externalapi.DomainHash{}, nil
	}

	writer := doublesha256.NewHashWriter()
	writer.InfallibleWrite(kernelHash.BytesSlice())
	if s.params.IsModifierV2(prev.Height + 1) {
		modifierV2 := prev.StakeModifierV2
		writer.InfallibleWrite(modifierV2.BytesSlice())
	} else {
		writer.InfallibleWriteUint64LE(prev.StakeModifier)
	}
	return writer.Finalize(), nil
}
