// Package stakesearch implements the search loop spec.md §9 calls out as
// a replacement for the anti-pattern found in the source this kernel is
// modeled on: that code's Stake() function ground nonces by mutating a
// live wallet and rebroadcasting to a hard-coded address list on every
// attempt. This miner does neither — it is a pure function from a
// candidate stake input and a time window to a found/not-found result.
// Committing a winning attempt to a chain is entirely the caller's
// business.
package stakesearch

import (
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// Result is the outcome of a search over an attempt-time window.
type Result struct {
	Found       bool
	AttemptTime uint32
	KernelHash  *externalapi.DomainHash
}

// Miner searches an attempt-time window for a kernel hash that clears the
// weighted target, using the same KernelHasher and TargetCheck collaborators
// the block validator checks a found block against.
type Miner struct {
	kernelHasher model.KernelHasher
	targetCheck  model.TargetCheck
}

// New returns a Miner.
func New(kernelHasher model.KernelHasher, targetCheck model.TargetCheck) *Miner {
	return &Miner{kernelHasher: kernelHasher, targetCheck: targetCheck}
}

// Search iterates attemptTime from startTime to endTime inclusive,
// computing the kernel hash stakeInput would produce against prev at each
// attempt and testing it against bits. It returns as soon as one passes,
// or Found=false once the window is exhausted. It never mutates
// stakeInput, prev, or any wallet state, and it never broadcasts
// anything — the caller decides what to do with a successful attempt.
func (m *Miner) Search(prev *externalapi.DomainBlockHeader, stakeInput model.StakeInput, bits uint32, startTime, endTime uint32) (*Result, error) {
	for attemptTime := startTime; ; attemptTime++ {
		kernelHash, err := m.kernelHasher.ComputeKernelHash(prev, stakeInput, attemptTime)
		if err != nil {
			return nil, err
		}

		passes, err := m.targetCheck.Passes(bits, stakeInput.ValueSatoshis(), kernelHash)
		if err != nil {
			return nil, err
		}
		if passes {
			return &Result{Found: true, AttemptTime: attemptTime, KernelHash: kernelHash}, nil
		}

		if attemptTime >= endTime {
			return &Result{Found: false}, nil
		}
	}
}
