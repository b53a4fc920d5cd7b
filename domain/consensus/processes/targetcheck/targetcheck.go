// Package targetcheck implements component C6 of spec.md §4.5: weighting a
// compact target by a stake input's value and comparing it against a
// kernel hash.
package targetcheck

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/targetweight"
)

// Checker implements model.TargetCheck. It carries no state: the
// arithmetic is pure, so a single zero-value Checker can be shared.
type Checker struct{}

// New returns a Checker.
func New() *Checker {
	return &Checker{}
}

// Passes implements model.TargetCheck: kernel_hash < base_target *
// (value_satoshis / 100), the multiply saturating instead of overflowing.
func (c *Checker) Passes(bits uint32, valueSatoshis int64, kernelHash *externalapi.DomainHash) (bool, error) {
	weighted := targetweight.WeightedTarget(bits, valueSatoshis)
	return targetweight.Passes(kernelHash.ToUint256(), weighted), nil
}
