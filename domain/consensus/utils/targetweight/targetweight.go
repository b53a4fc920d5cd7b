// Package targetweight implements the unsigned 256-bit target arithmetic
// of spec.md §4.5 (component C6): decompressing a compact target,
// weighting it by a stake input's value, and saturating the multiply so
// overflow can never occur.
package targetweight

import (
	"github.com/holiman/uint256"
)

// hundred is reused across every WeightedTarget call.
var hundred = uint256.NewInt(100)

// DecompressCompact expands a 32-bit compact ("nBits") target into a full
// unsigned 256-bit integer. The encoding is the usual base-256
// floating-point form: the high byte is an exponent, the low three bytes
// are the mantissa. Consensus targets are always non-negative, so the
// traditional sign bit (0x00800000) is not honored; a target that sets it
// is, by construction, not a value any conformant chain produces.
func DecompressCompact(bits uint32) *uint256.Int {
	exponent := bits >> 24
	mantissa := bits & 0x007fffff

	result := new(uint256.Int).SetUint64(uint64(mantissa))
	switch {
	case exponent <= 3:
		result.Rsh(result, uint(8*(3-exponent)))
	default:
		result.Lsh(result, uint(8*(exponent-3)))
	}
	return result
}

// WeightedTarget computes base_target · (value_satoshis / 100) per
// spec.md §4.5: the division is integer (floor) division performed before
// the multiply is completed, and the multiply saturates at 2^256-1 instead
// of overflowing, so a saturated result simply means every kernel hash
// passes.
func WeightedTarget(bits uint32, valueSatoshis int64) *uint256.Int {
	base := DecompressCompact(bits)

	weight := new(uint256.Int)
	if valueSatoshis > 0 {
		weight.SetUint64(uint64(valueSatoshis))
	}
	weight.Div(weight, hundred)

	product, overflowed := new(uint256.Int).MulOverflow(base, weight)
	if overflowed {
		return new(uint256.Int).SetAllOne()
	}
	return product
}

// Passes reports whether kernelHash (interpreted as an unsigned 256-bit
// integer) clears weightedTarget, i.e. kernel_hash < weighted_target.
func Passes(kernelHash *uint256.Int, weightedTarget *uint256.Int) bool {
	return kernelHash.Lt(weightedTarget)
}
