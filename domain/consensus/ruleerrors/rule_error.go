// Package ruleerrors is the PoS kernel's error taxonomy (spec.md §7). Every
// kernel failure is one of these sentinels, wrapped with a stack trace by
// github.com/pkg/errors at the call site the way the teacher wraps
// ErrMissingTxOut and friends — never a bare fmt.Errorf, and never a panic.
package ruleerrors

// These are the plain-value error kinds of spec.md §7. Callers use
// errors.Is (or a direct equality check against the Cause) to distinguish
// them; the kernel never retries internally on any of them.
var (
	// ErrStakeOriginUnknown indicates the stake input's origin
	// transaction or block could not be located via the chain snapshot.
	ErrStakeOriginUnknown = newRuleError("ErrStakeOriginUnknown")

	// ErrImmatureStake indicates the stake input has not met the
	// minimum age or depth maturity rule (spec.md §4.7 step 5).
	ErrImmatureStake = newRuleError("ErrImmatureStake")

	// ErrBadScriptSig indicates the external script interpreter
	// rejected the coinstake's signature script (spec.md §4.7 step 3).
	ErrBadScriptSig = newRuleError("ErrBadScriptSig")

	// ErrNotCoinstake indicates block.vtx[1] does not have coinstake
	// shape (spec.md §4.7 step 1).
	ErrNotCoinstake = newRuleError("ErrNotCoinstake")

	// ErrTimestampMismatch indicates the block time does not equal the
	// coinstake transaction's time (spec.md §4.7 step 7).
	ErrTimestampMismatch = newRuleError("ErrTimestampMismatch")

	// ErrKernelTargetMissed indicates the kernel hash did not clear the
	// weighted target (spec.md §4.5).
	ErrKernelTargetMissed = newRuleError("ErrKernelTargetMissed")

	// ErrModifierUnavailable indicates a walk along the chain for a stake
	// modifier ran off the chain before finding a usable one: the v1
	// forward walk of spec.md §4.4, or the backward search for the last
	// generated modifier in spec.md §4.3.
	ErrModifierUnavailable = newRuleError("ErrModifierUnavailable")

	// ErrNoSelectionCandidate indicates a modifier-selection round
	// (spec.md §4.3) found no eligible candidate block. The refresh is
	// refused; the caller may retry at the next interval.
	ErrNoSelectionCandidate = newRuleError("ErrNoSelectionCandidate")

	// ErrCheckpointMismatch indicates a block's modifier checksum does
	// not match the hard-coded mainnet checkpoint for its height
	// (spec.md §4.8).
	ErrCheckpointMismatch = newRuleError("ErrCheckpointMismatch")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or a kernel operation failed due to one of the
// taxonomy's named rules. Callers can compare against the sentinels above
// via Cause to determine which rule fired.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface.
//
// RuleError deliberately has no Cause method: github.com/pkg/errors.Cause
// stops at the first error that is not a causer, so Cause of a wrapped
// sentinel is the sentinel itself.
func (e RuleError) Unwrap() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}
