package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// TargetCheck is the C6 component of spec.md §4.5: it weights the compact
// target by the staked value and compares it against a kernel hash.
type TargetCheck interface {
	// Passes reports whether kernelHash clears the target in bits,
	// weighted by valueSatoshis, per spec.md §4.5.
	Passes(bits uint32, valueSatoshis int64, kernelHash *externalapi.DomainHash) (bool, error)
}
