package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// StakeInput is the narrow capability set of spec.md §4.6 (C7): everything
// the kernel needs from a spendable UTXO used as a stake origin. It is
// deliberately not an interface hierarchy — alternative stake flavors need
// only implement these four methods, not share a base type.
//
// A StakeInput must not outlive the chain snapshot it was derived from.
type StakeInput interface {
	// OriginBlockRef returns the header of the block that created the
	// stake input's underlying output.
	OriginBlockRef() *externalapi.DomainBlockHeader

	// UniquenessBytes returns the serialized outpoint
	// (prev_tx_hash ‖ prev_vout_index_u32le) of spec.md §3.
	UniquenessBytes() []byte

	// ValueSatoshis returns the stake input's value.
	ValueSatoshis() int64

	// KernelModifier returns the v1 forward-walked modifier of
	// spec.md §4.4. Only called when the kernel is operating under the
	// v1 rule; implementations may return ModifierUnavailable otherwise.
	KernelModifier() (uint64, error)
}
