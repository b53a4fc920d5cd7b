package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// ChainView is the read-only block-index collaborator of spec.md §6 (C1):
// access to headers by hash or height, and to the active chain's height.
// It is supplied by the caller; the kernel never constructs or mutates it.
type ChainView interface {
	// ByHash returns the header for the given hash, or ok=false if it is
	// not present in the index.
	ByHash(hash *externalapi.DomainHash) (header *externalapi.DomainBlockHeader, ok bool)

	// ByHeight returns the header at the given height on the active
	// chain, or ok=false if the active chain is not that long.
	ByHeight(height uint32) (header *externalapi.DomainBlockHeader, ok bool)

	// ActiveHeight returns the height of the active chain's tip.
	ActiveHeight() uint32
}
