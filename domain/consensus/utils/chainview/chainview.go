// Package chainview provides a slice-backed implementation of
// model.ChainView (spec.md §6, component C1) for tests and the
// cmd/kernelcheck diagnostic harness. Production deployments supply their
// own ChainView backed by a real block index; the kernel never constructs
// one itself.
package chainview

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// View is a linear, in-memory active chain indexed by height, with a
// by-hash lookup built alongside it. It implements model.ChainView.
type View struct {
	byHeight []*externalapi.DomainBlockHeader
	byHash   map[externalapi.DomainHash]*externalapi.DomainBlockHeader
}

// New returns an empty View.
func New() *View {
	return &View{
		byHash: make(map[externalapi.DomainHash]*externalapi.DomainBlockHeader),
	}
}

// Connect appends header as the new tip of the active chain. The caller is
// responsible for ensuring header.Height == len(existing chain) and that
// header.PrevHash matches the current tip's hash (or is the genesis
// sentinel at height 0); View does not itself validate chain structure.
func (v *View) Connect(header *externalapi.DomainBlockHeader) {
	v.byHeight = append(v.byHeight, header)
	v.byHash[*header.BlockHash()] = header
}

// ByHash implements model.ChainView.
func (v *View) ByHash(hash *externalapi.DomainHash) (*externalapi.DomainBlockHeader, bool) {
	header, ok := v.byHash[*hash]
	return header, ok
}

// ByHeight implements model.ChainView.
func (v *View) ByHeight(height uint32) (*externalapi.DomainBlockHeader, bool) {
	if int(height) >= len(v.byHeight) {
		return nil, false
	}
	return v.byHeight[height], true
}

// ActiveHeight implements model.ChainView.
func (v *View) ActiveHeight() uint32 {
	if len(v.byHeight) == 0 {
		return 0
	}
	return uint32(len(v.byHeight) - 1)
}
