package chainview

import (
	"testing"

	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

func header(height uint32, prevHash externalapi.DomainHash, t uint32) *externalapi.DomainBlockHeader {
	return &externalapi.DomainBlockHeader{Height: height, PrevHash: prevHash, Time: t}
}

func TestConnectAndLookups(t *testing.T) {
	v := New()

	genesis := header(0, externalapi.DomainHash{}, 1000)
	v.Connect(genesis)

	next := header(1, *genesis.BlockHash(), 1060)
	v.Connect(next)

	if v.ActiveHeight() != 1 {
		t.Fatalf("ActiveHeight() = %d, want 1", v.ActiveHeight())
	}

	got, ok := v.ByHeight(0)
	if !ok || got != genesis {
		t.Fatalf("ByHeight(0) = (%v, %v), want (genesis, true)", got, ok)
	}

	got, ok = v.ByHash(next.BlockHash())
	if !ok || got != next {
		t.Fatalf("ByHash(next) = (%v, %v), want (next, true)", got, ok)
	}

	if _, ok := v.ByHeight(5); ok {
		t.Fatal("ByHeight(5) = ok, want not found on a 2-block chain")
	}
}

func TestEmptyViewActiveHeightIsZero(t *testing.T) {
	v := New()
	if v.ActiveHeight() != 0 {
		t.Fatalf("ActiveHeight() on empty view = %d, want 0", v.ActiveHeight())
	}
}
