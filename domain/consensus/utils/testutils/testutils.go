// Package testutils provides the kernel test suites' shared fixtures: a
// map-backed UTXOSet, permissive/strict ScriptVerifier stubs for the
// out-of-scope script interpreter (spec.md §1 Non-goals), and a
// ForAllNets helper for running a test body against every registered
// network's parameters.
package testutils

import (
	"testing"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// ForAllNets runs testFunc once per registered network parameter set, the
// way the teacher's table of networks is iterated in integration tests.
func ForAllNets(t *testing.T, testFunc func(t *testing.T, params *dagconfig.Params)) {
	allParams := []*dagconfig.Params{
		&dagconfig.MainnetParams,
		&dagconfig.TestnetParams,
		&dagconfig.RegtestParams,
		&dagconfig.SimnetParams,
	}

	for _, params := range allParams {
		params := params
		t.Run(params.Name, func(t *testing.T) {
			testFunc(t, params)
		})
	}
}

// MapUTXOSet is a model.UTXOSet backed by a plain map, for tests that need
// to hand the block validator a stake input's origin output without a
// real UTXO index.
type MapUTXOSet map[externalapi.DomainOutpoint]externalapi.UTXOEntry

// Get implements model.UTXOSet.
func (m MapUTXOSet) Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool) {
	entry, ok := m[*outpoint]
	return entry, ok
}

// Entry is a minimal externalapi.UTXOEntry for test fixtures.
type Entry struct {
	AmountValue      uint64
	ScriptPublicKeyValue []byte
	BlockHeightValue uint32
	IsCoinbaseValue  bool
}

// Amount implements externalapi.UTXOEntry.
func (e *Entry) Amount() uint64 { return e.AmountValue }

// ScriptPublicKey implements externalapi.UTXOEntry.
func (e *Entry) ScriptPublicKey() []byte { return e.ScriptPublicKeyValue }

// BlockHeight implements externalapi.UTXOEntry.
func (e *Entry) BlockHeight() uint32 { return e.BlockHeightValue }

// IsCoinbase implements externalapi.UTXOEntry.
func (e *Entry) IsCoinbase() bool { return e.IsCoinbaseValue }

// AcceptAllScriptVerifier is a model.ScriptVerifier stub that accepts every
// signature script. Script interpretation is out of scope for this module
// (spec.md §1); tests that aren't exercising ErrBadScriptSig use this.
type AcceptAllScriptVerifier struct{}

// VerifySignatureScript implements model.ScriptVerifier.
func (AcceptAllScriptVerifier) VerifySignatureScript(tx *externalapi.DomainTransaction, inputIndex int, prevScriptPubKey []byte) error {
	return nil
}

// RejectAllScriptVerifier is a model.ScriptVerifier stub that rejects every
// signature script, for exercising ErrBadScriptSig.
type RejectAllScriptVerifier struct {
	Err error
}

// VerifySignatureScript implements model.ScriptVerifier.
func (r RejectAllScriptVerifier) VerifySignatureScript(tx *externalapi.DomainTransaction, inputIndex int, prevScriptPubKey []byte) error {
	return r.Err
}
