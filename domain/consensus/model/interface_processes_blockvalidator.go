package model

import "github.com/ppcoin/ppcd/domain/consensus/model/externalapi"

// BlockValidator is the C8 top-level component of spec.md §4.7: it
// validates a candidate block's coinstake kernel against its parent.
type BlockValidator interface {
	// CheckProofOfStake implements check_proof_of_stake of spec.md §6.
	// On success it returns the kernel hash the block's coinstake
	// satisfied.
	CheckProofOfStake(block *externalapi.DomainBlock, prev *externalapi.DomainBlockHeader) (*externalapi.DomainHash, error)
}

// ScriptVerifier is the narrow, external script-interpretation collaborator
// of spec.md §4.7 step 3. Script interpretation itself is out of scope
// (spec.md §1); the kernel only calls through this contract.
type ScriptVerifier interface {
	// VerifySignatureScript reports whether the signature script on
	// tx.Inputs[inputIndex] satisfies prevScriptPubKey.
	VerifySignatureScript(tx *externalapi.DomainTransaction, inputIndex int, prevScriptPubKey []byte) error
}

// UTXOSet is the minimal read-only UTXO lookup the kernel's stake-input
// construction needs (spec.md §4.7 step 2). Persistence and indexing are
// out of scope; this is a narrow contract like ChainView.
type UTXOSet interface {
	Get(outpoint *externalapi.DomainOutpoint) (entry externalapi.UTXOEntry, ok bool)
}
