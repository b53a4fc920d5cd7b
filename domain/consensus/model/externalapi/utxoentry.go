package externalapi

// UTXOEntry describes a single spendable output: enough for the kernel to
// read a stake input's value and origin without depending on a specific
// storage engine. Spec.md §4.6 StakeInput.
type UTXOEntry interface {
	// Amount returns the output's value in satoshis.
	Amount() uint64

	// ScriptPublicKey returns the output's spending script.
	ScriptPublicKey() []byte

	// BlockHeight returns the height of the block that created this
	// output.
	BlockHeight() uint32

	// IsCoinbase reports whether the transaction that created this
	// output was a coinbase transaction.
	IsCoinbase() bool
}

// OutpointAndUTXOEntryPair is an outpoint along with its UTXO entry.
type OutpointAndUTXOEntryPair struct {
	Outpoint  *DomainOutpoint
	UTXOEntry UTXOEntry
}
