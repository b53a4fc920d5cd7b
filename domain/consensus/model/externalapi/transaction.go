package externalapi

import (
	"encoding/binary"
	"fmt"
)

// DomainTransaction is the kernel-relevant view of a transaction: enough to
// locate a stake origin, test coinstake/coinbase shape, and serialize an
// outpoint's uniqueness bytes (spec.md §3).
type DomainTransaction struct {
	Version  int32
	Inputs   []*DomainTransactionInput
	Outputs  []*DomainTransactionOutput
	LockTime uint64
	Time     uint32
}

// Clone returns a clone of DomainTransaction.
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputsClone := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputClone := *input
		inputsClone[i] = &inputClone
	}
	outputsClone := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputClone := *output
		outputsClone[i] = &outputClone
	}
	return &DomainTransaction{
		Version:  tx.Version,
		Inputs:   inputsClone,
		Outputs:  outputsClone,
		LockTime: tx.LockTime,
		Time:     tx.Time,
	}
}

// IsCoinBase reports whether tx is a coinbase transaction: a single input
// whose previous outpoint is null.
func (tx *DomainTransaction) IsCoinBase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].PreviousOutpoint.IsNull()
}

// IsCoinStake reports whether tx has coinstake shape (spec.md §4.7 step 1):
// at least one input, at least two outputs, and a first output that is the
// empty marker output (zero value, empty script) rather than a payment.
// Grounded on the Peercoin-family convention (IsCoinStake/IsEmpty in
// _examples/peercoin-btcd/blockchain/ppc.go).
func (tx *DomainTransaction) IsCoinStake() bool {
	if len(tx.Inputs) == 0 || len(tx.Outputs) < 2 {
		return false
	}
	if tx.IsCoinBase() {
		return false
	}
	return tx.Outputs[0].IsEmpty()
}

// DomainTransactionInput is a transaction input.
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  []byte
	Sequence         uint64
}

// DomainOutpoint identifies a previous transaction output.
type DomainOutpoint struct {
	TransactionID DomainTransactionID
	Index         uint32
}

// IsNull reports whether the outpoint is the null outpoint used by
// coinbase inputs.
func (op DomainOutpoint) IsNull() bool {
	return op.TransactionID == DomainTransactionID{} && op.Index == ^uint32(0)
}

// UniquenessBytes returns the serialized outpoint
// (prev_tx_hash ‖ prev_vout_index_u32le) used to bind a kernel hash to a
// specific stake input (spec.md §3, "uniqueness_bytes").
func (op DomainOutpoint) UniquenessBytes() []byte {
	buf := make([]byte, DomainHashSize+4)
	hash := op.TransactionID.AsHash()
	copy(buf, hash.BytesSlice())
	binary.LittleEndian.PutUint32(buf[DomainHashSize:], op.Index)
	return buf
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", op.TransactionID, op.Index)
}

// DomainTransactionOutput is a transaction output.
type DomainTransactionOutput struct {
	Value           uint64
	ScriptPublicKey []byte
}

// IsEmpty reports whether the output is the coinstake marker output: zero
// value and an empty script.
func (out *DomainTransactionOutput) IsEmpty() bool {
	return out.Value == 0 && len(out.ScriptPublicKey) == 0
}

// DomainTransactionID is the ID (hash) of a transaction.
type DomainTransactionID DomainHash

// AsHash reinterprets the transaction ID as a DomainHash.
func (id DomainTransactionID) AsHash() DomainHash {
	return DomainHash(id)
}

// String stringifies a transaction ID.
func (id DomainTransactionID) String() string {
	return id.AsHash().String()
}
