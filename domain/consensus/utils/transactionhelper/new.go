// Package transactionhelper builds the two transaction shapes the kernel
// cares about: a plain payment and a coinstake, per the narrower
// DomainTransaction model of spec.md §3 (no subnetworks, gas, or payload).
package transactionhelper

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// NewTransaction returns a new transaction with the given inputs and
// outputs and no lock time.
func NewTransaction(version int32, inputs []*externalapi.DomainTransactionInput,
	outputs []*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	return &externalapi.DomainTransaction{
		Version: version,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// NewCoinstakeTransaction returns a new coinstake transaction spending
// stakeInput: a single input, a leading empty marker output (spec.md §4.7
// step 1's IsCoinStake shape), followed by the given payment outputs.
func NewCoinstakeTransaction(version int32, time uint32, stakeInput *externalapi.DomainTransactionInput,
	outputs []*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	allOutputs := make([]*externalapi.DomainTransactionOutput, 0, len(outputs)+1)
	allOutputs = append(allOutputs, &externalapi.DomainTransactionOutput{})
	allOutputs = append(allOutputs, outputs...)

	return &externalapi.DomainTransaction{
		Version: version,
		Time:    time,
		Inputs:  []*externalapi.DomainTransactionInput{stakeInput},
		Outputs: allOutputs,
	}
}
