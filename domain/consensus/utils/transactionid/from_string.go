// Package transactionid parses and compares DomainTransactionIDs, for the
// outpoint flags cmd/kernelcheck accepts on the command line.
package transactionid

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// NewDomainTransactionIDFromString creates a new DomainTransactionID from
// its hex string representation.
func NewDomainTransactionIDFromString(str string) (*externalapi.DomainTransactionID, error) {
	hash, err := externalapi.NewDomainHashFromString(str)
	if err != nil {
		return nil, err
	}
	return (*externalapi.DomainTransactionID)(hash), nil
}
