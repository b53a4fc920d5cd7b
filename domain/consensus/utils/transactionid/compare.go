package transactionid

import (
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// Less returns true iff transaction ID a is less than transaction ID b.
func Less(a, b *externalapi.DomainTransactionID) bool {
	return (*externalapi.DomainHash)(a).Less((*externalapi.DomainHash)(b))
}
