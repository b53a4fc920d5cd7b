package consensus

import (
	"github.com/ppcoin/ppcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("KRNL")
