package main

import (
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/ppcoin/ppcd/dagconfig"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

const (
	defaultNetwork = "mainnet"
)

// configFlags defines the configuration options for kernelcheck: enough
// to describe one stake input and one candidate block header, without a
// real chain index behind it.
type configFlags struct {
	Network string `short:"n" long:"network" description:"Network to read consensus parameters from (mainnet, testnet, regtest, simnet)"`

	OriginHeight uint32 `long:"origin-height" description:"Height of the block that created the stake output"`
	OriginTime   uint32 `long:"origin-time" description:"Timestamp of the block that created the stake output"`

	PrevHeight uint32 `long:"prev-height" description:"Height of the block the candidate extends"`
	PrevTime   uint32 `long:"prev-time" description:"Timestamp of the block the candidate extends"`
	Bits       string `long:"bits" description:"Compact target (hex, e.g. 1d00ffff) the candidate must clear"`

	OutpointTxID  string `long:"outpoint-txid" description:"Transaction ID (hex) of the previous output being staked"`
	OutpointIndex uint32 `long:"outpoint-index" description:"Index of the previous output being staked"`
	Value         int64  `long:"value" description:"Value of the staked output, in satoshis"`

	SearchStart uint32 `long:"search-start" description:"First attempt time to test"`
	SearchEnd   uint32 `long:"search-end" description:"Last attempt time to test"`

	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

func loadConfig() (*configFlags, error) {
	cfg := &configFlags{
		Network:      defaultNetwork,
		Bits:         "1d00ffff",
		OutpointTxID: strings.Repeat("00", externalapi.DomainHashSize),
		SearchStart:  0,
		SearchEnd:    0,
	}

	parser := flags.NewParser(cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); !ok || flagsErr.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	return cfg, nil
}

func (cfg *configFlags) params() (*dagconfig.Params, error) {
	switch cfg.Network {
	case "mainnet":
		return &dagconfig.MainnetParams, nil
	case "testnet":
		return &dagconfig.TestnetParams, nil
	case "regtest":
		return &dagconfig.RegtestParams, nil
	case "simnet":
		return &dagconfig.SimnetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", cfg.Network)
	}
}
