// Command kernelcheck is a diagnostic harness for the proof-of-stake
// kernel: given a synthetic stake input and a candidate block header, it
// either evaluates one attempt time or searches a window of attempt times
// for one that clears the weighted target, without touching a wallet,
// a real chain index, or a network connection.
package main

import (
	"fmt"
	"os"

	"github.com/ppcoin/ppcd/domain/consensus"
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
	"github.com/ppcoin/ppcd/domain/consensus/utils/transactionid"
	"github.com/ppcoin/ppcd/domain/consensus/utils/utxolrucache"
	"github.com/ppcoin/ppcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CHCK")

// singleEntryUTXOSet is the minimal model.UTXOSet this harness needs: one
// synthetic output at a fixed outpoint.
type singleEntryUTXOSet struct {
	outpoint externalapi.DomainOutpoint
	entry    externalapi.UTXOEntry
}

func (s *singleEntryUTXOSet) Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool) {
	if *outpoint != s.outpoint {
		return nil, false
	}
	return s.entry, true
}

type syntheticEntry struct {
	amount      uint64
	blockHeight uint32
}

func (e *syntheticEntry) Amount() uint64          { return e.amount }
func (e *syntheticEntry) ScriptPublicKey() []byte { return nil }
func (e *syntheticEntry) BlockHeight() uint32     { return e.blockHeight }
func (e *syntheticEntry) IsCoinbase() bool        { return false }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.SetLogLevels(logger.LevelDebug)
	}

	params, err := cfg.params()
	if err != nil {
		return err
	}

	var bits uint32
	if _, err := fmt.Sscanf(cfg.Bits, "%x", &bits); err != nil {
		return fmt.Errorf("invalid --bits %q: %w", cfg.Bits, err)
	}

	txID, err := transactionid.NewDomainTransactionIDFromString(cfg.OutpointTxID)
	if err != nil {
		return fmt.Errorf("invalid --outpoint-txid: %w", err)
	}
	outpoint := externalapi.DomainOutpoint{TransactionID: *txID, Index: cfg.OutpointIndex}
	entry := &syntheticEntry{amount: uint64(cfg.Value), blockHeight: cfg.OriginHeight}
	utxoSet := utxolrucache.New(&singleEntryUTXOSet{outpoint: outpoint, entry: entry}, 16)

	c := consensus.NewFactory().NewConsensus(params, utxoSet, acceptAllScriptVerifier{})

	origin := &externalapi.DomainBlockHeader{
		Height: cfg.OriginHeight,
		Time:   cfg.OriginTime,
		Flags:  externalapi.FlagGeneratedStakeModifier,
	}
	c.Connect(origin)

	prev := &externalapi.DomainBlockHeader{
		Height:   cfg.PrevHeight,
		PrevHash: *origin.BlockHash(),
		Time:     cfg.PrevTime,
		Bits:     bits,
	}
	if cfg.PrevHeight != cfg.OriginHeight {
		c.Connect(prev)
	} else {
		prev = origin
	}

	stakeInput, err := c.NewStakeInput(outpoint, entry)
	if err != nil {
		return err
	}

	log.Infof("searching attempt times %d..%d against bits %08x", cfg.SearchStart, cfg.SearchEnd, bits)

	miner := c.NewMiner()
	result, err := miner.Search(prev, stakeInput, bits, cfg.SearchStart, cfg.SearchEnd)
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Printf("no passing attempt time in [%d, %d]\n", cfg.SearchStart, cfg.SearchEnd)
		return nil
	}
	fmt.Printf("found at attempt time %d, kernel hash %s\n", result.AttemptTime, result.KernelHash)
	return nil
}

// acceptAllScriptVerifier accepts every signature script. kernelcheck
// never has a real script interpreter on hand (spec.md §1 Non-goals);
// its only job is kernel arithmetic, not transaction validity.
type acceptAllScriptVerifier struct{}

func (acceptAllScriptVerifier) VerifySignatureScript(tx *externalapi.DomainTransaction, inputIndex int, prevScriptPubKey []byte) error {
	return nil
}

var _ model.ScriptVerifier = acceptAllScriptVerifier{}
