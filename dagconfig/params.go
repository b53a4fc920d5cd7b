// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/pkg/errors"

	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// Net describes the magic bytes used to identify a network on the wire.
// Retained for parity with the teacher's Params struct even though this
// repo does not implement networking itself (see spec.md §1 Non-goals).
type Net uint32

const (
	// Mainnet represents the main network.
	Mainnet Net = 0xe4e8e9e5

	// Testnet represents the test network.
	Testnet Net = 0x0709110b

	// Regtest represents the regression test network.
	Regtest Net = 0xdab5bffa

	// Simnet represents the simulation test network.
	Simnet Net = 0x12141c16
)

// Params defines the consensus parameter set that the PoS kernel reads
// through the "parameter set" collaborator of spec.md §6. Exactly one of
// these is active at a time, selected by network.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// NetworkID is the magic value identifying the network on the wire.
	NetworkID Net

	// GenesisHash is the hash of the block at height 0.
	GenesisHash *externalapi.DomainHash

	// ModifierIntervalSeconds is the number of seconds between stake
	// modifier refreshes (spec.md §4.3).
	ModifierIntervalSeconds uint32

	// ModifierIntervalRatio shapes the width of each of the 64 selection
	// rounds within a refresh (spec.md §4.3).
	ModifierIntervalRatio uint32

	// TargetSpacingSeconds is the expected interval between blocks. It is
	// only used to size the candidate-collection window ahead of time.
	TargetSpacingSeconds uint32

	// OldModifierIntervalSeconds is the legacy lookback window used both
	// by the modifier selection round (spec.md §4.3) and by the v1 kernel
	// forward walk (spec.md §4.4). The spec keeps these unified pending a
	// governance decision; see DESIGN.md.
	OldModifierIntervalSeconds uint32

	// ModifierUpgradeBlockHeight is the height at which the v2 selection
	// and modifier-chaining rule replaces v1.
	ModifierUpgradeBlockHeight uint32

	// StakeMinAgeSeconds is the minimum coin age, in seconds, a stake
	// input must have before the depth rule takes over.
	StakeMinAgeSeconds uint32

	// StakeMinConfirmations is the minimum number of confirmations a
	// stake input must have once the depth rule is active.
	StakeMinConfirmations uint32

	// StakeMinDepthActivationHeight is the height at which
	// HasMinAgeOrDepth switches from the time-based rule to the
	// depth-based rule. See DESIGN.md for the rationale: the original
	// node's chainparams.cpp defining this switch was not present in the
	// retrieved source, so the exact height is an implementation decision
	// recorded there rather than a blind guess.
	StakeMinDepthActivationHeight uint32
}

// IsModifierV2 reports whether the block at the given height uses the v2
// (chained 256-bit) stake modifier rule instead of v1 (64-bit, forward
// walked). Spec.md §3/§4.4: the decision is by height, strictly
// "prev.height + 1", with no off-by-one.
func (p *Params) IsModifierV2(height uint32) bool {
	return height >= p.ModifierUpgradeBlockHeight
}

// HasMinAgeOrDepth enforces the stake maturity rule of spec.md §4.7 step 5.
// Before StakeMinDepthActivationHeight, maturity is measured in coin age
// (wall-clock seconds since the origin block). From that height on, it is
// measured in confirmations (block depth), which cannot be manipulated by
// clock drift.
func (p *Params) HasMinAgeOrDepth(nextHeight, blockTime, originHeight, originTime uint32) bool {
	if nextHeight >= p.StakeMinDepthActivationHeight {
		return nextHeight-originHeight >= p.StakeMinConfirmations
	}
	return blockTime-originTime >= p.StakeMinAgeSeconds
}

// MainnetParams defines the consensus parameters for the main network.
var MainnetParams = Params{
	Name:                          "mainnet",
	NetworkID:                     Mainnet,
	GenesisHash:                   mustHashFromStr("ca5de2a11e44ba1cfa2540407ec2ce9a1c04180a2c28e0dfd8243a9edf6be6bb"),
	ModifierIntervalSeconds:       60,
	ModifierIntervalRatio:         3,
	TargetSpacingSeconds:          60,
	OldModifierIntervalSeconds:    2087,
	ModifierUpgradeBlockHeight:    441494,
	StakeMinAgeSeconds:            60 * 60,
	StakeMinConfirmations:         600,
	StakeMinDepthActivationHeight: 441494,
}

// TestnetParams defines the consensus parameters for the test network.
var TestnetParams = Params{
	Name:                          "testnet",
	NetworkID:                     Testnet,
	GenesisHash:                   mustHashFromStr("f9e78bbcd7f9b32f9e397a21d9aa7c0791bdd687575e77e204cdb53743a1f91"),
	ModifierIntervalSeconds:       60,
	ModifierIntervalRatio:         3,
	TargetSpacingSeconds:          60,
	OldModifierIntervalSeconds:    2087,
	ModifierUpgradeBlockHeight:    10000,
	StakeMinAgeSeconds:            2 * 60,
	StakeMinConfirmations:         10,
	StakeMinDepthActivationHeight: 10000,
}

// RegtestParams defines the consensus parameters for the regression test
// network. Maturity and modifier-upgrade heights are set to zero so
// deterministic test fixtures can exercise the v2 path immediately.
var RegtestParams = Params{
	Name:                          "regtest",
	NetworkID:                     Regtest,
	GenesisHash:                   mustHashFromStr("15b5a0994cb00ab6e55b72c9ac2d57bd6c30a30b2123d7e0ec00b1c82b8f3eb"),
	ModifierIntervalSeconds:       60,
	ModifierIntervalRatio:         3,
	TargetSpacingSeconds:          60,
	OldModifierIntervalSeconds:    2087,
	ModifierUpgradeBlockHeight:    0,
	StakeMinAgeSeconds:            0,
	StakeMinConfirmations:         0,
	StakeMinDepthActivationHeight: 0,
}

// SimnetParams defines the consensus parameters for the simulation test
// network.
var SimnetParams = Params{
	Name:                          "simnet",
	NetworkID:                     Simnet,
	GenesisHash:                   mustHashFromStr("759919553e59a7a90da46b925791e45b871333f5811683f4a5d5358026c658a"),
	ModifierIntervalSeconds:       60,
	ModifierIntervalRatio:         3,
	TargetSpacingSeconds:          60,
	OldModifierIntervalSeconds:    2087,
	ModifierUpgradeBlockHeight:    1000,
	StakeMinAgeSeconds:            60,
	StakeMinConfirmations:         10,
	StakeMinDepthActivationHeight: 1000,
}

var registeredNets = map[Net]*Params{
	Mainnet: &MainnetParams,
	Testnet: &TestnetParams,
	Regtest: &RegtestParams,
	Simnet:  &SimnetParams,
}

// ErrDuplicateNet is returned by Register when a network is already
// registered under the given magic.
var ErrDuplicateNet = errors.New("duplicate network")

// Register registers the network parameters so that ParamsByNetworkID can
// later resolve them. It exists for parity with the teacher's registry and
// to let tests or alternate deployments add a network without modifying
// this package.
func Register(params *Params) error {
	if _, ok := registeredNets[params.NetworkID]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.NetworkID] = params
	return nil
}

// ParamsByNetworkID looks up a registered parameter set by its magic.
func ParamsByNetworkID(net Net) (*Params, error) {
	params, ok := registeredNets[net]
	if !ok {
		return nil, errors.Errorf("no params registered for network %08x", uint32(net))
	}
	return params, nil
}

func mustHashFromStr(hashStr string) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hashStr)
	if err != nil {
		panic(err)
	}
	return hash
}
