// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"time"

	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/math/uint256"
	"github.com/duochain/duocore/wire"
)

// NetworkId identifies one of the networks the registry knows how to build
// parameters for. Only PoWNet and HybridNet carry real consensus data;
// TestNet and RegNet are recognized so callers can select them without a
// runtime error, but they intentionally have no genesis block or checkpoint
// data of their own (see TestNetParams's doc comment for why).
type NetworkId uint32

const (
	// PoWNet is the pure proof-of-work network.
	PoWNet NetworkId = iota

	// HybridNet is the proof-of-work/proof-of-stake/proof-of-stake-time
	// network.
	HybridNet

	// TestNet identifies the test network. No genesis or checkpoint data
	// is modeled; selecting it returns a minimal placeholder.
	TestNet

	// RegNet identifies the regression test network. Same caveat as
	// TestNet.
	RegNet
)

// String returns the NetworkId in human-readable form.
func (n NetworkId) String() string {
	switch n {
	case PoWNet:
		return "pow-net"
	case HybridNet:
		return "hybrid-net"
	case TestNet:
		return "testnet"
	case RegNet:
		return "regtest"
	default:
		return "unknown"
	}
}

// AddressPrefixes holds the single-byte (or, for extended keys, four-byte)
// version prefixes used to derive base58 address strings for a network.
type AddressPrefixes struct {
	PubKeyAddr  byte
	ScriptAddr  byte
	PrivateKey  byte
	ExtPubKey   [4]byte
	ExtSecretKey [4]byte
}

// Checkpoint identifies a known-good point in the block chain that a node
// may use to disallow reorganizations below it.
type Checkpoint struct {
	Height int64
	Hash   chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// ChainTxData contains the last-known number of transactions in the active
// chain along with a timestamp and an estimated rate, used only to show
// sync progress to a user interface. It carries no consensus weight.
type ChainTxData struct {
	Time    time.Time
	TxCount int64
	TxRate  float64
}

// ConsensusParams is the consensus-critical subset of a network's
// parameters: the fields every validating node must agree on bit-for-bit.
type ConsensusParams struct {
	HashGenesisBlock chainhash.Hash

	BIP34Height int64
	BIP65Height int64
	BIP66Height int64
	CSVHeight   int64

	// NextTargetV2Height is the height at which the difficulty
	// retargeter switches from the V1 (upper-bound-only) clamp to the
	// V2 (both-bounds) clamp. Zero on PoW-net, so every PoW-net retarget
	// uses the V2 rule.
	NextTargetV2Height int64
	PoSTHeight         int64
	PoSHeight          int64
	VIP1Height         int64

	TargetTimespan     time.Duration
	PowTargetTimespan  time.Duration
	PowTargetSpacing   time.Duration
	// StakeTargetSpacing is zero on PoW-net. The difficulty retargeter
	// uses this to distinguish a pure-PoW chain (where every block is
	// the same proof type and the retarget walk degenerates to
	// comparing consecutive blocks) from a hybrid chain.
	StakeTargetSpacing time.Duration
	StakeMinAge        time.Duration
	ModifierInterval   time.Duration

	PowLimit *uint256.Uint256
	PosLimit *uint256.Uint256

	PowNoRetargeting bool

	CoinbaseMaturity  int64
	InitialCoinSupply int64

	MinChainWork       *uint256.Uint256
	DefaultAssumeValid chainhash.Hash
}

// ChainParams defines an immutable per-network record of all consensus
// constants and auxiliary data needed to validate and relay on that
// network. A ChainParams is constructed once by Select and never mutated
// afterward.
type ChainParams struct {
	Name         string
	Net          NetworkId
	MessageStart [4]byte
	DefaultPort  string
	Prefixes     AddressPrefixes
	Bech32HRP    string

	Consensus ConsensusParams

	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	Checkpoints []Checkpoint
	ChainTxData ChainTxData

	DNSSeeds     []DNSSeed
	FixedSeeds   []string
	AssumedSize  uint64

	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	IsTestNet                bool
	IsMockable               bool
}

var (
	registryMu sync.Mutex
	active     *ChainParams
	selected   bool
)

// Select initializes the registry with the parameters for id. It may be
// called at most once per process lifetime; subsequent calls return
// ErrAlreadyInitialized. The constructed genesis block's hash is checked
// against its pinned value; a mismatch is a fatal initialization failure
// and panics rather than returning an error, since a node cannot safely
// continue running against parameters whose genesis cannot be trusted.
func Select(id NetworkId) (*ChainParams, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if selected {
		return nil, makeError(ErrAlreadyInitialized,
			"Select: chain parameters were already selected for this process")
	}

	var params *ChainParams
	switch id {
	case PoWNet:
		params = PoWNetParams()
	case HybridNet:
		params = HybridNetParams()
	case TestNet:
		params = TestNetParams()
	case RegNet:
		params = RegNetParams()
	default:
		return nil, makeError(ErrUnknownNetwork, "Select: unrecognized network id")
	}

	if got := params.GenesisBlock.BlockHash(); got != params.GenesisHash {
		log.Criticalf("genesis hash mismatch for %s: computed %s, pinned %s",
			params.Name, got, params.GenesisHash)
		panic("chaincfg: genesis hash mismatch, refusing to start")
	}

	active = params
	selected = true
	return active, nil
}

// Current returns the previously selected chain parameters. It returns
// ErrNotInitialized if Select has not yet been called.
func Current() (*ChainParams, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if !selected {
		return nil, makeError(ErrNotInitialized, "Current: chain parameters have not been selected")
	}
	return active, nil
}

// resetForTesting clears the registry so a test can exercise Select's
// lifecycle rules from a clean slate. It is unexported: production callers
// have no legitimate reason to un-select a network mid-process.
func resetForTesting() {
	registryMu.Lock()
	defer registryMu.Unlock()
	active = nil
	selected = false
}
