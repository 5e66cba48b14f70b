// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/wire"
)

// placeholderGenesis returns an all-zero block and its own computed hash,
// so Select's genesis-hash assertion trivially holds for networks that
// carry no real genesis data of their own.
func placeholderGenesis() (*wire.MsgBlock, chainhash.Hash) {
	block := &wire.MsgBlock{}
	hash := block.BlockHash()
	return block, hash
}

// TestNetParams returns minimal placeholder parameters for the test
// network. The original source defines an empty CTestNetParams class with
// no genesis block or consensus data of its own; supporting a real test
// network is explicitly out of this core's scope (see the Non-goal on
// arbitrary new networks), so this mirrors that emptiness rather than
// inventing test-network consensus constants. Select still accepts
// TestNet so callers can route on NetworkId without a special case, but
// the resulting ChainParams has no usable genesis, checkpoints, or
// retargeting limits.
func TestNetParams() *ChainParams {
	block, hash := placeholderGenesis()
	return &ChainParams{
		Name:        "testnet",
		Net:         TestNet,
		Bech32HRP:   "tvry",
		GenesisBlock: block,
		GenesisHash: hash,
		IsTestNet:   true,
		IsMockable:  true,
	}
}

// RegNetParams returns minimal placeholder parameters for the regression
// test network, for the same reason documented on TestNetParams.
func RegNetParams() *ChainParams {
	block, hash := placeholderGenesis()
	return &ChainParams{
		Name:        "regtest",
		Net:         RegNet,
		Bech32HRP:   "rvry",
		GenesisBlock: block,
		GenesisHash: hash,
		IsTestNet:   true,
		IsMockable:  true,
	}
}
