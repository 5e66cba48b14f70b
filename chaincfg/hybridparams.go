// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/duochain/duocore/blockchain/standalone"
	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/math/uint256"
)

// HybridNetParams returns the chain parameters for the proof-of-work,
// proof-of-stake, and (after PoSTHeight) proof-of-stake-time hybrid
// network.
func HybridNetParams() *ChainParams {
	powLimit := new(uint256.Uint256).Rsh(maxUint256(), 20)
	posLimit := new(uint256.Uint256).Rsh(maxUint256(), 20)

	genesisBlock := BuildGenesisBlock(
		"9 May 2014 US politicians can accept bitcoin donations",
		42,
		1399690945,
		612416,
		standalone.BigToCompact(powLimit),
		1,
		2500*Coin,
	)

	return &ChainParams{
		Name:         "hybrid-net",
		Net:          HybridNet,
		MessageStart: [4]byte{0x70, 0x35, 0x22, 0x05},
		DefaultPort:  "58684",
		Prefixes: AddressPrefixes{
			PubKeyAddr:   70,
			ScriptAddr:   132,
			PrivateKey:   198,
			ExtPubKey:    [4]byte{0xE3, 0xCC, 0xBB, 0x92},
			ExtSecretKey: [4]byte{0xE3, 0xCC, 0xAE, 0x01},
		},
		Bech32HRP: "vry",

		Consensus: ConsensusParams{
			HashGenesisBlock: *chainhash.NewHashFromStr(
				"000004da58a02be894a6c916d349fe23cc29e21972cafb86b5d3f07c4b8e6bb8"),

			BIP34Height: 227931,
			BIP65Height: 4000000,
			BIP66Height: 4000000,
			CSVHeight:   4000000,

			NextTargetV2Height: 38424,
			PoSTHeight:         608100,
			PoSHeight:          20160,
			VIP1Height:         0,

			TargetTimespan:    16 * time.Minute,
			PowTargetTimespan: 14 * 24 * time.Hour,
			PowTargetSpacing:  60 * time.Second,

			StakeTargetSpacing: 60 * time.Second,
			StakeMinAge:        8 * time.Hour,
			ModifierInterval:   10 * time.Minute,

			PowLimit: powLimit,
			PosLimit: posLimit,

			PowNoRetargeting: false,

			CoinbaseMaturity:  500,
			InitialCoinSupply: 26751452,

			MinChainWork:       new(uint256.Uint256),
			DefaultAssumeValid: chainhash.Hash{},
		},

		GenesisBlock: genesisBlock,
		GenesisHash: *chainhash.NewHashFromStr(
			"000004da58a02be894a6c916d349fe23cc29e21972cafb86b5d3f07c4b8e6bb8"),

		// Checkpoint entries were never filled in on the hybrid-net side of
		// the original source either; left empty here rather than inventing
		// values.
		Checkpoints: nil,
		ChainTxData: ChainTxData{
			Time:    time.Unix(1591618067, 0),
			TxCount: 1797921,
			TxRate:  0.00730216,
		},

		DNSSeeds: []DNSSeed{
			{Host: "seed.vrc.vericonomy.com", HasFiltering: false},
		},
		AssumedSize: 3,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestNet:                false,
		IsMockable:               false,
	}
}
