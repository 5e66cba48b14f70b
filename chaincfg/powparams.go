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

// maxUint256 returns a freshly allocated all-ones 256-bit value, i.e.
// 2^256 - 1, computed as the unsigned underflow of 0 - 1.
func maxUint256() *uint256.Uint256 {
	return new(uint256.Uint256).Sub(new(uint256.Uint256), uint256.NewUint256(1))
}

// PoWNetParams returns the chain parameters for the pure proof-of-work
// network. PoW-net shares its message-start bytes, address prefixes, and
// bech32 human-readable part with hybrid-net: both were built from the same
// source tree and distinguished at the binary level, not the wire level.
func PoWNetParams() *ChainParams {
	powLimit := new(uint256.Uint256).Rsh(maxUint256(), 11)
	posLimit := new(uint256.Uint256).Rsh(maxUint256(), 20)

	genesisBlock := BuildGenesisBlock(
		"VeriCoin block 1340292",
		999,
		1472669240,
		233180,
		standalone.BigToCompact(powLimit),
		1,
		2500*Coin,
	)

	return &ChainParams{
		Name:         "pow-net",
		Net:          PoWNet,
		MessageStart: [4]byte{0x70, 0x35, 0x22, 0x05},
		DefaultPort:  "36988",
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
				"8232c0cf3bd7e05546e3d7aaaaf89fed8bc97c4df1a8c95e9249e13a2734932b"),

			BIP34Height: 0,
			BIP65Height: 550000,
			BIP66Height: 550000,
			CSVHeight:   550000,

			// Verium never runs PoS blocks, so PoSTHeight and PoSHeight are
			// unused. A NextTargetV2Height of zero puts every retarget on
			// the V2 clamp rule.
			NextTargetV2Height: 0,
			PoSTHeight:         0,
			PoSHeight:          0,
			VIP1Height:         520000,

			TargetTimespan:    0,
			PowTargetTimespan: 2 * 24 * time.Hour,
			PowTargetSpacing:  5 * time.Minute,

			// StakeTargetSpacing of zero is what the difficulty retargeter
			// keys off of to select the pure-PoW code path.
			StakeTargetSpacing: 0,
			StakeMinAge:        0,
			ModifierInterval:   0,

			PowLimit: powLimit,
			PosLimit: posLimit,

			PowNoRetargeting: false,

			CoinbaseMaturity:  100,
			InitialCoinSupply: 0,

			MinChainWork:       new(uint256.Uint256),
			DefaultAssumeValid: chainhash.Hash{},
		},

		GenesisBlock: genesisBlock,
		GenesisHash: *chainhash.NewHashFromStr(
			"8232c0cf3bd7e05546e3d7aaaaf89fed8bc97c4df1a8c95e9249e13a2734932b"),

		Checkpoints: []Checkpoint{
			{Height: 1, Hash: *chainhash.NewHashFromStr(
				"3f2566fc0abcc9b2e26c737d905ff3e639a49d44cd5d11d260df3cfb62663012")},
			{Height: 1500, Hash: *chainhash.NewHashFromStr(
				"0458cc7c7093cea6e78eed03a8f57d0eed200aaf5171eea82e63b8e643891cce")},
			{Height: 100000, Hash: *chainhash.NewHashFromStr(
				"0510c6cb8c5a2a5437fb893853f10e298654361a05cf611b1c54c1750dfbdad6")},
		},

		ChainTxData: ChainTxData{
			Time:    time.Unix(1499513240, 0),
			TxCount: 36540,
			TxRate:  0.0013,
		},

		DNSSeeds: []DNSSeed{
			{Host: "seed.vrm.vericonomy.com", HasFiltering: false},
		},
		AssumedSize: 1,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestNet:                false,
		IsMockable:               false,
	}
}

// Coin is the number of smallest units in one whole coin.
const Coin = 100000000

// Cent is one hundredth of a Coin, the unit the PoST interest-rate subsidy
// formula in blockchain/stake scales its intermediate rate by.
const Cent = Coin / 100
