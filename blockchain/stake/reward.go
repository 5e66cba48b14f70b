// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"

	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

// annualizedRateNumerator and annualizedRateDenominator together form the
// 33/(365*33+8) factor both reward regimes scale by: the per-second share
// of an annualized rate, preserved exactly from the original source.
const annualizedRateNumerator = 33
const annualizedRateDenominator = 365*33 + 8

// preStakeTimeWeightKernelFloor is the kernel-PS threshold below which the
// pre-PoST reward regime pays no subsidy at all (the network is judged too
// weak to support stake rewards yet).
const preStakeTimeWeightKernelFloor = 21

// GetProofOfStakeReward returns the coin-stake subsidy a stake block at
// index earns, given the coin age its inputs accumulated and the
// transaction fees it collects. cfg gates the `-printcreation` diagnostic
// log line the original source prints under the same name.
func GetProofOfStakeReward(coinAge, fees int64, index blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache, cfg Config) int64 {
	return proofOfStakeReward(coinAge, fees, index, params, cache, cfg)
}

func proofOfStakeReward(coinAge, fees int64, index blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache, cfg Config) int64 {
	var subsidy int64

	if index.Height()+1 > params.Consensus.PoSTHeight {
		interestRate := int64(GetCurrentInterestRate(index, params, cache) * float64(chaincfg.Cent))
		subsidy = int64(params.Consensus.StakeMinAge.Seconds()) * interestRate *
			annualizedRateNumerator / annualizedRateDenominator
	} else {
		networkWeight := GetPoSKernelPS(index, params)
		if networkWeight < preStakeTimeWeightKernelFloor {
			subsidy = 0
		} else {
			interestRate := int64(17 * math.Log(networkWeight/20) * 10000)
			subsidy = coinAge * interestRate * annualizedRateNumerator / annualizedRateDenominator
		}
	}

	if cfg != nil && cfg.BoolFlag("-printcreation") {
		log.Debugf("GetProofOfStakeReward: create=%d coinAge=%d", subsidy, coinAge)
	}

	return subsidy + fees
}

// GetCurrentInterestRate returns the interest rate a stake block must pay
// out to hold inflation at GetCurrentInflationRate's targeted level, given
// the average stake weight at prev.
func GetCurrentInterestRate(prev blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache) float64 {
	weight := averageStakeWeight(prev, params, cache)
	inflation := GetCurrentInflationRate(weight) / 100
	return (inflation * float64(params.Consensus.InitialCoinSupply) / weight) * 100
}
