// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"

	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

// averageStakeWeightInterval bounds how many ancestors GetAverageStakeWeight
// walks back through when the cache is cold.
const averageStakeWeightInterval = 60

// averageStakeWeightFloor is the empirically-chosen constant added to the
// averaged kernel-PS sum to keep the weight away from the singularity
// GetCurrentInflationRate's logarithm would hit near zero.
const averageStakeWeightFloor = 21

// GetCurrentInflationRate returns the network's targeted annualized
// inflation rate, in percent, for an average stake weight of avgWeight.
// It is undefined (and will return NaN or -Inf) for avgWeight <= 0;
// callers are expected to only ever pass a weight produced by
// GetAverageStakeWeight, which is always positive thanks to its +21 floor.
func GetCurrentInflationRate(avgWeight float64) float64 {
	return (17 * math.Log(avgWeight/20)) / 100
}

// GetAverageStakeWeight returns the average of GetPoSKernelPS over the up
// to 60 most recent ancestors of prev (inclusive), plus a floor of 21,
// using cache to avoid recomputing it when called again at the same
// height.
func GetAverageStakeWeight(prev blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache) float64 {
	return averageStakeWeight(prev, params, cache)
}

func averageStakeWeight(prev blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache) float64 {
	if blockchain.IsNilIndex(prev) {
		return averageStakeWeightFloor
	}

	height := prev.Height()
	if v, ok := cache.get(height); ok {
		return v
	}

	var sum float64
	var count int
	cur := prev
	for count = 0; !blockchain.IsNilIndex(cur) && count < averageStakeWeightInterval; count++ {
		sum += GetPoSKernelPS(cur, params)
		cur = cur.Prev()
	}

	avg := (sum / float64(count)) + averageStakeWeightFloor
	cache.set(height, avg)
	return avg
}
