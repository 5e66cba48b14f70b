// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"

	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

// GetStakeTimeFactoredWeight caps the contribution of a dominant staker's
// coin age by folding its share of the network's average stake weight
// through a cosine curve. If the input's weight fraction alone would
// exceed 45% of the average, its time weight is capped at stakeMinAge+1
// instead of being allowed to dominate the reward.
func GetStakeTimeFactoredWeight(timeWeight, coinDayWeight int64, prev blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache) int64 {
	return stakeTimeFactoredWeight(timeWeight, coinDayWeight, prev, params, cache)
}

func stakeTimeFactoredWeight(timeWeight, coinDayWeight int64, prev blockchain.BlockIndexView, params *chaincfg.ChainParams, cache *Cache) int64 {
	avgWeight := averageStakeWeight(prev, params, cache)
	weightFraction := float64(coinDayWeight+1) / avgWeight

	if weightFraction*100 > 45 {
		return int64(params.Consensus.StakeMinAge.Seconds()) + 1
	}

	stakeTimeFactor := math.Pow(math.Cos(math.Pi*weightFraction), 2.0)
	return int64(stakeTimeFactor * float64(timeWeight))
}
