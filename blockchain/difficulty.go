// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/duochain/duocore/blockchain/standalone"
	"github.com/duochain/duocore/chaincfg"
	"github.com/duochain/duocore/math/uint256"
)

// NextTarget computes the compact difficulty target the next block after
// prevIndex must satisfy. It implements a single exponential-moving-average
// retarget formula shared by both networks; on PoW-net, where
// params.Consensus.StakeTargetSpacing is zero and every block is the same
// proof type, the same-type walk below degenerates to simply comparing
// consecutive blocks, which is what makes one formula correct for both.
//
// prevIndex may be nil, representing the genesis case.
func NextTarget(prevIndex BlockIndexView, params *chaincfg.ChainParams) uint32 {
	if isNilView(prevIndex) {
		return standalone.BigToCompact(params.Consensus.PowLimit)
	}

	limit := params.Consensus.PowLimit
	if prevIndex.IsProofOfStake() {
		limit = params.Consensus.PosLimit
	}

	wantStake := prevIndex.IsProofOfStake()

	// P is the nearest block, starting the search at prevIndex itself, of
	// the same proof type as prevIndex. Since prevIndex trivially matches
	// its own type, this always returns prevIndex; the walk only does
	// real work one level further back, finding PP.
	p := findSameType(prevIndex, wantStake)
	if isNilView(p.Prev()) {
		return standalone.BigToCompact(limit)
	}

	pp := findSameType(p.Prev(), wantStake)
	if isNilView(pp) || isNilView(pp.Prev()) {
		return standalone.BigToCompact(limit)
	}

	actualSpacing := p.Time() - pp.Time()

	// PoW-net sets StakeTargetSpacing and TargetTimespan to zero (it has
	// no stake blocks, so the original parameter table never gave them a
	// value). The retarget formula below needs a nonzero spacing/timespan
	// pair regardless of network, so PoW-net falls back to its own
	// PowTargetSpacing/PowTargetTimespan, which describe the same
	// quantity (time between consecutive blocks of the chain's one proof
	// type) in the vocabulary PoW-net's parameter table actually fills
	// in.
	stakeSpacing := int64(params.Consensus.StakeTargetSpacing / time.Second)
	targetTimespan := int64(params.Consensus.TargetTimespan / time.Second)
	if stakeSpacing == 0 {
		stakeSpacing = int64(params.Consensus.PowTargetSpacing / time.Second)
	}
	if targetTimespan == 0 {
		targetTimespan = int64(params.Consensus.PowTargetTimespan / time.Second)
	}

	isV2 := prevIndex.Height() >= params.Consensus.NextTargetV2Height
	if isV2 && actualSpacing < 0 {
		actualSpacing = stakeSpacing
	}

	interval := targetTimespan / stakeSpacing

	multiplier := (interval-1)*stakeSpacing + 2*actualSpacing
	divisor := (interval + 1) * stakeSpacing

	var result *uint256.Uint256
	if multiplier <= 0 {
		// A nonpositive multiplier means the true (signed) result would
		// be zero or negative. This core's BigInt layer is unsigned only
		// (see math/uint256), so the magnitude saturates to zero instead
		// of carrying a sign bit through the compact encoding. V1 leaves
		// a zero result unclamped below, matching "clamp only on the
		// upper bound"; V2 clamps it up to limit just below.
		result = new(uint256.Uint256)
	} else {
		wide := uint256.FromUint256(standalone.CompactToBig(p.Bits()))
		wide.MulSmall(wide, uint64(multiplier))
		wide.DivSmall(wide, uint64(divisor))
		if wide.Overflows256() {
			result = new(uint256.Uint256).Set(limit)
		} else {
			result = wide.ToUint256()
		}
	}

	if isV2 {
		if result.IsZero() || result.Cmp(limit) > 0 {
			result = limit
		}
	} else if result.Cmp(limit) > 0 {
		result = limit
	}

	return standalone.BigToCompact(result)
}

// findSameType walks backward from start, inclusive, returning the nearest
// node whose IsProofOfStake matches wantStake, or nil if the arena is
// exhausted first.
func findSameType(start BlockIndexView, wantStake bool) BlockIndexView {
	cur := start
	for !isNilView(cur) && cur.IsProofOfStake() != wantStake {
		cur = cur.Prev()
	}
	return cur
}
