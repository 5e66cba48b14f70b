// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

// posKernelInterval bounds how many proof-of-stake blocks GetPoSKernelPS
// walks back through.
const posKernelInterval = 72

// kernelMultiplier is 2^32, the scaling factor the original source applies
// to a block's difficulty ratio before accumulating it into the
// kernels-tried sum.
const kernelMultiplier = 4294967296.0

// GetPoSKernelPS returns the effective PoS difficulty rate ("kernel hashes
// per second") over the up-to-72 most recent proof-of-stake blocks reached
// by walking backward from prev.
//
// The original source takes prev as a parameter (there named pindexPrev)
// and additionally declares a second cursor, pindex, initialized to the
// chain's best header and never reassigned inside the loop — it functions
// only as a non-advancing guard that the chain has at least one block, not
// as the thing being walked. The walk, the PoS-ness test, and the
// difficulty/time reads are all performed on prev itself as it steps
// backward each iteration. This function reproduces that observable
// behavior: it walks prev, not a separate fixed cursor, since this core
// has no process-wide "best header" for a second cursor to sensibly
// reference. See the design notes' open question on this loop for the
// full discussion.
func GetPoSKernelPS(prev blockchain.BlockIndexView, params *chaincfg.ChainParams) float64 {
	var kernelsTriedAvg float64
	var stakesTime int64
	var stakesHandled int
	var prevStake blockchain.BlockIndexView

	cur := prev
	for !blockchain.IsNilIndex(cur) && stakesHandled < posKernelInterval {
		if cur.IsProofOfStake() {
			kernelsTriedAvg += blockDifficultyRatio(cur.Bits()) * kernelMultiplier
			if !blockchain.IsNilIndex(prevStake) {
				stakesTime += prevStake.Time() - cur.Time()
			}
			prevStake = cur
			stakesHandled++
		}
		cur = cur.Prev()
	}

	if stakesTime == 0 {
		return 0
	}
	return kernelsTriedAvg / float64(stakesTime)
}

// blockDifficultyRatio converts a compact nBits value to the conventional
// floating-point "difficulty" ratio relative to the easiest possible
// target (nBits 0x1d00ffff), the same conversion the original source's
// GetDifficulty performs. It is not itself a spec operation; it exists
// purely so GetPoSKernelPS can reproduce the original's
// `GetDifficulty(pindexPrev) * 4294967296.0` term.
func blockDifficultyRatio(bits uint32) float64 {
	mantissa := bits & 0x00ffffff
	if mantissa == 0 {
		return 0
	}
	shift := int(bits >> 24)

	diff := float64(0x0000ffff) / float64(mantissa)
	for shift < 29 {
		diff *= 256
		shift++
	}
	for shift > 29 {
		diff /= 256
		shift--
	}
	return diff
}
