// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"
	"testing"

	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

func TestGetCurrentInflationRateFormula(t *testing.T) {
	got := GetCurrentInflationRate(40)
	want := (17 * math.Log(40.0/20)) / 100
	if got != want {
		t.Fatalf("GetCurrentInflationRate(40) = %v, want %v", got, want)
	}
}

func TestGetAverageStakeWeightFloorOnNilPrev(t *testing.T) {
	params := chaincfg.HybridNetParams()
	var cache Cache
	if got := GetAverageStakeWeight(nil, params, &cache); got != averageStakeWeightFloor {
		t.Fatalf("GetAverageStakeWeight(nil) = %v, want the floor %v", got, averageStakeWeightFloor)
	}
}

func TestGetAverageStakeWeightCacheConsistency(t *testing.T) {
	params := chaincfg.HybridNetParams()
	bits := chaincfgCompactLimit(params)

	idx := blockchain.NewBlockIndex()
	var tip *blockchain.Node
	for i := int64(0); i < 5; i++ {
		tip = idx.AddNode(tip, i, 1000+i*60, bits, true)
	}

	var cache Cache
	first := GetAverageStakeWeight(tip, params, &cache)
	second := GetAverageStakeWeight(tip, params, &cache)
	if first != second {
		t.Fatalf("two successive calls at the same height diverged: %v vs %v", first, second)
	}

	// Extending the chain adds a child of tip but changes neither tip's
	// ancestors nor its own height; re-querying at the original tip must still hit the cache
	// and return the exact same value even though further blocks now
	// exist beyond it.
	idx.AddNode(tip, tip.Height()+1, 1500, bits, true)
	third := GetAverageStakeWeight(tip, params, &cache)
	if third != first {
		t.Fatalf("cached value changed after an unrelated extension of the chain: %v vs %v", third, first)
	}
}

func TestGetAverageStakeWeightAboveFloor(t *testing.T) {
	params := chaincfg.HybridNetParams()
	bits := chaincfgCompactLimit(params)
	idx := blockchain.NewBlockIndex()
	tip := idx.AddNode(nil, 1, 1000, bits, false)

	var cache Cache
	got := GetAverageStakeWeight(tip, params, &cache)
	if got < averageStakeWeightFloor {
		t.Fatalf("GetAverageStakeWeight = %v, want at least the floor %v", got, averageStakeWeightFloor)
	}
}
