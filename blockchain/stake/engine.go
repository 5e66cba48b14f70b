// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
)

// StakeEngine owns one node's worth of proof-of-stake state: the chain
// parameters it validates against, the narrow collaborator interfaces it
// reads through, and the average-stake-weight cache. Embedders hold one
// engine per node process rather than relying on package-level globals.
//
// Coins, TxIndex, Blocks, and Keys may be left nil for callers that never
// exercise GetCoinAge or SignBlock; Solver and Cfg default to safe
// fallbacks when left nil.
type StakeEngine struct {
	Params *chaincfg.ChainParams

	Coins   CoinView
	TxIndex TxIndex
	Blocks  BlockFileStore
	Keys    KeyStore
	Solver  ScriptSolver
	Cfg     Config

	cache Cache
}

// NewStakeEngine returns a StakeEngine bound to params. The collaborator
// fields are left nil; assign them directly before calling any method that
// needs them.
func NewStakeEngine(params *chaincfg.ChainParams) *StakeEngine {
	return &StakeEngine{Params: params}
}

func (e *StakeEngine) solver() ScriptSolver {
	if e.Solver != nil {
		return e.Solver
	}
	return defaultScriptSolver{}
}

func (e *StakeEngine) config() Config {
	if e.Cfg != nil {
		return e.Cfg
	}
	return noopConfig{}
}

// GetPoSKernelPS is the engine-bound form of the package-level
// GetPoSKernelPS, using the engine's own params.
func (e *StakeEngine) GetPoSKernelPS(prev blockchain.BlockIndexView) float64 {
	return GetPoSKernelPS(prev, e.Params)
}

// GetCurrentInterestRate is the engine-bound form of the package-level
// GetCurrentInterestRate, using the engine's own params and cache.
func (e *StakeEngine) GetCurrentInterestRate(prev blockchain.BlockIndexView) float64 {
	return GetCurrentInterestRate(prev, e.Params, &e.cache)
}

// GetAverageStakeWeight is the engine-bound form of the package-level
// computation, backed by the engine's own Cache.
func (e *StakeEngine) GetAverageStakeWeight(prev blockchain.BlockIndexView) float64 {
	return averageStakeWeight(prev, e.Params, &e.cache)
}

// GetStakeTimeFactoredWeight is the engine-bound form of the
// package-level computation, using the engine's own params and cache.
func (e *StakeEngine) GetStakeTimeFactoredWeight(timeWeight, coinDayWeight int64, prev blockchain.BlockIndexView) int64 {
	return stakeTimeFactoredWeight(timeWeight, coinDayWeight, prev, e.Params, &e.cache)
}

// GetProofOfStakeReward is the engine-bound form of the package-level
// reward computation.
func (e *StakeEngine) GetProofOfStakeReward(coinAge, fees int64, index blockchain.BlockIndexView) int64 {
	return proofOfStakeReward(coinAge, fees, index, e.Params, &e.cache, e.config())
}
