// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stake implements the proof-of-stake and proof-of-stake-time
// engine: average stake weight with caching, inflation and interest rate
// formulas, stake-time factoring, coin-age accumulation from the UTXO
// view, coin-stake reward, block signing, and block signature
// verification.
//
// Everything in this package is a pure function of an explicit
// BlockIndexView snapshot, the caller's ChainParams, and (where coin-age
// is involved) the narrow read-only collaborator interfaces defined in
// interfaces.go. Nothing here owns the block index, the UTXO set, or any
// on-disk state.
package stake
