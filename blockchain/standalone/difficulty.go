// Copyright (c) 2019-2021 The Decred developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone provides standalone functions useful for independently
// calculating chain values, without needing a full consensus engine. It is
// the thin, allocation-light layer the rest of the core (genesis
// construction, difficulty retargeting) builds on top of the fixed-width
// math/uint256 type.
package standalone

import (
	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/math/uint256"
)

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 256-bit integer. See Uint256.SetCompact for details on the format.
func CompactToBig(compact uint32) *uint256.Uint256 {
	return new(uint256.Uint256).SetCompact(compact)
}

// BigToCompact converts a whole number N to a compact representation.
func BigToCompact(n *uint256.Uint256) uint32 {
	return n.Compact()
}

// HashToBig converts a chainhash.Hash, interpreted as a little-endian
// 256-bit integer (the usual in-memory byte order for a block hash), to a
// Uint256.
func HashToBig(hash *chainhash.Hash) *uint256.Uint256 {
	var reversed [32]byte
	for i, b := range hash {
		reversed[31-i] = b
	}
	return new(uint256.Uint256).SetBytes(reversed[:])
}

// CalcMerkleRoot creates a merkle tree from the slice of hashes and returns
// the root of the tree. Each internal node's hash is the double-SHA256 of
// the concatenation of its two children; an odd node at a given level is
// duplicated to pair with itself, matching the historical Bitcoin-derived
// convention (including its known duplicate-transaction quirk, which this
// core does not attempt to work around since no validation component here
// depends on it).
func CalcMerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			var buf [64]byte
			copy(buf[:32], level[2*i][:])
			copy(buf[32:], level[2*i+1][:])
			next[i] = chainhash.HashH(buf[:])
		}
		level = next
	}
	return level[0]
}
