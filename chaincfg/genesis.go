// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/duochain/duocore/blockchain/standalone"
	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/wire"
)

// BuildGenesisBlock deterministically constructs the genesis block for a
// network. The coinbase input's signature script is the classic
// "<0> <scriptNum> <timestamp>" construction: a zero push, a minimally
// encoded small integer that is unique to the network build (42 for
// hybrid-net, 999 for PoW-net in the original source), and the raw bytes of
// a human-readable timestamp string frozen at the moment the chain
// launched. The single output carries genesisReward and an empty (and
// therefore unspendable) pubkey script.
func BuildGenesisBlock(timestamp string, scriptNum int64, nTime, nNonce, nBits uint32, nVersion int32, genesisReward int64) *wire.MsgBlock {
	scriptSig := genesisCoinbaseScript(scriptNum, timestamp)

	tx := wire.NewMsgTx(1)
	tx.Time = int64(nTime)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.NullIndex},
		SignatureScript:  scriptSig,
		Sequence:         0xffffffff,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    genesisReward,
		PkScript: nil,
	})

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   nVersion,
			Timestamp: time.Unix(int64(nTime), 0),
			Bits:      nBits,
			Nonce:     nNonce,
		},
	}
	block.AddTransaction(tx)
	block.Header.MerkleRoot = standalone.CalcMerkleRoot([]chainhash.Hash{tx.TxHash()})
	return block
}

// genesisCoinbaseScript builds the "<0> <scriptNum> <timestamp>" signature
// script.
func genesisCoinbaseScript(scriptNum int64, timestamp string) []byte {
	script := make([]byte, 0, 2+len(timestamp))
	script = append(script, 0x00) // <0>
	script = append(script, pushScriptNum(scriptNum)...)
	script = append(script, pushData([]byte(timestamp))...)
	return script
}

// pushScriptNum minimally encodes n the way CScriptNum does and prepends
// its own single-byte push length. Values used by the genesis construction
// are always small positive integers (42, 999), so only that case needs to
// be exact; the general encoding is kept faithful to the original anyway.
func pushScriptNum(n int64) []byte {
	if n == 0 {
		return []byte{0x00}
	}

	neg := n < 0
	abs := n
	if neg {
		abs = -abs
	}

	var enc []byte
	for abs > 0 {
		enc = append(enc, byte(abs&0xff))
		abs >>= 8
	}

	if enc[len(enc)-1]&0x80 != 0 {
		if neg {
			enc = append(enc, 0x80)
		} else {
			enc = append(enc, 0x00)
		}
	} else if neg {
		enc[len(enc)-1] |= 0x80
	}

	return append([]byte{byte(len(enc))}, enc...)
}

// pushData encodes a script push of arbitrary data, using the standard
// direct-push / OP_PUSHDATA1 / OP_PUSHDATA2 opcodes depending on length.
// The timestamp strings used at genesis are well under 256 bytes, so only
// the first two branches are ever exercised in practice.
func pushData(data []byte) []byte {
	n := len(data)
	switch {
	case n < 0x4c:
		return append([]byte{byte(n)}, data...)
	case n <= 0xff:
		return append([]byte{0x4c, byte(n)}, data...)
	default:
		buf := make([]byte, 0, 3+n)
		buf = append(buf, 0x4d, byte(n), byte(n>>8))
		return append(buf, data...)
	}
}
