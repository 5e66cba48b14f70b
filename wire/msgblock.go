// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"time"

	"github.com/duochain/duocore/chaincfg/chainhash"
)

// BlockHeader defines information about a block and is used in the bitcoin
// block (MsgBlock) and headers (MsgHeaders) messages.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32
}

// Serialize encodes the block header to w in the standard 80-byte format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	if err := writeLE(w, uint32(h.Version)); err != nil {
		return err
	}
	if _, err := w.Write(h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := writeLE(w, uint32(h.Timestamp.Unix())); err != nil {
		return err
	}
	if err := writeLE(w, h.Bits); err != nil {
		return err
	}
	return writeLE(w, h.Nonce)
}

// BlockHash computes the double-SHA256 hash of the block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	var buf cbuffer
	_ = h.Serialize(&buf)
	return chainhash.HashH(buf.b)
}

// Deserialize decodes a block header from r, the inverse of Serialize. The
// stake subsystem's coin-age calculation reads a header this way before
// seeking past it to a transaction's stored offset.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	version, err := readUint32(r)
	if err != nil {
		return err
	}
	h.Version = int32(version)

	if _, err := io.ReadFull(r, h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, h.MerkleRoot[:]); err != nil {
		return err
	}

	ts, err := readUint32(r)
	if err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(ts), 0)

	bits, err := readUint32(r)
	if err != nil {
		return err
	}
	h.Bits = bits

	nonce, err := readUint32(r)
	if err != nil {
		return err
	}
	h.Nonce = nonce
	return nil
}

// MsgBlock implements a block message. Transactions holds the block's
// single transaction tree: for a proof-of-work block, Transactions[0] is
// the coinbase; for a proof-of-stake block, Transactions[0] is an empty
// coinbase and Transactions[1] is the coinstake transaction whose second
// output (vout[1]) carries the staking pubkey script that SignBlock and
// CheckBlockSignature operate on.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	// Signature is the block's ppcoin-style signature over its hash, made
	// by the key controlling the staking output's pubkey. It is empty for
	// every proof-of-work block and for the genesis block.
	Signature []byte
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// Serialize encodes the block to w: the 80-byte header, followed by the
// varint-prefixed transaction list.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	if err := msg.Header.Serialize(w); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(msg.Transactions))); err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// BlockHash computes the double-SHA256 hash of the block header. Per
// Bitcoin-derived convention, the block hash commits only to the header;
// the transaction list is committed to indirectly via MerkleRoot.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// IsProofOfStake reports whether the block is a proof-of-stake block: it
// carries a second transaction (the coinstake) beyond the coinbase.
func (msg *MsgBlock) IsProofOfStake() bool {
	return len(msg.Transactions) > 1
}

// StakingOutput returns the output whose pubkey script SignBlock and
// CheckBlockSignature operate on: vtx[1].vout[1] for a proof-of-stake
// block, vtx[0].vout[0] for a proof-of-work block.
func (msg *MsgBlock) StakingOutput() (*TxOut, bool) {
	if msg.IsProofOfStake() {
		coinstake := msg.Transactions[1]
		if len(coinstake.TxOut) < 2 {
			return nil, false
		}
		return coinstake.TxOut[1], true
	}
	if len(msg.Transactions) == 0 || len(msg.Transactions[0].TxOut) < 1 {
		return nil, false
	}
	return msg.Transactions[0].TxOut[0], true
}
