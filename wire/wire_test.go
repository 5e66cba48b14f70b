// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/duochain/duocore/chaincfg/chainhash"
)

func TestCoinbaseTxHashDeterministic(t *testing.T) {
	build := func() *MsgTx {
		tx := NewMsgTx(1)
		tx.AddTxIn(&TxIn{
			PreviousOutPoint: OutPoint{Index: NullIndex},
			SignatureScript:  []byte{0x00, 0x2a},
			Sequence:         0xffffffff,
		})
		tx.AddTxOut(&TxOut{Value: 0, PkScript: nil})
		return tx
	}

	a := build().TxHash()
	b := build().TxHash()
	if a != b {
		t.Fatalf("coinbase tx hash is not deterministic")
	}
}

func TestIsCoinBase(t *testing.T) {
	tx := NewMsgTx(1)
	tx.AddTxIn(&TxIn{PreviousOutPoint: OutPoint{Index: NullIndex}})
	if !tx.IsCoinBase() {
		t.Fatalf("expected null-outpoint single-input tx to be a coinbase")
	}

	tx2 := NewMsgTx(1)
	tx2.AddTxIn(&TxIn{PreviousOutPoint: OutPoint{Index: 0}})
	if tx2.IsCoinBase() {
		t.Fatalf("expected non-null-outpoint tx to not be a coinbase")
	}
}

func TestStakingOutputSelection(t *testing.T) {
	powBlock := &MsgBlock{Transactions: []*MsgTx{
		{TxOut: []*TxOut{{Value: 1, PkScript: []byte("pow")}}},
	}}
	out, ok := powBlock.StakingOutput()
	if !ok || string(out.PkScript) != "pow" {
		t.Fatalf("expected PoW staking output vtx[0].vout[0]:\n%s", spew.Sdump(out))
	}

	posBlock := &MsgBlock{Transactions: []*MsgTx{
		{TxOut: []*TxOut{{Value: 0}}},
		{TxOut: []*TxOut{{Value: 0}, {Value: 2, PkScript: []byte("pos")}}},
	}}
	out, ok = posBlock.StakingOutput()
	if !ok || string(out.PkScript) != "pos" {
		t.Fatalf("expected PoS staking output vtx[1].vout[1]:\n%s", spew.Sdump(out))
	}
	if !posBlock.IsProofOfStake() {
		t.Fatalf("expected IsProofOfStake to be true for a two-tx block")
	}
}

func TestBlockHashIgnoresTransactionBytes(t *testing.T) {
	// The block hash commits only to the header; two blocks with the same
	// header but different transactions hash identically, which is why
	// MerkleRoot exists to commit to the transaction set.
	header := BlockHeader{Version: 1, MerkleRoot: chainhash.HashH([]byte("a"))}
	b1 := &MsgBlock{Header: header, Transactions: []*MsgTx{NewMsgTx(1)}}
	b2 := &MsgBlock{Header: header, Transactions: nil}
	if b1.BlockHash() != b2.BlockHash() {
		t.Fatalf("expected block hash to depend only on the header")
	}
}
