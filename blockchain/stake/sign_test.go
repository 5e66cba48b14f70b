// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/wire"
)

func TestCheckCoinStakeTimestamp(t *testing.T) {
	if !CheckCoinStakeTimestamp(1000, 1000) {
		t.Fatalf("equal timestamps should satisfy the coinstake timestamp rule")
	}
	if CheckCoinStakeTimestamp(1000, 999) {
		t.Fatalf("unequal timestamps should not satisfy the coinstake timestamp rule")
	}
	if CheckCoinStakeTimestamp(1000, 1001) {
		t.Fatalf("unequal timestamps should not satisfy the coinstake timestamp rule")
	}
}

func TestCheckBlockSignatureGenesisSpecialCase(t *testing.T) {
	genesis := &wire.MsgBlock{}
	genesisHash := genesis.BlockHash()

	if !CheckBlockSignature(genesis, genesisHash, defaultScriptSolver{}) {
		t.Fatalf("genesis block with no signature should check out")
	}

	genesis.Signature = []byte{0x01}
	if CheckBlockSignature(genesis, genesisHash, defaultScriptSolver{}) {
		t.Fatalf("genesis block with a non-empty signature should fail")
	}
}

func TestCheckBlockSignatureNonGenesisEmptySignatureFails(t *testing.T) {
	block := &wire.MsgBlock{
		Transactions: []*wire.MsgTx{{}},
	}
	var genesisHash chainhash.Hash
	if CheckBlockSignature(block, genesisHash, defaultScriptSolver{}) {
		t.Fatalf("non-genesis block with an empty signature should never check out")
	}
}

func TestSignBlockAndCheckBlockSignatureRoundTrip(t *testing.T) {
	var scalar [32]byte
	for i := range scalar {
		scalar[i] = byte(i + 1)
	}
	priv := secp256k1.PrivKeyFromBytes(scalar[:])
	key := NewSecp256k1Key(priv)

	pubKeyScript := append([]byte{opData33}, key.PublicKey()...)
	pubKeyScript = append(pubKeyScript, opCheckSig)

	coinstake := &wire.MsgTx{
		TxOut: []*wire.TxOut{
			{Value: 0, PkScript: nil},
			{Value: 100, PkScript: pubKeyScript},
		},
	}
	block := &wire.MsgBlock{
		Transactions: []*wire.MsgTx{{}, coinstake},
	}

	engine := NewStakeEngine(nil)
	engine.Keys = fakeKeyStore{key: key}

	if err := engine.SignBlock(block); err != nil {
		t.Fatalf("SignBlock: %v", err)
	}
	if len(block.Signature) == 0 {
		t.Fatalf("SignBlock left no signature on the block")
	}

	var genesisHash chainhash.Hash // zero hash, won't match a real block
	if !CheckBlockSignature(block, genesisHash, defaultScriptSolver{}) {
		t.Fatalf("CheckBlockSignature rejected a signature SignBlock just produced")
	}

	// Flipping a byte in the signature must break verification.
	block.Signature[0] ^= 0xff
	if CheckBlockSignature(block, genesisHash, defaultScriptSolver{}) {
		t.Fatalf("CheckBlockSignature accepted a corrupted signature")
	}
}

func TestSignBlockFailsWithoutStakingOutput(t *testing.T) {
	block := &wire.MsgBlock{
		Transactions: []*wire.MsgTx{{}},
	}
	engine := NewStakeEngine(nil)
	if err := engine.SignBlock(block); err == nil {
		t.Fatalf("expected SignBlock to fail on a block with no recognizable staking output")
	}
}

type fakeKeyStore struct {
	key *Secp256k1Key
}

func (f fakeKeyStore) GetKey(pubKey []byte) (PrivateKey, bool) {
	if string(pubKey) != string(f.key.PublicKey()) {
		return nil, false
	}
	return f.key, true
}
