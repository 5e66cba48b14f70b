// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/wire"
)

// Coin is the unspent output GetCoinAge resolves a stake transaction's
// input against: its value, the time the containing transaction was
// stamped with, and its pubkey script.
type Coin struct {
	Value  int64
	Time   int64
	Script []byte
}

// CoinView is the narrow, read-only view onto the UTXO set that GetCoinAge
// needs. The real coin view (its storage, its reorg handling) is an
// external collaborator; this core only ever looks up one outpoint at a
// time.
type CoinView interface {
	// GetCoin returns the coin an outpoint references, or ok=false if it
	// isn't present in the view (spent, or never existed on this branch).
	GetCoin(outpoint wire.OutPoint) (coin Coin, ok bool)
}

// DiskTxPos locates a transaction within the block file store: the file
// it lives in, the byte offset of that file's block header, and the
// offset of the transaction past the header.
type DiskTxPos struct {
	FileID   int32
	Offset   int64
	TxOffset int64
}

// TxIndex is the narrow, read-only view onto the on-disk transaction
// index that GetCoinAge needs to locate a prior transaction's containing
// block.
type TxIndex interface {
	// Find returns the disk position of txid, or ok=false if the
	// transaction index has no record of it.
	Find(txid chainhash.Hash) (pos DiskTxPos, ok bool)
}

// BlockFileStore is the narrow, read-only view onto the append-only block
// file store that GetCoinAge needs to read a block header and the
// transaction that follows it.
type BlockFileStore interface {
	// Open returns a stream positioned at the start of the block header
	// for pos. The caller reads the header, then seeks forward by
	// pos.TxOffset before deserializing the transaction, exactly as the
	// original source's CAutoFile usage does.
	Open(pos DiskTxPos) (BlockFileReader, error)
}

// BlockFileReader is a readable stream over one block file entry that can
// only move forward, positioned at a block header by BlockFileStore.Open.
type BlockFileReader interface {
	// Read implements io.Reader so wire.BlockHeader.Deserialize and
	// wire.MsgTx.Deserialize can consume it directly.
	Read(p []byte) (int, error)

	// Skip advances the stream by n bytes without returning them, used to
	// seek from the end of the header to a transaction's stored offset.
	Skip(n int64) error

	// Close releases any resource the stream holds.
	Close() error
}

// PrivateKey is the narrow signing capability SignBlock needs from a key
// the embedder's key store resolves for it.
type PrivateKey interface {
	// Sign signs hash and returns the resulting signature.
	Sign(hash chainhash.Hash) ([]byte, error)

	// PublicKey returns the key's serialized public key, which SignBlock
	// checks against the staking output's recognized pubkey before
	// trusting the signature it produces.
	PublicKey() []byte
}

// KeyStore is the narrow, read-only view onto the node's signing key store
// that SignBlock needs. The key_id a caller looks up with is the
// serialized public key bytes the staking output's script resolved to;
// this core never computes or stores a pubkey-hash key id of its own,
// leaving that indexing scheme to the embedder's key store.
type KeyStore interface {
	// GetKey returns the private key controlling pubKey, or ok=false if
	// the store has no such key.
	GetKey(pubKey []byte) (key PrivateKey, ok bool)
}

// Config is the one configuration surface the core reads: the hosting
// node's `-printcreation` and `-printcoinage` command-line flags, gated
// through a callback rather than read directly, since no CLI or
// environment state is owned by this core.
type Config interface {
	// BoolFlag reports whether the named boolean flag is set.
	BoolFlag(name string) bool
}

// noopConfig is used when an engine is constructed without an explicit
// Config, so BoolFlag lookups have somewhere safe to land.
type noopConfig struct{}

func (noopConfig) BoolFlag(string) bool { return false }
