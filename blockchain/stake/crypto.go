// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/duochain/duocore/chaincfg/chainhash"
)

// Secp256k1Key adapts a secp256k1 private key to the PrivateKey interface
// SignBlock and a KeyStore need, grounded on the original source's use of
// secp256k1 ECDSA (via CKey/CPubKey) for ppcoin-style block signing.
type Secp256k1Key struct {
	priv *secp256k1.PrivateKey
}

// NewSecp256k1Key wraps priv for use as a stake.PrivateKey.
func NewSecp256k1Key(priv *secp256k1.PrivateKey) *Secp256k1Key {
	return &Secp256k1Key{priv: priv}
}

// Sign implements PrivateKey.
func (k *Secp256k1Key) Sign(hash chainhash.Hash) ([]byte, error) {
	sig := ecdsa.Sign(k.priv, hash[:])
	return sig.Serialize(), nil
}

// PublicKey implements PrivateKey, returning the compressed encoding, the
// same form ExtractCompressedPubKey recognizes in a staking output.
func (k *Secp256k1Key) PublicKey() []byte {
	return k.priv.PubKey().SerializeCompressed()
}

// verifyBlockSignature reports whether sig is a valid secp256k1 ECDSA
// signature over hash by the public key encoded in pubKey.
func verifyBlockSignature(pubKey []byte, hash chainhash.Hash, sig []byte) bool {
	key, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return signature.Verify(hash[:], key)
}
