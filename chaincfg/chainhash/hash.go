// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides a generic hash type and associated functions
// that allow the specific hash algorithm to be abstracted away.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the number of bytes in a hash produced by this package.
const HashSize = 32

// Hash is a double-SHA256 hash used to uniquely identify blocks and
// transactions.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the historical display convention of Bitcoin-derived
// chains (the internal byte order is little-endian; the displayed order is
// big-endian).
func (h Hash) String() string {
	var reversed Hash
	for i, b := range h {
		reversed[HashSize-1-i] = b
	}
	return hex.EncodeToString(reversed[:])
}

// IsEqual returns whether h and target are the same hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// SetBytes sets the bytes which represent the hash. An error is returned
// if the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewHashFromStr creates a Hash from a hash string, reversing the bytes the
// same way String reverses them on output, and panics if the string is not
// a valid length-64 hex string. It is intended for hardcoding pinned hash
// constants, not for parsing untrusted input.
func NewHashFromStr(hash string) *Hash {
	ret, err := newHashFromStr(hash)
	if err != nil {
		panic(err)
	}
	return ret
}

func newHashFromStr(hash string) (*Hash, error) {
	buf, err := hex.DecodeString(hash)
	if err != nil {
		return nil, err
	}
	if len(buf) != HashSize {
		return nil, fmt.Errorf("invalid hash string length of %v, want %v",
			len(buf), HashSize)
	}
	var h Hash
	for i, b := range buf {
		h[HashSize-1-i] = b
	}
	return &h, nil
}

// HashB calculates the double-SHA256 hash of the given byte slice and
// returns it as a []byte.
func HashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// HashH calculates the double-SHA256 hash of the given byte slice and
// returns it as a Hash.
func HashH(b []byte) Hash {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return Hash(second)
}
