// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the minimal block and transaction data types the
// consensus core needs to deterministically build and hash a genesis block
// and to let the stake subsystem address a block's staking output. It is
// not a wire-protocol codec for peer-to-peer messages; that remains an
// external collaborator per the core's scope.
package wire

import (
	"encoding/binary"
	"io"

	"github.com/duochain/duocore/chaincfg/chainhash"
)

// MaxVarIntPayload is the greatest number of bytes a variable length
// integer this package encodes can be.
const MaxVarIntPayload = 9

// NullIndex is the index used in the null outpoint of coinbase transaction
// inputs.
const NullIndex = 0xffffffff

// OutPoint defines a source of a transaction input, referencing the
// transaction hash of the source transaction and its output index.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new OutPoint.
func NewOutPoint(hash *chainhash.Hash, index uint32) OutPoint {
	return OutPoint{Hash: *hash, Index: index}
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// MsgTx implements a transaction message. In the original source this
// struct carries an extra nTime field (PPCoin-style) immediately after the
// version, which the stake subsystem's coin-age calculation depends on
// (tx.time vs. the containing block's minimum-age gate) — preserved here
// as the Time field.
type MsgTx struct {
	Version  int32
	Time     int64
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction message with default values.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether a transaction is a coinbase transaction:
// exactly one input whose previous output index is the maximum value for
// a uint32 and whose previous output hash is all zeroes.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == NullIndex && prevOut.Hash == (chainhash.Hash{})
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if err := writeLE(w, uint32(msg.Version)); err != nil {
		return err
	}
	if err := writeLE(w, uint32(msg.Time)); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}
	if err := writeVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}
	return writeLE(w, msg.LockTime)
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
		return err
	}
	if err := writeLE(w, ti.PreviousOutPoint.Index); err != nil {
		return err
	}
	if err := writeVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeLE(w, ti.Sequence)
}

func writeTxOut(w io.Writer, to *TxOut) error {
	if err := writeLE(w, uint64(to.Value)); err != nil {
		return err
	}
	return writeVarBytes(w, to.PkScript)
}

// TxHash computes the double-SHA256 hash of the serialized transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf cbuffer
	_ = msg.Serialize(&buf)
	return chainhash.HashH(buf.b)
}

// cbuffer is a minimal io.Writer over a growable byte slice, used instead
// of bytes.Buffer so serialization errors (which cannot occur for an
// in-memory sink) don't need an import of bytes in callers that only ever
// hash the result.
type cbuffer struct {
	b []byte
}

func (c *cbuffer) Write(p []byte) (int, error) {
	c.b = append(c.b, p...)
	return len(p), nil
}

func writeLE(w io.Writer, v interface{}) error {
	switch val := v.(type) {
	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], val)
		_, err := w.Write(buf[:])
		return err
	case uint64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], val)
		_, err := w.Write(buf[:])
		return err
	default:
		panic("writeLE: unsupported type")
	}
}

func writeVarInt(w io.Writer, n uint64) error {
	switch {
	case n < 0xfd:
		_, err := w.Write([]byte{byte(n)})
		return err
	case n <= 0xffff:
		if _, err := w.Write([]byte{0xfd}); err != nil {
			return err
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n))
		_, err := w.Write(buf[:])
		return err
	case n <= 0xffffffff:
		if _, err := w.Write([]byte{0xfe}); err != nil {
			return err
		}
		return writeLE(w, uint32(n))
	default:
		if _, err := w.Write([]byte{0xff}); err != nil {
			return err
		}
		return writeLE(w, n)
	}
}

func writeVarBytes(w io.Writer, b []byte) error {
	if err := writeVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// Deserialize decodes a transaction from r, the inverse of Serialize. It is
// used by the stake subsystem's coin-age calculation to read a prior
// transaction back out of the block file store.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	version, err := readUint32(r)
	if err != nil {
		return err
	}
	msg.Version = int32(version)

	t, err := readUint32(r)
	if err != nil {
		return err
	}
	msg.Time = int64(t)

	inCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	msg.TxIn = make([]*TxIn, inCount)
	for i := range msg.TxIn {
		ti, err := readTxIn(r)
		if err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	outCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	msg.TxOut = make([]*TxOut, outCount)
	for i := range msg.TxOut {
		to, err := readTxOut(r)
		if err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	lockTime, err := readUint32(r)
	if err != nil {
		return err
	}
	msg.LockTime = lockTime
	return nil
}

func readTxIn(r io.Reader) (*TxIn, error) {
	ti := new(TxIn)
	if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
		return nil, err
	}
	idx, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.PreviousOutPoint.Index = idx

	script, err := readVarBytes(r)
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = script

	seq, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.Sequence = seq
	return ti, nil
}

func readTxOut(r io.Reader) (*TxOut, error) {
	to := new(TxOut)
	value, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	to.Value = int64(value)

	script, err := readVarBytes(r)
	if err != nil {
		return nil, err
	}
	to.PkScript = script
	return to, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func readVarInt(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	switch prefix[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case 0xfe:
		n, err := readUint32(r)
		return uint64(n), err
	case 0xff:
		return readUint64(r)
	default:
		return uint64(prefix[0]), nil
	}
}

func readVarBytes(r io.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
