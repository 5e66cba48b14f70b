// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/duochain/duocore/blockchain"
	"github.com/duochain/duocore/chaincfg"
	"github.com/duochain/duocore/math/uint256"
	"github.com/duochain/duocore/wire"
)

const secondsPerDay = 24 * 60 * 60

// GetCoinAge computes the coin-age (in coin-days) a stake transaction's
// inputs accumulated, reading the UTXO view, transaction index, and block
// file store through e's collaborator interfaces. A coinbase transaction
// trivially has zero coin age. Every input's prior transaction must
// satisfy the stake minimum-age gate to contribute; inputs whose coin
// cannot be found in the view are silently skipped (the original source's
// "not in main chain" case), but a tx-index or block-file failure for an
// input that IS in the view aborts the whole computation and returns
// ok=false — this core preserves that all-or-nothing policy rather than
// skipping just the offending input (see the open question in the design
// notes).
func (e *StakeEngine) GetCoinAge(tx *wire.MsgTx, prev blockchain.BlockIndexView) (coinAge int64, ok bool, err error) {
	if tx.IsCoinBase() {
		return 0, true, nil
	}

	if e.TxIndex == nil {
		return 0, false, makeError(ErrTxIndexUnavailable, "GetCoinAge: no transaction index configured")
	}

	postHeight := e.Params.Consensus.PoSTHeight
	isPoST := prev.Height()+1 > postHeight
	stakeMinAge := int64(e.Params.Consensus.StakeMinAge.Seconds())

	bnCentSecond := new(uint256.Uint256)
	bnCoinDay := new(uint256.Uint256)

	for _, txin := range tx.TxIn {
		coin, found := e.coinFor(txin.PreviousOutPoint)
		if !found {
			continue
		}
		if tx.Time < coin.Time {
			return 0, false, makeError(ErrTimestampViolation,
				"GetCoinAge: transaction timestamp violation")
		}

		pos, found := e.TxIndex.Find(txin.PreviousOutPoint.Hash)
		if !found {
			return 0, false, makeError(ErrIOError, "GetCoinAge: tx missing in tx index")
		}

		header, txPrev, err := e.readPriorTx(pos)
		if err != nil {
			return 0, false, err
		}
		if txPrev.TxHash() != txin.PreviousOutPoint.Hash {
			return 0, false, makeError(ErrTxMismatch, "GetCoinAge: txid mismatch")
		}

		if header.Timestamp.Unix()+stakeMinAge > tx.Time {
			continue // only count coins meeting the min-age requirement
		}

		valueIn := txPrev.TxOut[txin.PreviousOutPoint.Index].Value
		timeWeight := tx.Time - txPrev.Time

		if isPoST {
			coinDay := new(uint256.Uint256).SetUint64(uint64(valueIn))
			coinDay.MulSmall(coinDay, uint64(timeWeight))
			coinDay.DivSmall(coinDay, chaincfg.Coin)
			coinDay.DivSmall(coinDay, secondsPerDay)

			factored := e.GetStakeTimeFactoredWeight(timeWeight, int64(coinDay.Low64()), prev)

			term := new(uint256.Uint256).SetUint64(uint64(valueIn))
			term.MulSmall(term, uint64(factored))
			term.DivSmall(term, chaincfg.Coin)
			term.DivSmall(term, secondsPerDay)
			bnCoinDay.Add(bnCoinDay, term)
		} else {
			term := new(uint256.Uint256).SetUint64(uint64(valueIn))
			term.MulSmall(term, uint64(timeWeight))
			term.DivSmall(term, chaincfg.Cent)
			bnCentSecond.Add(bnCentSecond, term)
		}

		if e.config().BoolFlag("-printcoinage") {
			log.Debugf("GetCoinAge: valueIn=%d timeWeight=%d bnCentSecond=%s",
				valueIn, timeWeight, bnCentSecond)
		}
	}

	if !isPoST {
		bnCoinDay = new(uint256.Uint256).MulSmall(bnCentSecond, chaincfg.Cent)
		bnCoinDay.DivSmall(bnCoinDay, chaincfg.Coin)
		bnCoinDay.DivSmall(bnCoinDay, secondsPerDay)
	}

	if e.config().BoolFlag("-printcoinage") {
		log.Debugf("GetCoinAge: bnCoinDay=%s", bnCoinDay)
	}

	return int64(bnCoinDay.Low64()), true, nil
}

// coinFor looks up outpoint in the engine's coin view.
func (e *StakeEngine) coinFor(outpoint wire.OutPoint) (Coin, bool) {
	if e.Coins == nil {
		return Coin{}, false
	}
	return e.Coins.GetCoin(outpoint)
}

// readPriorTx resolves pos to its containing block header and the
// transaction stored past it.
func (e *StakeEngine) readPriorTx(pos DiskTxPos) (wire.BlockHeader, *wire.MsgTx, error) {
	var header wire.BlockHeader
	if e.Blocks == nil {
		return header, nil, makeError(ErrIOError, "GetCoinAge: no block file store configured")
	}

	r, err := e.Blocks.Open(pos)
	if err != nil {
		return header, nil, makeError(ErrIOError, "GetCoinAge: "+err.Error())
	}
	defer r.Close()

	if err := header.Deserialize(r); err != nil {
		return header, nil, makeError(ErrIOError, "GetCoinAge: deserialize or I/O error")
	}
	if err := r.Skip(pos.TxOffset); err != nil {
		return header, nil, makeError(ErrIOError, "GetCoinAge: deserialize or I/O error")
	}

	txPrev := new(wire.MsgTx)
	if err := txPrev.Deserialize(r); err != nil {
		return header, nil, makeError(ErrIOError, "GetCoinAge: deserialize or I/O error")
	}
	return header, txPrev, nil
}
