// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"bytes"

	"github.com/duochain/duocore/chaincfg/chainhash"
	"github.com/duochain/duocore/wire"
)

// stakingOutputPubKey resolves block's staking output — vtx[1].vout[1] for
// a proof-of-stake block, vtx[0].vout[0] for a proof-of-work block, per
// wire.MsgBlock.StakingOutput — down to the single recognized pubkey its
// script encodes. It fails if the output is missing or the script isn't a
// standard bare-pubkey script, the only type SignBlock and
// CheckBlockSignature ever need to recognize.
func stakingOutputPubKey(block *wire.MsgBlock, solver ScriptSolver) ([]byte, bool) {
	out, ok := block.StakingOutput()
	if !ok {
		return nil, false
	}
	scriptType, data := solver.Solve(out.PkScript)
	if scriptType != ScriptTypePubKey || len(data) == 0 {
		return nil, false
	}
	return data[0], true
}

// SignBlock signs block's hash with the private key controlling its
// staking output's pubkey, resolved through e's KeyStore, and stores the
// resulting signature on block.Signature. It fails if the staking output
// isn't a bare-pubkey script, no key is available for that pubkey, or the
// key's own public key doesn't match (mirroring the original source's
// redundant-but-cheap CPubKey equality check before trusting the key).
//
// SignBlock is not meaningful for the genesis block, which carries no
// staking output to sign against; callers should not call it there.
func (e *StakeEngine) SignBlock(block *wire.MsgBlock) error {
	pubKey, ok := stakingOutputPubKey(block, e.solver())
	if !ok {
		return makeError(ErrSignatureFailure, "SignBlock: staking output is not a bare-pubkey script")
	}

	if e.Keys == nil {
		return makeError(ErrSignatureFailure, "SignBlock: no key store configured")
	}
	key, found := e.Keys.GetKey(pubKey)
	if !found {
		return makeError(ErrSignatureFailure, "SignBlock: no key for staking output")
	}
	if !bytes.Equal(key.PublicKey(), pubKey) {
		return makeError(ErrSignatureFailure, "SignBlock: key does not match staking output")
	}

	sig, err := key.Sign(block.BlockHash())
	if err != nil {
		return makeError(ErrSignatureFailure, "SignBlock: "+err.Error())
	}
	block.Signature = sig
	return nil
}

// CheckBlockSignature reports whether block carries a valid signature over
// its own hash by the key controlling its staking output's pubkey. The
// genesis block is a special case: it carries no staking output, and is
// valid exactly when its signature is empty.
func CheckBlockSignature(block *wire.MsgBlock, genesisHash chainhash.Hash, solver ScriptSolver) bool {
	hash := block.BlockHash()
	if hash == genesisHash {
		return len(block.Signature) == 0
	}

	if len(block.Signature) == 0 {
		return false
	}

	pubKey, ok := stakingOutputPubKey(block, solver)
	if !ok {
		return false
	}

	return verifyBlockSignature(pubKey, hash, block.Signature)
}

// CheckBlockSignature is the engine-bound form, using e's own params and
// script solver.
func (e *StakeEngine) CheckBlockSignature(block *wire.MsgBlock) bool {
	return CheckBlockSignature(block, e.Params.GenesisHash, e.solver())
}

// CheckCoinStakeTimestamp reports whether a coinstake transaction's
// timestamp meets the v0.3 protocol rule: the block's own timestamp must
// equal the coinstake transaction's timestamp, exactly.
func CheckCoinStakeTimestamp(blockTime, txTime int64) bool {
	return blockTime == txTime
}
