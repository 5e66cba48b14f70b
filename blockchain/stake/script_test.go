// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "testing"

func compressedPubKeyScript(prefix byte) []byte {
	script := make([]byte, 35)
	script[0] = opData33
	script[1] = prefix
	script[34] = opCheckSig
	return script
}

func uncompressedPubKeyScript() []byte {
	script := make([]byte, 67)
	script[0] = opData65
	script[1] = 0x04
	script[66] = opCheckSig
	return script
}

func TestExtractCompressedPubKey(t *testing.T) {
	for _, prefix := range []byte{0x02, 0x03} {
		script := compressedPubKeyScript(prefix)
		pubKey := ExtractCompressedPubKey(script)
		if len(pubKey) != 33 {
			t.Fatalf("ExtractCompressedPubKey with prefix %x: got %d bytes, want 33", prefix, len(pubKey))
		}
	}

	if ExtractCompressedPubKey(uncompressedPubKeyScript()) != nil {
		t.Fatalf("ExtractCompressedPubKey should reject an uncompressed-key script")
	}
}

func TestExtractUncompressedPubKey(t *testing.T) {
	script := uncompressedPubKeyScript()
	pubKey := ExtractUncompressedPubKey(script)
	if len(pubKey) != 65 {
		t.Fatalf("ExtractUncompressedPubKey: got %d bytes, want 65", len(pubKey))
	}

	if ExtractUncompressedPubKey(compressedPubKeyScript(0x02)) != nil {
		t.Fatalf("ExtractUncompressedPubKey should reject a compressed-key script")
	}
}

func TestIsPubKeyScript(t *testing.T) {
	if !IsPubKeyScript(compressedPubKeyScript(0x02)) {
		t.Fatalf("a well-formed compressed-pubkey script should be recognized")
	}
	if !IsPubKeyScript(uncompressedPubKeyScript()) {
		t.Fatalf("a well-formed uncompressed-pubkey script should be recognized")
	}
	if IsPubKeyScript([]byte{0x76, 0xa9}) {
		t.Fatalf("an unrelated short script should not be recognized")
	}
}

func TestDefaultScriptSolver(t *testing.T) {
	solver := defaultScriptSolver{}

	scriptType, data := solver.Solve(compressedPubKeyScript(0x03))
	if scriptType != ScriptTypePubKey || len(data) != 1 || len(data[0]) != 33 {
		t.Fatalf("Solve on a pubkey script = (%v, %v), want (ScriptTypePubKey, [33-byte key])", scriptType, data)
	}

	scriptType, data = solver.Solve([]byte{0x00})
	if scriptType != ScriptTypeNonStandard || data != nil {
		t.Fatalf("Solve on garbage = (%v, %v), want (ScriptTypeNonStandard, nil)", scriptType, data)
	}
}
