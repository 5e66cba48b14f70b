// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestCompactRoundTrip mirrors the compact-encoding round trip from the
// teacher's blockchain/standalone example tests: block 1's well-known
// mainnet bits value decodes to a specific target and re-encodes to the
// same bits.
func TestCompactRoundTrip(t *testing.T) {
	const bits = uint32(453115903)
	want := "000000000001ffff000000000000000000000000000000000000000000000000"[:64]

	target := new(Uint256).SetCompact(bits)
	got := target.String()
	// String() returns 32 bytes of hex (64 chars) without zero-padding
	// assumptions beyond the fixed width, so compare against the trailing
	// 64 hex chars of the historical value.
	if len(got) != 64 {
		t.Fatalf("unexpected hex length: got %d want 64 (%s)", len(got), got)
	}
	if got != want {
		t.Fatalf("CompactToBig mismatch:\n got  %s\n want %s", got, want)
	}

	gotBits := target.Compact()
	if gotBits != bits {
		t.Fatalf("BigToCompact mismatch: got %d want %d", gotBits, bits)
	}
}

func TestCompactNegativeAndZero(t *testing.T) {
	cases := []uint32{
		0x00800000, // negative zero: sign bit set, zero mantissa
		0x01800001, // sign bit set, nonzero mantissa -> treated as zero
		0x00000000, // plain zero
	}
	for _, c := range cases {
		got := new(Uint256).SetCompact(c)
		if !got.IsZero() {
			t.Fatalf("SetCompact(%#x) = %s, want zero", c, got)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := NewUint256(1)
	b := new(Uint256).Lsh(NewUint256(1), 200)
	sum := new(Uint256).Add(a, b)
	back := new(Uint256).Sub(sum, b)
	if back.Cmp(a) != 0 {
		t.Fatalf("Add/Sub round trip failed:\n got  %s\n want %s", spew.Sdump(back), spew.Sdump(a))
	}
}

func TestMulDivSmall(t *testing.T) {
	a := NewUint256(1000)
	prod := new(Uint256).MulSmall(a, 7)
	if prod.Cmp(NewUint256(7000)) != 0 {
		t.Fatalf("MulSmall = %s, want 7000", prod)
	}
	quot := new(Uint256).DivSmall(prod, 7)
	if quot.Cmp(a) != 0 {
		t.Fatalf("DivSmall = %s, want %s", quot, a)
	}
}

func TestShifts(t *testing.T) {
	a := NewUint256(1)
	shifted := new(Uint256).Lsh(a, 255)
	back := new(Uint256).Rsh(shifted, 255)
	if back.Cmp(a) != 0 {
		t.Fatalf("Lsh/Rsh round trip failed: got %s want %s", back, a)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	a := new(Uint256).Lsh(NewUint256(1), 128)
	b := new(Uint256).SetBytes(a.Bytes())
	if a.Cmp(b) != 0 {
		t.Fatalf("Bytes round trip failed: got %s want %s", b, a)
	}
}

func TestCmp(t *testing.T) {
	small := NewUint256(1)
	big := new(Uint256).Lsh(NewUint256(1), 64)
	if small.Cmp(big) != -1 {
		t.Fatalf("expected small < big")
	}
	if big.Cmp(small) != 1 {
		t.Fatalf("expected big > small")
	}
	if small.Cmp(small) != 0 {
		t.Fatalf("expected equality")
	}
}

func TestUint512MulDivRoundTrip(t *testing.T) {
	a := FromUint256(NewUint256(1 << 40))
	prod := new(Uint512).MulSmall(a, 1<<40)
	back := new(Uint512).DivSmall(prod, 1<<40)
	if back.ToUint256().Cmp(NewUint256(1<<40)) != 0 {
		t.Fatalf("Uint512 Mul/Div round trip failed")
	}
}

func TestUint512OverflowsWideIntermediate(t *testing.T) {
	// A 256-bit maximum-ish value multiplied by a small integer transiently
	// exceeds 256 bits; Uint512 must hold it without wrapping.
	nearMax := new(Uint256).Lsh(NewUint256(1), 255)
	wide := new(Uint512).MulSmall(FromUint256(nearMax), 4)
	if !wide.Overflows256() {
		t.Fatalf("expected product to overflow 256 bits:\n%s", spew.Sdump(wide))
	}
}
