// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

// Uint512 is an unsigned 512-bit integer stored as eight 64-bit words in
// little-endian word order. It exists solely as a safe intermediate for
// computations that multiply a Uint256 by a small integer and might
// transiently exceed 256 bits before the final divide brings the result
// back into range — the difficulty retargeter's exponential moving average
// is the case that matters here (see blockchain.NextTarget).
type Uint512 struct {
	w [8]uint64
}

// FromUint256 returns a Uint512 holding the value of a.
func FromUint256(a *Uint256) *Uint512 {
	v := new(Uint512)
	copy(v.w[:4], a.w[:])
	return v
}

// MulSmall sets v = a * n for a uint64 multiplier n and returns v. Because
// v has twice the width of a Uint256, this cannot overflow for any Uint256
// a and any uint64 n.
func (v *Uint512) MulSmall(a *Uint512, n uint64) *Uint512 {
	var res [8]uint64
	var carry uint64
	for i := 0; i < 8; i++ {
		hi, lo := mul64(a.w[i], n)
		lo, c := add64(lo, carry)
		hi += c
		res[i] = lo
		carry = hi
	}
	v.w = res
	return v
}

// DivSmall sets v = a / n for a uint64 divisor n (n != 0) and returns v.
func (v *Uint512) DivSmall(a *Uint512, n uint64) *Uint512 {
	if n == 0 {
		v.w = [8]uint64{}
		return v
	}
	var res [8]uint64
	var rem uint64
	for i := 7; i >= 0; i-- {
		q, r := div128by64(rem, a.w[i], n)
		res[i] = q
		rem = r
	}
	v.w = res
	return v
}

// Lsh sets v = a << n and returns v.
func (v *Uint512) Lsh(a *Uint512, n uint) *Uint512 {
	if n >= 512 {
		v.w = [8]uint64{}
		return v
	}
	wordShift := n / 64
	bitShift := n % 64
	var res [8]uint64
	for i := 7; i >= 0; i-- {
		idx := i - int(wordShift)
		if idx < 0 {
			continue
		}
		val := a.w[idx] << bitShift
		if bitShift != 0 && idx-1 >= 0 {
			val |= a.w[idx-1] >> (64 - bitShift)
		}
		res[i] = val
	}
	v.w = res
	return v
}

// Rsh sets v = a >> n and returns v.
func (v *Uint512) Rsh(a *Uint512, n uint) *Uint512 {
	if n >= 512 {
		v.w = [8]uint64{}
		return v
	}
	wordShift := n / 64
	bitShift := n % 64
	var res [8]uint64
	for i := 0; i < 8; i++ {
		idx := i + int(wordShift)
		if idx > 7 {
			continue
		}
		val := a.w[idx] >> bitShift
		if bitShift != 0 && idx+1 <= 7 {
			val |= a.w[idx+1] << (64 - bitShift)
		}
		res[i] = val
	}
	v.w = res
	return v
}

// Add sets v = a + b and returns v.
func (v *Uint512) Add(a, b *Uint512) *Uint512 {
	var res [8]uint64
	var carry uint64
	for i := 0; i < 8; i++ {
		sum, c1 := add64(a.w[i], b.w[i])
		sum, c2 := add64(sum, carry)
		res[i] = sum
		carry = c1 + c2
	}
	v.w = res
	return v
}

// IsZero reports whether v is zero.
func (v *Uint512) IsZero() bool {
	for _, word := range v.w {
		if word != 0 {
			return false
		}
	}
	return true
}

// Sign returns 0 if v is zero and 1 otherwise. Uint512 has no sign bit, so
// Sign never reports a negative value; callers that need a sign must track
// it alongside the magnitude themselves.
func (v *Uint512) Sign() int {
	if v.IsZero() {
		return 0
	}
	return 1
}

// ToUint256 truncates v to its low 256 bits. Truncation is only valid once
// the caller has confirmed the magnitude fits, which the difficulty
// retargeter does by checking Overflows256 first.
func (v *Uint512) ToUint256() *Uint256 {
	out := new(Uint256)
	copy(out.w[:], v.w[:4])
	return out
}

// Overflows256 reports whether v holds a value that does not fit in 256
// bits (i.e. any of its high four words is nonzero).
func (v *Uint512) Overflows256() bool {
	return v.w[4] != 0 || v.w[5] != 0 || v.w[6] != 0 || v.w[7] != 0
}
