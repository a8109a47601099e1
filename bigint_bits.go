// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math/bits"

// wordLE returns the i-th little-endian word of m (0 = least significant),
// or 0 beyond the end of m.
func wordLE(m mag, i int) uint32 {
	idx := len(m) - 1 - i
	if idx < 0 || idx >= len(m) {
		return 0
	}
	return m[idx]
}

// tcNegate is the involution that converts between a magnitude and its
// two's-complement encoding (little-endian) whenever the value is
// negative: words before the first nonzero word are left at zero, the
// first nonzero word is negated, and every word above it is
// bitwise-complemented ("flip after first one from LSB").
func tcNegate(words []uint32) []uint32 {
	out := make([]uint32, len(words))
	seen := false
	for i, w := range words {
		switch {
		case seen:
			out[i] = ^w
		case w != 0:
			out[i] = -w
			seen = true
		default:
			out[i] = 0
		}
	}
	return out
}

// twosComplementArray returns the n-word little-endian two's-complement
// encoding of x (n must be large enough to hold x's magnitude plus at
// least one guard/sign word).
func (x *BigInt) twosComplementArray(n int) []uint32 {
	padded := make([]uint32, n)
	for i := 0; i < n; i++ {
		padded[i] = wordLE(x.mag, i)
	}
	if x.sign >= 0 {
		return padded
	}
	return tcNegate(padded)
}

// twosComplementWordAt returns the i-th little-endian word of x's
// (infinite) two's-complement representation.
func (x *BigInt) twosComplementWordAt(i int) uint32 {
	if x.sign >= 0 {
		return wordLE(x.mag, i)
	}
	fsb := x.lowestSetBit()
	wordIdx := fsb / 32
	w := wordLE(x.mag, i)
	switch {
	case i < wordIdx:
		return 0
	case i == wordIdx:
		return -w
	default:
		return ^w
	}
}

// bigIntFromTwosComplement builds a BigInt from its little-endian two's
// complement encoding, inferring the sign from the guard word (expected
// to be either 0 or all-ones).
func bigIntFromTwosComplement(words []uint32) *BigInt {
	negative := len(words) > 0 && words[len(words)-1] == 0xFFFFFFFF
	if negative {
		words = tcNegate(words)
	}
	be := make(mag, len(words))
	for i, w := range words {
		be[len(words)-1-i] = w
	}
	be = magTrim(be)
	if len(be) == 0 {
		return Zero
	}
	if negative {
		return bigIntOf(-1, be)
	}
	return bigIntOf(1, be)
}

func bitwiseCombine(x, y *BigInt, combine func(a, b uint32) uint32) *BigInt {
	n := len(x.mag)
	if len(y.mag) > n {
		n = len(y.mag)
	}
	n++
	xw := x.twosComplementArray(n)
	yw := y.twosComplementArray(n)
	out := make([]uint32, n)
	for i := range out {
		out[i] = combine(xw[i], yw[i])
	}
	return bigIntFromTwosComplement(out)
}

// And returns x & y (two's-complement semantics).
func (x *BigInt) And(y *BigInt) *BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a & b })
}

// Or returns x | y.
func (x *BigInt) Or(y *BigInt) *BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a | b })
}

// Xor returns x ^ y.
func (x *BigInt) Xor(y *BigInt) *BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x & ^y.
func (x *BigInt) AndNot(y *BigInt) *BigInt {
	return bitwiseCombine(x, y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns ^x, i.e. -(x+1).
func (x *BigInt) Not() *BigInt {
	n := len(x.mag) + 1
	xw := x.twosComplementArray(n)
	out := make([]uint32, n)
	for i := range out {
		out[i] = ^xw[i]
	}
	return bigIntFromTwosComplement(out)
}

// TestBit reports whether bit n (0 = least significant) of x's two's
// complement representation is set. n must be >= 0.
func (x *BigInt) TestBit(n int) (bool, error) {
	if n < 0 {
		return false, newError(Arithmetic, "negative bit index")
	}
	w := x.twosComplementWordAt(n / 32)
	return (w>>(uint(n)%32))&1 == 1, nil
}

func (x *BigInt) bitMutate(n int, apply func(w uint32, bit uint) uint32) (*BigInt, error) {
	if n < 0 {
		return nil, newError(Arithmetic, "negative bit index")
	}
	wordIdx := n / 32
	length := wordIdx + 2
	if l := len(x.mag) + 1; l > length {
		length = l
	}
	words := x.twosComplementArray(length)
	words[wordIdx] = apply(words[wordIdx], uint(n)%32)
	return bigIntFromTwosComplement(words), nil
}

// SetBit returns x with bit n set. n must be >= 0.
func (x *BigInt) SetBit(n int) (*BigInt, error) {
	return x.bitMutate(n, func(w uint32, bit uint) uint32 { return w | (1 << bit) })
}

// ClearBit returns x with bit n cleared. n must be >= 0.
func (x *BigInt) ClearBit(n int) (*BigInt, error) {
	return x.bitMutate(n, func(w uint32, bit uint) uint32 { return w &^ (1 << bit) })
}

// FlipBit returns x with bit n flipped. n must be >= 0.
func (x *BigInt) FlipBit(n int) (*BigInt, error) {
	return x.bitMutate(n, func(w uint32, bit uint) uint32 { return w ^ (1 << bit) })
}

func popcountMag(m mag) int {
	n := 0
	for _, w := range m {
		n += popcount32(w)
	}
	return n
}

func popcount32(w uint32) int {
	return bits.OnesCount32(w)
}

// BitLength returns the number of bits in the minimal two's complement
// representation of x, excluding the sign bit (for x > 0, the bit length
// of its magnitude; 0 for x == 0). For negative powers of two, the
// result is one less than for the corresponding positive value.
func (x *BigInt) BitLength() int {
	if x.sign == 0 {
		return 0
	}
	bl := magBitLen(x.mag)
	if x.sign < 0 && isPow2Mag(x.mag) {
		return bl - 1
	}
	return bl
}

// BitCount returns the population count of x's two's complement
// representation.
func (x *BigInt) BitCount() int {
	if x.sign >= 0 {
		return popcountMag(x.mag)
	}
	return popcountMag(x.mag) + x.lowestSetBit() - 1
}

// shiftLeftBits returns |x|<<s with x's sign, used internally by Gcd.
func (x *BigInt) shiftLeftBits(s uint) *BigInt {
	return bigIntOf(x.sign, magShiftLeftBits(x.mag, s))
}

// shiftRightBits returns |x|>>s (logical, unsigned) with x's sign, used
// internally by Gcd.
func (x *BigInt) shiftRightBits(s uint) *BigInt {
	return bigIntOf(x.sign, magShiftRightBits(x.mag, s))
}

// LeftShift returns x<<n. A negative n delegates to RightShift(-n).
func (x *BigInt) LeftShift(n int) *BigInt {
	if n < 0 {
		return x.RightShift(-n)
	}
	if n == 0 || x.sign == 0 {
		return x
	}
	return bigIntOf(x.sign, magShiftLeftBits(x.mag, uint(n)))
}

// RightShift returns x>>n with sign-preserving (arithmetic) semantics: a
// negative x shifted by n >= its bit length yields -1. A negative n
// delegates to LeftShift(-n).
func (x *BigInt) RightShift(n int) *BigInt {
	if n < 0 {
		return x.LeftShift(-n)
	}
	if n == 0 || x.sign == 0 {
		return x
	}
	if x.sign > 0 {
		return bigIntOf(1, magShiftRightBits(x.mag, uint(n)))
	}
	// Arithmetic right shift of a negative value: convert to two's
	// complement, shift (sign-extending with 1s), convert back.
	bl := magBitLen(x.mag) + 1
	length := (bl+31)/32 + 1
	words := x.twosComplementArray(length)
	shifted := shiftWordsRight(words, uint(n))
	return bigIntFromTwosComplement(shifted)
}

// shiftWordsRight performs an arithmetic (sign-extending) right shift of
// the little-endian two's-complement word array words by s bits.
func shiftWordsRight(words []uint32, s uint) []uint32 {
	signWord := uint32(0)
	if len(words) > 0 && words[len(words)-1]&0x80000000 != 0 {
		signWord = 0xFFFFFFFF
	}
	wordShift := int(s / 32)
	bitShift := s % 32
	out := make([]uint32, len(words))
	for i := range out {
		srcIdx := i + wordShift
		lo := wordAt(words, srcIdx, signWord)
		if bitShift == 0 {
			out[i] = lo
			continue
		}
		hi := wordAt(words, srcIdx+1, signWord)
		out[i] = (lo >> bitShift) | (hi << (32 - bitShift))
	}
	return out
}

func wordAt(words []uint32, i int, signWord uint32) uint32 {
	if i < 0 || i >= len(words) {
		return signWord
	}
	return words[i]
}
