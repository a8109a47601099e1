// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math/bits"

// mag is an unsigned magnitude stored as a big-endian sequence of 32-bit
// words: mag[0] is the most significant word. A normalized mag never has a
// leading zero word; the normalized representation of 0 is the empty (or
// nil) slice.
type mag []uint32

// magTrim drops leading zero words, returning a normalized slice that
// shares storage with x.
func magTrim(x mag) mag {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	return x[i:]
}

func magIsZero(x mag) bool { return len(x) == 0 }

// magClone returns a fresh copy of x.
func magClone(x mag) mag {
	if len(x) == 0 {
		return nil
	}
	z := make(mag, len(x))
	copy(z, x)
	return z
}

// magCompare compares x and y as unsigned magnitudes: -1, 0, or +1.
func magCompare(x, y mag) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := range x {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magAdd returns x+y.
func magAdd(x, y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(mag, len(x)+1)
	var carry uint64
	i, j := len(x)-1, len(y)-1
	k := len(z) - 1
	for j >= 0 {
		s := uint64(x[i]) + uint64(y[j]) + carry
		z[k] = uint32(s)
		carry = s >> 32
		i--
		j--
		k--
	}
	for i >= 0 {
		s := uint64(x[i]) + carry
		z[k] = uint32(s)
		carry = s >> 32
		i--
		k--
	}
	z[0] = uint32(carry)
	return magTrim(z)
}

// magSub returns x-y. The caller guarantees x >= y.
func magSub(x, y mag) mag {
	z := make(mag, len(x))
	var borrow int64
	i, j := len(x)-1, len(y)-1
	k := len(z) - 1
	for j >= 0 {
		d := int64(x[i]) - int64(y[j]) - borrow
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		z[k] = uint32(d)
		i--
		j--
		k--
	}
	for i >= 0 {
		d := int64(x[i]) - borrow
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		z[k] = uint32(d)
		i--
		k--
	}
	return magTrim(z)
}

// magMul returns x*y using the classical schoolbook algorithm.
func magMul(x, y mag) mag {
	if magIsZero(x) || magIsZero(y) {
		return nil
	}
	z := make(mag, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		xi := uint64(x[i])
		zk := i + len(y) + 1
		for j := len(y) - 1; j >= 0; j-- {
			zk--
			prod := xi*uint64(y[j]) + uint64(z[zk]) + carry
			z[zk] = uint32(prod)
			carry = prod >> 32
		}
		z[zk-1] += uint32(carry)
	}
	return magTrim(z)
}

// magMulAddDigit multiplies data in place by mult and adds addend at the
// least-significant end, propagating the carry leftward. data must be big
// enough to hold the result without further growth.
func magMulAddDigit(data mag, mult, addend uint32) {
	var carry uint64 = uint64(addend)
	for i := len(data) - 1; i >= 0; i-- {
		p := uint64(data[i])*uint64(mult) + carry
		data[i] = uint32(p)
		carry = p >> 32
	}
	// any further carry is a caller sizing bug; silently dropped is wrong,
	// but per §4.1 the caller sizes data to accommodate.
}

// magDivRemDigit divides data in place by divisor (a single 32-bit digit)
// and returns the remainder. Used by radix formatting and precision
// counting.
func magDivRemDigit(data mag, divisor uint32) uint32 {
	var rem uint64
	d := uint64(divisor)
	for i := range data {
		cur := rem<<32 | uint64(data[i])
		data[i] = uint32(cur / d)
		rem = cur % d
	}
	return uint32(rem)
}

// magBitLen returns the number of bits needed to represent x, 0 for x == 0.
func magBitLen(x mag) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[0])
}

// magLeadingZeros returns the count of leading zero bits in w (0 <= n <= 32).
func magLeadingZeros(w uint32) int {
	return bits.LeadingZeros32(w)
}

// magShiftLeftBits returns x<<s for 0 <= s, s arbitrary.
func magShiftLeftBits(x mag, s uint) mag {
	if magIsZero(x) || s == 0 {
		return magClone(x)
	}
	wordShift := int(s / 32)
	bitShift := uint(s % 32)
	n := len(x) + wordShift
	if bitShift != 0 {
		n++
	}
	z := make(mag, n)
	if bitShift == 0 {
		copy(z[:len(x)], x)
		return magTrim(z)
	}
	var carry uint32
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]
		z[i+1] = (v << bitShift) | carry
		carry = v >> (32 - bitShift)
	}
	z[0] = carry
	return magTrim(z)
}

// magShiftRightBits returns x>>s (unsigned, logical shift).
func magShiftRightBits(x mag, s uint) mag {
	if magIsZero(x) {
		return nil
	}
	wordShift := int(s / 32)
	bitShift := uint(s % 32)
	if wordShift >= len(x) {
		return nil
	}
	src := x[:len(x)-wordShift]
	if bitShift == 0 {
		return magClone(src)
	}
	z := make(mag, len(src))
	var carry uint32
	for i := 0; i < len(src); i++ {
		v := src[i]
		z[i] = (v >> bitShift) | carry
		carry = v << (32 - bitShift)
	}
	return magTrim(z)
}

// magNormalize writes src left-shifted by shift bits into dst. If
// len(dst) == len(src), any bit shifted off the top is an internal
// invariant breach. If len(dst) == len(src)+1, the spillover digit goes
// into dst[0].
func magNormalize(dst, src mag, shift uint) {
	if shift == 0 {
		copy(dst[len(dst)-len(src):], src)
		for i := 0; i < len(dst)-len(src); i++ {
			dst[i] = 0
		}
		return
	}
	spill := len(dst) - len(src)
	var carry uint32
	for i := len(src) - 1; i >= 0; i-- {
		v := src[i]
		dst[i+spill] = (v << shift) | carry
		carry = v >> (32 - shift)
	}
	if spill == 1 {
		dst[0] = carry
	} else if carry != 0 {
		panic(newError(InvalidOperation, "magNormalize: shift overflowed same-length destination"))
	}
}

// magDivMod implements Knuth Algorithm D (TAOCP vol.2 §4.3.1) plus the
// short-division and trivial-case fast paths from §4.1.
func magDivMod(x, y mag) (q, r mag, err error) {
	if magIsZero(y) {
		return nil, nil, newError(DivideByZero, "division by zero")
	}
	if magIsZero(x) {
		return nil, nil, nil
	}
	switch magCompare(x, y) {
	case 0:
		return mag{1}, nil, nil
	case -1:
		return nil, magClone(x), nil
	}
	if len(y) == 1 {
		q = magClone(x)
		rem := magDivRemDigit(q, y[0])
		q = magTrim(q)
		if rem == 0 {
			return q, nil, nil
		}
		return q, mag{rem}, nil
	}

	shift := uint(magLeadingZeros(y[0]))
	n := len(y)
	m := len(x) - n

	yNorm := make(mag, n)
	magNormalize(yNorm, y, shift)

	xNorm := make(mag, len(x)+1)
	magNormalize(xNorm, x, shift)

	qWords := make(mag, m+1)
	base := uint64(1) << 32

	for j := 0; j <= m; j++ {
		// three-digit window at xNorm[j:j+3] (relative to the (m+n+1)-word
		// normalized dividend where xNorm[0] is the extra high digit).
		hi := uint64(xNorm[j])
		mid := uint64(xNorm[j+1])
		lo := uint64(0)
		if j+2 < len(xNorm) {
			lo = uint64(xNorm[j+2])
		}
		num := hi*base + mid
		yh := uint64(yNorm[0])
		qhat := num / yh
		rhat := num % yh
		if qhat >= base {
			qhat = base - 1
			rhat = num - qhat*yh
		}
		y1 := uint64(0)
		if n > 1 {
			y1 = uint64(yNorm[1])
		}
		for rhat < base && qhat*y1 > rhat*base+lo {
			qhat--
			rhat += yh
		}

		// multiply and subtract: window = xNorm[j:j+n+1] -= qhat*yNorm
		var borrow int64
		var carry uint64
		winStart := j
		for i := n - 1; i >= 0; i-- {
			p := qhat*uint64(yNorm[i]) + carry
			carry = p >> 32
			sub := int64(xNorm[winStart+i+1]) - int64(uint32(p)) - borrow
			if sub < 0 {
				sub += 1 << 32
				borrow = 1
			} else {
				borrow = 0
			}
			xNorm[winStart+i+1] = uint32(sub)
		}
		sub := int64(xNorm[winStart]) - int64(carry) - borrow
		if sub < 0 {
			sub += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		xNorm[winStart] = uint32(sub)

		if borrow != 0 {
			// qhat was one too large; add back one yNorm and decrement.
			qhat--
			var c uint64
			for i := n - 1; i >= 0; i-- {
				s := uint64(xNorm[winStart+i+1]) + uint64(yNorm[i]) + c
				xNorm[winStart+i+1] = uint32(s)
				c = s >> 32
			}
			xNorm[winStart] = uint32(uint64(xNorm[winStart]) + c)
		}
		qWords[j] = uint32(qhat)
	}

	q = magTrim(qWords)
	rNorm := xNorm[len(xNorm)-n:]
	r = magShiftRightBits(magTrim(append(mag(nil), rNorm...)), shift)
	return q, r, nil
}
