// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "math/bits"

// BigInt is an immutable arbitrary-precision signed integer. The zero
// value is not a valid BigInt; use Zero or one of the From* constructors.
type BigInt struct {
	sign int // -1, 0, or +1
	mag  mag // big-endian, no leading zero word; empty iff sign == 0
}

// Predefined singletons, ready before any public operation can observe
// them (package-level var initializers run before init()).
var (
	Zero   = &BigInt{sign: 0, mag: nil}
	One    = bigIntOf(1, mag{1})
	Two    = bigIntOf(1, mag{2})
	Five   = bigIntOf(1, mag{5})
	Ten    = bigIntOf(1, mag{10})
	NegOne = bigIntOf(-1, mag{1})
)

func bigIntOf(sign int, m mag) *BigInt {
	m = magTrim(m)
	if len(m) == 0 {
		return &BigInt{sign: 0, mag: nil}
	}
	if debugDecimal {
		assertNormalized(sign, m)
	}
	return &BigInt{sign: sign, mag: m}
}

// Of constructs a BigInt from an explicit sign and magnitude, validating
// and trimming per the §3 invariants.
func Of(sign int, magnitude []uint32) (*BigInt, error) {
	if sign != -1 && sign != 0 && sign != 1 {
		return nil, newError(InvalidOperation, "sign must be -1, 0, or 1")
	}
	m := magTrim(mag(magnitude))
	if len(m) == 0 {
		return Zero, nil
	}
	if sign == 0 {
		return nil, newError(InvalidOperation, "nonzero magnitude requires nonzero sign")
	}
	return bigIntOf(sign, magClone(m)), nil
}

// FromInt64 returns a BigInt equal to v.
func FromInt64(v int64) *BigInt {
	if v == 0 {
		return Zero
	}
	sign := 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-v)
	}
	return bigIntOf(sign, magFromUint64(u))
}

// FromUint64 returns a BigInt equal to v.
func FromUint64(v uint64) *BigInt {
	if v == 0 {
		return Zero
	}
	return bigIntOf(1, magFromUint64(v))
}

// FromInt32 returns a BigInt equal to v.
func FromInt32(v int32) *BigInt { return FromInt64(int64(v)) }

// FromUint32 returns a BigInt equal to v.
func FromUint32(v uint32) *BigInt { return FromUint64(uint64(v)) }

func magFromUint64(u uint64) mag {
	if u == 0 {
		return nil
	}
	if u <= 0xFFFFFFFF {
		return mag{uint32(u)}
	}
	return mag{uint32(u >> 32), uint32(u)}
}

// Parse parses s in the given radix (2..36), per §4.3.
func Parse(s string, radix int) (*BigInt, error) {
	sign, m, err := radixParse(s, radix)
	if err != nil {
		return nil, err
	}
	return bigIntOf(sign, m), nil
}

// ParseBigInt parses s in base 10.
func ParseBigInt(s string) (*BigInt, error) { return Parse(s, 10) }

// Format formats x in the given radix (2..36), per §4.3.
func (x *BigInt) Format(radix int) (string, error) {
	return radixFormat(x.sign, x.mag, radix)
}

// String implements fmt.Stringer, formatting x in base 10.
func (x *BigInt) String() string {
	s, _ := x.Format(10)
	return s
}

// Sign returns -1, 0, or +1.
func (x *BigInt) Sign() int { return x.sign }

// IsZero reports whether x is zero.
func (x *BigInt) IsZero() bool { return x.sign == 0 }

func (x *BigInt) isOdd() bool {
	return len(x.mag) > 0 && x.mag[len(x.mag)-1]&1 != 0
}

func (x *BigInt) shiftLeft1() *BigInt {
	return bigIntOf(x.sign, magShiftLeftBits(x.mag, 1))
}

// Cmp compares x and y: -1, 0, or +1.
func (x *BigInt) Cmp(y *BigInt) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	c := magCompare(x.mag, y.mag)
	if x.sign < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|: -1, 0, or +1.
func (x *BigInt) CmpAbs(y *BigInt) int {
	return magCompare(x.mag, y.mag)
}

// Equal reports whether x and y denote the same value.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// Neg returns -x.
func (x *BigInt) Neg() *BigInt {
	if x.sign == 0 {
		return Zero
	}
	return bigIntOf(-x.sign, x.mag)
}

// Abs returns |x|.
func (x *BigInt) Abs() *BigInt {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// Add returns x+y.
func (x *BigInt) Add(y *BigInt) *BigInt {
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == y.sign {
		return bigIntOf(x.sign, magAdd(x.mag, y.mag))
	}
	switch magCompare(x.mag, y.mag) {
	case 0:
		return Zero
	case 1:
		return bigIntOf(x.sign, magSub(x.mag, y.mag))
	default:
		return bigIntOf(y.sign, magSub(y.mag, x.mag))
	}
}

// Sub returns x-y.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x *BigInt) Mul(y *BigInt) *BigInt {
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	return bigIntOf(x.sign*y.sign, magMul(x.mag, y.mag))
}

// DivRem returns the quotient and remainder of x/y using truncated
// (toward-zero) division: q*y + r = x, |r| < |y|, sign(r) in {0, sign(x)}.
func (x *BigInt) DivRem(y *BigInt) (q, r *BigInt, err error) {
	if y.sign == 0 {
		return nil, nil, newError(DivideByZero, "division by zero")
	}
	if x.sign == 0 {
		return Zero, Zero, nil
	}
	qm, rm, err := magDivMod(x.mag, y.mag)
	if err != nil {
		return nil, nil, err
	}
	q = bigIntOf(x.sign*y.sign, qm)
	r = bigIntOf(x.sign, rm)
	return q, r, nil
}

// Div returns the truncated quotient of x/y.
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of x/y (sign follows x, as in Go's %).
func (x *BigInt) Rem(y *BigInt) (*BigInt, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// Power returns x**exp. exp must be >= 0.
func (x *BigInt) Power(exp int) (*BigInt, error) {
	if exp < 0 {
		return nil, newError(OutOfRange, "negative exponent")
	}
	if exp == 0 {
		return One, nil
	}
	acc := One
	base := x
	e := uint(exp)
	for e > 0 {
		if e&1 != 0 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return acc, nil
}

// ModPow returns x**exp mod m. exp must be >= 0.
func (x *BigInt) ModPow(exp int, m *BigInt) (*BigInt, error) {
	if exp < 0 {
		return nil, newError(OutOfRange, "negative exponent")
	}
	if m.sign == 0 {
		return nil, newError(DivideByZero, "modulus is zero")
	}
	acc := One
	base, err := x.Rem(m)
	if err != nil {
		return nil, err
	}
	e := uint(exp)
	for e > 0 {
		if e&1 != 0 {
			acc, err = acc.Mul(base).Rem(m)
			if err != nil {
				return nil, err
			}
		}
		base, err = base.Mul(base).Rem(m)
		if err != nil {
			return nil, err
		}
		e >>= 1
	}
	return acc, nil
}

// Gcd returns the non-negative greatest common divisor of x and y.
//
// The hybrid Euclidean/binary algorithm follows the corrected reading of
// §9's known source anomaly: GetLowestSetBit must be taken of each
// operand separately (s1 = x.lsb(), s2 = y.lsb()), not of the same
// operand twice, so that the common power-of-two factor k = min(s1, s2)
// is actually extracted before the binary GCD steps.
func (x *BigInt) Gcd(y *BigInt) *BigInt {
	a, b := x.Abs(), y.Abs()
	if a.sign == 0 {
		return b
	}
	if b.sign == 0 {
		return a
	}
	for absBitLenDiff(a, b) >= 2 {
		_, r, _ := a.DivRem(b)
		a, b = b, r.Abs()
		if b.sign == 0 {
			return a
		}
	}
	return binaryGcd(a, b)
}

func absBitLenDiff(a, b *BigInt) int {
	la, lb := magBitLen(a.mag), magBitLen(b.mag)
	if la > lb {
		return la - lb
	}
	return lb - la
}

func binaryGcd(a, b *BigInt) *BigInt {
	s1 := a.lowestSetBit()
	s2 := b.lowestSetBit()
	k := s1
	if s2 < k {
		k = s2
	}
	a = a.shiftRightBits(uint(s1))
	b = b.shiftRightBits(uint(s2))
	for {
		if a.CmpAbs(b) > 0 {
			a, b = b, a
		}
		b = b.Sub(a)
		if b.sign == 0 {
			break
		}
		b = b.shiftRightBits(uint(b.lowestSetBit()))
	}
	return a.shiftLeftBits(uint(k))
}

// lowestSetBit returns the index of the lowest set bit of |x|, or -1 for
// x == 0.
func (x *BigInt) lowestSetBit() int {
	if x.sign == 0 {
		return -1
	}
	base := 0
	for i := len(x.mag) - 1; i >= 0; i-- {
		w := x.mag[i]
		if w != 0 {
			return base + trailingZeros32(w)
		}
		base += 32
	}
	return -1
}

func trailingZeros32(w uint32) int {
	return bits.TrailingZeros32(w)
}
