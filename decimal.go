// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// BigDecimal is an immutable arbitrary-precision decimal: coefficient ×
// 10^exponent. The zero value is not valid; use DecimalZero or one of the
// DecimalFrom*/ParseDecimal constructors.
type BigDecimal struct {
	coeff *BigInt
	exp   int32
	prec  atomic.Uint32 // cached decimal digit count of coeff; 0 = uncomputed
}

// DecimalZero, DecimalOne, and DecimalTen are ready before any public
// operation can observe them.
var (
	DecimalZero = newBigDecimalRaw(Zero, 0)
	DecimalOne  = newBigDecimalRaw(One, 0)
	DecimalTen  = newBigDecimalRaw(One, 1)
)

func newBigDecimalRaw(coeff *BigInt, exp int32) *BigDecimal {
	return &BigDecimal{coeff: coeff, exp: exp}
}

// NewBigDecimal constructs coefficient × 10^exponent.
func NewBigDecimal(coeff *BigInt, exponent int32) *BigDecimal {
	return newBigDecimalRaw(coeff, exponent)
}

// DecimalFromInt64 returns v × 10^0.
func DecimalFromInt64(v int64) *BigDecimal { return newBigDecimalRaw(FromInt64(v), 0) }

// DecimalFromBigInt returns v × 10^0.
func DecimalFromBigInt(v *BigInt) *BigDecimal { return newBigDecimalRaw(v, 0) }

// DecimalFromFloat64 decomposes v exactly: the coefficient is the exact
// dyadic numerator and the exponent may be very negative (possibly a long
// decimal expansion), per §6.
func DecimalFromFloat64(v float64) (*BigDecimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, newError(Overflow, "cannot convert NaN or infinite value")
	}
	if v == 0 {
		return DecimalZero, nil
	}
	sign := 1
	if math.Signbit(v) {
		sign = -1
	}
	bits := math.Float64bits(v)
	biasedExp := int((bits >> 52) & 0x7FF)
	significand := bits & 0xFFFFFFFFFFFFF
	binExp := biasedExp - 1075
	if biasedExp != 0 {
		significand |= 1 << 52
	} else {
		binExp = -1074 // subnormal: no implicit bit, minimum exponent
	}
	// Cancel factors of two against the binary exponent so the decimal
	// coefficient carries no trailing zeros (0.5 becomes 5E-1).
	for binExp < 0 && significand&1 == 0 {
		significand >>= 1
		binExp++
	}
	coeff := bigIntOf(sign, magFromUint64(significand))
	if binExp >= 0 {
		two, err := Two.Power(binExp)
		if err != nil {
			return nil, err
		}
		return newBigDecimalRaw(coeff.Mul(two), 0), nil
	}
	// coeff * 2^binExp == coeff * 5^(-binExp) * 10^binExp
	five, err := Five.Power(-binExp)
	if err != nil {
		return nil, err
	}
	expVal, err := exponentCheck(int64(binExp), coeff.IsZero())
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(coeff.Mul(five), expVal), nil
}

// Coefficient returns v's signed unscaled value.
func (v *BigDecimal) Coefficient() *BigInt { return v.coeff }

// Exponent returns v's exponent.
func (v *BigDecimal) Exponent() int32 { return v.exp }

// Sign returns -1, 0, or +1.
func (v *BigDecimal) Sign() int { return v.coeff.sign }

// IsZero reports whether v is zero.
func (v *BigDecimal) IsZero() bool { return v.coeff.sign == 0 }

// Precision returns the cached (or newly computed) decimal digit count of
// v's coefficient; 1 for a zero coefficient.
func (v *BigDecimal) Precision() int {
	if p := v.prec.Load(); p != 0 {
		return int(p)
	}
	p := v.coeff.Precision()
	v.prec.Store(uint32(p))
	return p
}

// Neg returns -v.
func (v *BigDecimal) Neg() *BigDecimal { return newBigDecimalRaw(v.coeff.Neg(), v.exp) }

// Abs returns |v|.
func (v *BigDecimal) Abs() *BigDecimal { return newBigDecimalRaw(v.coeff.Abs(), v.exp) }

// Equal reports whether v and w have the same coefficient and exponent
// (so 1.0 != 1.00).
func (v *BigDecimal) Equal(w *BigDecimal) bool {
	return v.exp == w.exp && v.coeff.Equal(w.coeff)
}

func pow10(n int) (*BigInt, error) { return Ten.Power(n) }

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// exponentCheck narrows candidate to i32, failing Overflow if that would
// change the value, except when the coefficient is zero, in which case
// the exponent clamps to the bound matching candidate's sign.
func exponentCheck(candidate int64, coeffIsZero bool) (int32, error) {
	if candidate >= math.MinInt32 && candidate <= math.MaxInt32 {
		return int32(candidate), nil
	}
	if coeffIsZero {
		return clampInt32(candidate), nil
	}
	return 0, newError(Overflow, "exponent narrowing would change the value")
}

func ceilDiv(n, d int64) int64 { return (n + d - 1) / d }

// alignCoefficients promotes the operand with the larger exponent so both
// share the smaller (min) exponent.
func alignCoefficients(a, b *BigDecimal) (ca, cb *BigInt, exp int32, err error) {
	if a.exp == b.exp {
		return a.coeff, b.coeff, a.exp, nil
	}
	if a.exp < b.exp {
		p, err := pow10(int(int64(b.exp) - int64(a.exp)))
		if err != nil {
			return nil, nil, 0, err
		}
		return a.coeff, b.coeff.Mul(p), a.exp, nil
	}
	p, err := pow10(int(int64(a.exp) - int64(b.exp)))
	if err != nil {
		return nil, nil, 0, err
	}
	return a.coeff.Mul(p), b.coeff, b.exp, nil
}

// Cmp compares v and w after exponent alignment: -1, 0, or +1.
func (v *BigDecimal) Cmp(w *BigDecimal) int {
	ca, cb, _, err := alignCoefficients(v, w)
	if err != nil {
		// Only an exponent-range overflow on a nonzero coefficient can
		// reach here; fall back to a sign/exponent comparison, which is
		// still correct since such magnitudes differ wildly.
		if v.coeff.sign != w.coeff.sign {
			if v.coeff.sign < w.coeff.sign {
				return -1
			}
			return 1
		}
		if v.exp < w.exp {
			return -1 * v.coeff.sign
		}
		return 1 * v.coeff.sign
	}
	return ca.Cmp(cb)
}

// Add returns v+w, exponent = min(v.exp, w.exp).
func (v *BigDecimal) Add(w *BigDecimal) (*BigDecimal, error) {
	ca, cb, exp, err := alignCoefficients(v, w)
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(ca.Add(cb), exp), nil
}

// Sub returns v-w, exponent = min(v.exp, w.exp).
func (v *BigDecimal) Sub(w *BigDecimal) (*BigDecimal, error) {
	ca, cb, exp, err := alignCoefficients(v, w)
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(ca.Sub(cb), exp), nil
}

// Mul returns v*w without alignment: (cv*cw, ev+ew).
func (v *BigDecimal) Mul(w *BigDecimal) (*BigDecimal, error) {
	coeff := v.coeff.Mul(w.coeff)
	exp, err := exponentCheck(int64(v.exp)+int64(w.exp), coeff.IsZero())
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(coeff, exp), nil
}

// Rescale returns v expressed at newExp, rounding under mode if digits
// would be lost.
func Rescale(v *BigDecimal, newExp int32, mode RoundingMode) (*BigDecimal, error) {
	if newExp == v.exp {
		return v, nil
	}
	if v.IsZero() {
		return newBigDecimalRaw(Zero, newExp), nil
	}
	if newExp > v.exp {
		decrease := int64(newExp) - int64(v.exp)
		divisor, err := pow10(int(decrease))
		if err != nil {
			return nil, err
		}
		q, err := divideWithRounding(v.coeff, divisor, mode)
		if err != nil {
			return nil, err
		}
		return newBigDecimalRaw(q, newExp), nil
	}
	increase := int64(v.exp) - int64(newExp)
	mult, err := pow10(int(increase))
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(v.coeff.Mul(mult), newExp), nil
}

// Quantize returns v rescaled to match w's exponent.
func Quantize(v, w *BigDecimal, mode RoundingMode) (*BigDecimal, error) {
	return Rescale(v, w.exp, mode)
}

// StripTrailingZeros removes trailing zero digits from v's coefficient,
// increasing the exponent accordingly. Zero is returned unchanged.
func (v *BigDecimal) StripTrailingZeros() *BigDecimal {
	if v.IsZero() {
		return v
	}
	coeff, exp := v.coeff, v.exp
	for {
		q, r, err := coeff.DivRem(Ten)
		if err != nil || !r.IsZero() {
			break
		}
		if exp == math.MaxInt32 {
			break
		}
		coeff = q
		exp++
	}
	return newBigDecimalRaw(coeff, exp)
}

func stripTowardExponent(v *BigDecimal, target int32) *BigDecimal {
	coeff, exp := v.coeff, v.exp
	for exp < target {
		q, r, err := coeff.DivRem(Ten)
		if err != nil || !r.IsZero() {
			break
		}
		coeff = q
		exp++
	}
	return newBigDecimalRaw(coeff, exp)
}

// Round drops least-significant digits until v.Precision() <= ctx.Precision
// (a no-op if ctx.Precision == 0, meaning unlimited).
func Round(v *BigDecimal, ctx MathContext) (*BigDecimal, error) {
	if ctx.Precision == 0 {
		return v, nil
	}
	vp := v.Precision()
	if vp <= int(ctx.Precision) {
		return v, nil
	}
	drop := vp - int(ctx.Precision)
	divisor, err := pow10(drop)
	if err != nil {
		return nil, err
	}
	q, err := divideWithRounding(v.coeff, divisor, ctx.Mode)
	if err != nil {
		return nil, err
	}
	newExp, err := exponentCheck(int64(v.exp)+int64(drop), q.IsZero())
	if err != nil {
		return nil, err
	}
	result := newBigDecimalRaw(q, newExp)
	if result.Precision() > int(ctx.Precision) {
		return Round(result, ctx)
	}
	return result, nil
}

// divideByZeroError reports division by zero, distinguishing 0/0 (both
// operands zero) from a nonzero dividend divided by zero: both carry the
// Arithmetic kind, per spec.md's requirement that the two share a kind but
// not a message.
func divideByZeroError(v *BigDecimal) *Error {
	if v.IsZero() {
		return newError(Arithmetic, "0/0 is undefined")
	}
	return newError(Arithmetic, "division by zero")
}

// Divide computes the exact quotient v/w, failing Arithmetic if the
// expansion is non-terminating, per §4.5's context-free division path.
func (v *BigDecimal) Divide(w *BigDecimal) (*BigDecimal, error) {
	if w.IsZero() {
		return nil, divideByZeroError(v)
	}
	preferred := clampInt32(int64(v.exp) - int64(w.exp))
	wp := int64(v.Precision()) + ceilDiv(10*int64(w.Precision()), 3)
	if wp > math.MaxInt32 {
		wp = math.MaxInt32
	}
	q, err := v.DivideContext(w, MathContext{Precision: uint32(wp), Mode: Unnecessary})
	if err != nil {
		return nil, err
	}
	if q.exp > preferred {
		q, err = Rescale(q, preferred, Unnecessary)
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

// DivideContext computes v/w rounded to ctx.Precision significant digits
// under ctx.Mode, per §4.5's context-governed division path.
func (v *BigDecimal) DivideContext(w *BigDecimal, ctx MathContext) (*BigDecimal, error) {
	if ctx.Precision == 0 {
		return v.Divide(w)
	}
	if w.IsZero() {
		return nil, divideByZeroError(v)
	}
	xprec, yprec := int64(v.Precision()), int64(w.Precision())
	x, y := v.coeff, w.coeff

	// Scale x (or y) so that dividing it by y (or x) yields a quotient with
	// either ctx.Precision or ctx.Precision+1 digits: dividing an N-digit
	// number by an M-digit one always yields an (N-M)- or (N-M+1)-digit
	// quotient, and delta is chosen so N-M == ctx.Precision. Round below
	// trims the rare extra leading digit.
	delta := int64(ctx.Precision) - (xprec - yprec)
	if delta > 0 {
		p, err := pow10(int(delta))
		if err != nil {
			return nil, err
		}
		x = x.Mul(p)
	} else if delta < 0 {
		p, err := pow10(int(-delta))
		if err != nil {
			return nil, err
		}
		y = y.Mul(p)
	}

	q, err := divideWithRounding(x, y, ctx.Mode)
	if err != nil {
		return nil, err
	}

	preferred64 := int64(v.exp) - int64(w.exp)
	expCandidate := preferred64 - delta
	exp, err := exponentCheck(expCandidate, q.IsZero())
	if err != nil {
		return nil, err
	}
	result := newBigDecimalRaw(q, exp)
	result, err = Round(result, ctx)
	if err != nil {
		return nil, err
	}

	if exact, err := result.Mul(w); err == nil && exact.Cmp(v) == 0 {
		target := clampInt32(preferred64)
		result = stripTowardExponent(result, target)
	}
	return result, nil
}

// DivideInteger returns the truncated integer part of v/w at exponent 0,
// deliberately diverging from the preferred-exponent rule (§4.5).
func (v *BigDecimal) DivideInteger(w *BigDecimal) (*BigDecimal, error) {
	if w.IsZero() {
		return nil, divideByZeroError(v)
	}
	xp, yp := int64(v.Precision()), int64(w.Precision())
	expDiff := int64(v.exp) - int64(w.exp)
	if expDiff < 0 {
		expDiff = -expDiff
	}
	wp := xp + ceilDiv(10*yp, 3) + expDiff
	if wp > math.MaxInt32 {
		wp = math.MaxInt32
	}
	q, err := v.DivideContext(w, MathContext{Precision: uint32(wp), Mode: Down})
	if err != nil {
		return nil, err
	}
	q = q.StripTrailingZeros()
	// Rescale to exponent 0: if q.exp > 0 this only pads zeros (exact,
	// mode irrelevant); if q.exp < 0, Down drops the fractional digits,
	// truncating toward zero.
	return Rescale(q, 0, Down)
}

// Mod returns the remainder of v/w after truncated integer division:
// v - DivideInteger(v, w)*w.
func (v *BigDecimal) Mod(w *BigDecimal) (*BigDecimal, error) {
	q, err := v.DivideInteger(w)
	if err != nil {
		return nil, err
	}
	p, err := q.Mul(w)
	if err != nil {
		return nil, err
	}
	return v.Sub(p)
}

// MovePoint shifts the decimal point by n places: exponent += n.
func (v *BigDecimal) MovePoint(n int) (*BigDecimal, error) {
	exp, err := exponentCheck(int64(v.exp)+int64(n), v.IsZero())
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(v.coeff, exp), nil
}

// Power raises v to the non-negative integer power n (context-free).
func (v *BigDecimal) Power(n int) (*BigDecimal, error) {
	if n < 0 || n > 999999999 {
		return nil, newError(OutOfRange, "power exponent out of range [0, 999999999]")
	}
	exp, err := exponentCheck(int64(v.exp)*int64(n), false)
	if err != nil {
		return nil, err
	}
	coeff, err := v.coeff.Power(n)
	if err != nil {
		return nil, err
	}
	if coeff.IsZero() {
		exp = 0
	}
	return newBigDecimalRaw(coeff, exp), nil
}

// PowerContext raises v to the (possibly negative) integer power n,
// rounded to ctx.
func (v *BigDecimal) PowerContext(n int, ctx MathContext) (*BigDecimal, error) {
	absN := n
	if absN < 0 {
		absN = -absN
	}
	if absN > 999999999 {
		return nil, newError(OutOfRange, "power exponent out of range")
	}
	if ctx.Precision > 0 && uint32(decimalDigits(absN)) > ctx.Precision {
		return nil, newError(OutOfRange, "power exponent exceeds context precision")
	}
	elevated := ctx
	if ctx.Precision > 0 {
		elevated.Precision = ctx.Precision + uint32(decimalDigits(absN)) + 1
	}

	acc := DecimalOne
	base := v
	bits := uint32(absN)
	for i := 0; i < 31 && bits != 0; i++ {
		if bits&1 != 0 {
			var err error
			acc, err = acc.Mul(base)
			if err != nil {
				return nil, err
			}
			if elevated.Precision > 0 {
				acc, err = Round(acc, elevated)
				if err != nil {
					return nil, err
				}
			}
		}
		bits >>= 1
		if bits == 0 {
			break
		}
		var err error
		base, err = base.Mul(base)
		if err != nil {
			return nil, err
		}
		if elevated.Precision > 0 {
			base, err = Round(base, elevated)
			if err != nil {
				return nil, err
			}
		}
	}

	if n < 0 {
		var err error
		acc, err = DecimalOne.DivideContext(acc, elevated)
		if err != nil {
			return nil, err
		}
	}
	return Round(acc, ctx)
}

func decimalDigits(n int) int {
	if n == 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// ParseDecimal parses s using the default ("." separator) locale.
func ParseDecimal(s string) (*BigDecimal, error) {
	return ParseDecimalLocale(s, defaultLocale)
}

// ParseDecimalLocale parses [+-]?INT(\.FRAC)?([eE][+-]?EXP)? with loc
// supplying the decimal separator.
func ParseDecimalLocale(s string, loc Locale) (*BigDecimal, error) {
	sep := loc.DecimalSeparator()
	if len(s) == 0 {
		return nil, newError(Format, "empty string")
	}
	i := 0
	signStr := ""
	switch s[0] {
	case '+', '-':
		signStr = s[0:1]
		i = 1
	}
	rest := s[i:]

	mantissa := rest
	expPart := ""
	hasExp := false
	for idx, c := range rest {
		if c == 'e' || c == 'E' {
			mantissa = rest[:idx]
			expPart = rest[idx+1:]
			hasExp = true
			break
		}
	}

	intPart := mantissa
	fracPart := ""
	if sepIdx := strings.Index(mantissa, sep); sepIdx >= 0 {
		intPart = mantissa[:sepIdx]
		fracPart = mantissa[sepIdx+len(sep):]
	}
	if len(intPart) == 0 && len(fracPart) == 0 {
		return nil, newError(Format, "no digits")
	}
	for _, c := range intPart + fracPart {
		if c < '0' || c > '9' {
			return nil, newError(Format, "invalid digit")
		}
	}

	explicitExp := int64(0)
	if hasExp {
		if len(expPart) == 0 {
			return nil, newError(Format, "missing exponent digits")
		}
		e, err := strconv.ParseInt(expPart, 10, 64)
		if err != nil {
			return nil, newError(Format, "malformed exponent")
		}
		explicitExp = e
	}

	coeffStr := signStr + intPart + fracPart
	if intPart == "" {
		coeffStr = signStr + "0" + fracPart
	}
	coeff, err := ParseBigInt(coeffStr)
	if err != nil {
		return nil, newError(Format, "malformed coefficient")
	}

	totalPrecision := int64(len(intPart) + len(fracPart))
	intDigitCount := int64(len(intPart))
	expCandidate := intDigitCount - totalPrecision + explicitExp
	exp, err := exponentCheck(expCandidate, coeff.IsZero())
	if err != nil {
		return nil, err
	}
	return newBigDecimalRaw(coeff, exp), nil
}

// ToScientificString formats v per §4.5/§6: plain notation when
// exponent <= 0 and adjusted >= -6, exponential notation otherwise.
func (v *BigDecimal) ToScientificString() string {
	return v.ToScientificStringLocale(defaultLocale)
}

// ToScientificStringLocale is ToScientificString with an explicit Locale.
func (v *BigDecimal) ToScientificStringLocale(loc Locale) string {
	sep := loc.DecimalSeparator()
	neg := v.coeff.sign < 0
	digits, _ := v.coeff.Abs().Format(10)
	if v.coeff.sign == 0 {
		digits = "0"
	}
	l := len(digits)
	e := int64(v.exp)
	adjusted := e + int64(l) - 1

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	if e <= 0 && adjusted >= -6 {
		// plain notation
		pointPos := l - int(-e)
		switch {
		case pointPos > 0:
			b.WriteString(digits[:pointPos])
			if pointPos < l {
				b.WriteString(sep)
				b.WriteString(digits[pointPos:])
			}
		case pointPos == 0:
			b.WriteString("0")
			b.WriteString(sep)
			b.WriteString(digits)
		default:
			b.WriteString("0")
			b.WriteString(sep)
			for i := 0; i < -pointPos; i++ {
				b.WriteByte('0')
			}
			b.WriteString(digits)
		}
		return b.String()
	}

	// exponential notation: one digit before the separator.
	b.WriteByte(digits[0])
	if l > 1 {
		b.WriteString(sep)
		b.WriteString(digits[1:])
	}
	b.WriteByte('E')
	if adjusted >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(adjusted, 10))
	return b.String()
}

// String implements fmt.Stringer via ToScientificString.
func (v *BigDecimal) String() string { return v.ToScientificString() }

// Float64 returns the nearest float64 to v, by formatting and reparsing
// (mirroring the "close enough" fast conversions classic arbitrary
// precision libraries use to seed Newton-iteration initial guesses).
// Magnitudes outside float64's range return ±Inf; precision beyond a
// double's ~15-17 significant digits is silently lost.
func (v *BigDecimal) Float64() float64 {
	f, _ := strconv.ParseFloat(v.ToScientificString(), 64)
	return f
}
