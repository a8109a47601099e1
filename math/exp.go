// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/dborg/bigdec"
)

// expTaylor accumulates e^x via its Taylor series: sum = 1 + x + x^2/2! +
// x^3/3! + ..., adding one term per iteration and stopping once a term's
// contribution, rescaled to -scale under HalfEven, no longer changes the
// running sum. x should already be small (|x| < 1) for fast convergence;
// Exp itself is responsible for argument reduction.
func expTaylor(x *decimal.BigDecimal, scale int) (*decimal.BigDecimal, error) {
	target := -int32(scale)
	sum, err := decimal.Rescale(decimal.DecimalOne, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}
	term := sum
	n := decimal.DecimalZero
	for i := 1; ; i++ {
		term, err = term.Mul(x)
		if err != nil {
			return nil, err
		}
		n, err = n.Add(decimal.DecimalOne)
		if err != nil {
			return nil, err
		}
		term, err = term.DivideContext(n, decimal.NewMathContext(precisionForScale(term, scale), decimal.HalfEven))
		if err != nil {
			return nil, err
		}
		term, err = decimal.Rescale(term, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
		next, err := sum.Add(term)
		if err != nil {
			return nil, err
		}
		next, err = decimal.Rescale(next, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
		if next.Equal(sum) {
			return next, nil
		}
		sum = next
	}
}

// intPowerBig raises base to the (possibly huge, possibly negative)
// integer power held in exponent, chunking the work into IntPower calls
// of at most i64::MAX each.
func intPowerBig(base *decimal.BigDecimal, exponent *decimal.BigInt, scale int) (*decimal.BigDecimal, error) {
	target := -int32(scale)
	if exponent.IsZero() {
		return decimal.Rescale(decimal.DecimalOne, target, decimal.HalfEven)
	}
	neg := exponent.Sign() < 0
	remaining := exponent.Abs()
	maxI64 := decimal.FromInt64(stdmath.MaxInt64)

	result, err := decimal.Rescale(decimal.DecimalOne, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}
	for !remaining.IsZero() {
		chunk := remaining
		if chunk.CmpAbs(maxI64) > 0 {
			chunk = maxI64
		}
		chunkVal, _ := chunk.AsInt64()
		part, err := IntPower(base, chunkVal, scale)
		if err != nil {
			return nil, err
		}
		result, err = result.Mul(part)
		if err != nil {
			return nil, err
		}
		result, err = decimal.Rescale(result, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
		remaining = remaining.Sub(chunk)
	}
	if neg {
		recip, err := decimal.DecimalOne.DivideContext(result, decimal.NewMathContext(precisionForScale(result, scale), decimal.HalfEven))
		if err != nil {
			return nil, err
		}
		return decimal.Rescale(recip, target, decimal.HalfEven)
	}
	return result, nil
}

// Exp returns e^x to the given scale. x is split into an integer part xw
// and fractional remainder xf = x - xw; the fractional part (whose
// magnitude is always < 1) is evaluated directly by expTaylor, and the
// integer part is folded in by raising e to the xw-th power via
// intPowerBig, which chunks exponents larger than i64::MAX.
func Exp(x *decimal.BigDecimal, scale int) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, false); err != nil {
		return nil, err
	}
	if x.IsZero() {
		return decimal.Rescale(decimal.DecimalOne, -int32(scale), decimal.HalfEven)
	}
	if x.Sign() < 0 {
		p, err := Exp(x.Neg(), scale)
		if err != nil {
			return nil, err
		}
		recip, err := decimal.DecimalOne.DivideContext(p, decimal.NewMathContext(precisionForScale(p, scale), decimal.HalfEven))
		if err != nil {
			return nil, err
		}
		return decimal.Rescale(recip, -int32(scale), decimal.HalfEven)
	}

	xw, err := decimal.Rescale(x, 0, decimal.Down)
	if err != nil {
		return nil, err
	}
	xf, err := x.Sub(xw)
	if err != nil {
		return nil, err
	}

	taylorScale := scale + decimalGuardDigits
	xfTerm, err := expTaylor(xf, taylorScale)
	if err != nil {
		return nil, err
	}
	if xw.IsZero() {
		return decimal.Rescale(xfTerm, -int32(scale), decimal.HalfEven)
	}

	eBase, err := expTaylor(decimal.DecimalOne, taylorScale)
	if err != nil {
		return nil, err
	}
	ePowXw, err := intPowerBig(eBase, xw.Coefficient(), taylorScale)
	if err != nil {
		return nil, err
	}
	result, err := ePowXw.Mul(xfTerm)
	if err != nil {
		return nil, err
	}
	return decimal.Rescale(result, -int32(scale), decimal.HalfEven)
}

// decimalGuardDigits is the number of extra working digits carried through
// Exp's internal Taylor/power evaluation before the final rescale to the
// caller's requested scale.
const decimalGuardDigits = 6
