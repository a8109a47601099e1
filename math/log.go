// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/dborg/bigdec"
)

// magnitudeOf returns the base-10 order of magnitude of x (the exponent m
// such that 1 <= x/10^m < 10): x's decimal-digit count plus its exponent,
// minus one.
func magnitudeOf(x *decimal.BigDecimal) int {
	return x.Precision() + int(x.Exponent()) - 1
}

// Ln returns the natural logarithm of x to the given scale. Values whose
// order of magnitude is >= 3 are reduced with IntRoot (ln(x) = m *
// ln(x^(1/m))) until a direct Newton iteration on f(g) = e^g - x is
// accurate: g <- g - (e^g - x)/e^g, seeded from a float64 estimate of
// ln(x) and iterated (with Down rounding at scale+1) until the correction
// term's magnitude drops below 5*10^-(scale+1).
func Ln(x *decimal.BigDecimal, scale int) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, false); err != nil {
		return nil, err
	}
	if x.Sign() <= 0 {
		return nil, &decimal.Error{Kind: decimal.Arithmetic, Msg: "logarithm of non-positive operand"}
	}

	m := magnitudeOf(x)
	if m >= 3 {
		workScale := scale + decimalGuardDigits
		reduced, err := IntRoot(x, m, workScale)
		if err != nil {
			return nil, err
		}
		lnReduced, err := Ln(reduced, workScale)
		if err != nil {
			return nil, err
		}
		result, err := decimal.DecimalFromInt64(int64(m)).Mul(lnReduced)
		if err != nil {
			return nil, err
		}
		return decimal.Rescale(result, -int32(scale), decimal.HalfEven)
	}

	sp1 := scale + 1
	target := -int32(sp1)
	n, err := decimal.Rescale(x, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}

	g0, err := decimal.DecimalFromFloat64(stdmath.Log(x.Float64()))
	if err != nil {
		return nil, err
	}
	g, err := decimal.Rescale(g0, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}

	expPrec := sp1 + decimalGuardDigits
	bound := decimal.NewBigDecimal(decimal.FromInt64(5), -int32(sp1))
	for {
		eg, err := Exp(g, expPrec)
		if err != nil {
			return nil, err
		}
		egMinusN, err := eg.Sub(n)
		if err != nil {
			return nil, err
		}
		term, err := divideToScale(egMinusN, eg, sp1, decimal.Down)
		if err != nil {
			return nil, err
		}
		next, err := g.Sub(term)
		if err != nil {
			return nil, err
		}
		next, err = decimal.Rescale(next, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
		g = next
		if term.Abs().Cmp(bound) < 0 {
			break
		}
	}
	return decimal.Rescale(g, -int32(scale), decimal.HalfEven)
}
