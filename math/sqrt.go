// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/dborg/bigdec"

// powHalfEven returns g^n, rescaling to exponent exp under HalfEven after
// every multiply (n >= 1).
func powHalfEven(g *decimal.BigDecimal, n int, exp int32) (*decimal.BigDecimal, error) {
	acc := g
	for i := 1; i < n; i++ {
		var err error
		acc, err = acc.Mul(g)
		if err != nil {
			return nil, err
		}
		acc, err = decimal.Rescale(acc, exp, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// IntRoot returns the idx-th root of x (idx >= 1) to the given scale,
// found by Newton iteration on f(g) = g^idx - x:
//
//	g <- ((x + (idx-1)*g^idx) / (idx*g^(idx-1)))
//
// with every intermediate rescaled to -(scale+1) under HalfEven, and the
// final division of each step using Down.
func IntRoot(x *decimal.BigDecimal, idx int, scale int) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, false); err != nil {
		return nil, err
	}
	if idx < 1 {
		return nil, &decimal.Error{Kind: decimal.OutOfRange, Msg: "root index must be >= 1"}
	}
	if x.Sign() < 0 {
		return nil, &decimal.Error{Kind: decimal.Arithmetic, Msg: "root of negative operand"}
	}
	if x.IsZero() {
		return decimal.Rescale(x, -int32(scale), decimal.Down)
	}
	if idx == 1 {
		return decimal.Rescale(x, -int32(scale), decimal.Down)
	}

	sp1 := scale + 1
	target := -int32(sp1)
	idxDec := decimal.DecimalFromInt64(int64(idx))
	idxMinus1 := decimal.DecimalFromInt64(int64(idx - 1))

	g, err := divideToScale(x, idxDec, sp1, decimal.Down)
	if err != nil {
		return nil, err
	}
	if g.IsZero() {
		g, err = decimal.Rescale(decimal.DecimalOne, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
	}

	for {
		gPowIdxMinus1, err := powHalfEven(g, idx-1, target)
		if err != nil {
			return nil, err
		}
		gPowIdx, err := gPowIdxMinus1.Mul(g)
		if err != nil {
			return nil, err
		}
		gPowIdx, err = decimal.Rescale(gPowIdx, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}

		term, err := idxMinus1.Mul(gPowIdx)
		if err != nil {
			return nil, err
		}
		term, err = decimal.Rescale(term, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
		numerator, err := x.Add(term)
		if err != nil {
			return nil, err
		}
		numerator, err = decimal.Rescale(numerator, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}

		denominator, err := idxDec.Mul(gPowIdxMinus1)
		if err != nil {
			return nil, err
		}
		denominator, err = decimal.Rescale(denominator, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}

		next, err := divideToScale(numerator, denominator, sp1, decimal.Down)
		if err != nil {
			return nil, err
		}

		exceeded, err := toleranceExceeded(next, g, sp1)
		if err != nil {
			return nil, err
		}
		g = next
		if !exceeded {
			break
		}
	}
	return decimal.Rescale(g, -int32(scale), decimal.Down)
}

// Sqrt returns the square root of x to the given scale, via integer
// Newton iteration on n = x*10^(2*scale): the classic isqrt fixed point
// ix <- (ix + n/ix) >> 1, starting from a bit-length-derived initial guess.
func Sqrt(x *decimal.BigDecimal, scale int) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, false); err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		return nil, &decimal.Error{Kind: decimal.Arithmetic, Msg: "square root of negative operand"}
	}
	if x.IsZero() {
		return decimal.Rescale(x, -int32(scale), decimal.Down)
	}

	scaled, err := decimal.Rescale(x, -int32(2*scale), decimal.HalfEven)
	if err != nil {
		return nil, err
	}
	n := scaled.Coefficient()

	bl := n.BitLength()
	ix := n.RightShift((bl + 2) / 2)
	if ix.IsZero() {
		ix = decimal.One
	}
	// One Newton step from any positive seed lands at or above
	// floor(sqrt(n)); from there the iteration decreases to it.
	q0, err := n.Div(ix)
	if err != nil {
		return nil, err
	}
	ix = ix.Add(q0).RightShift(1)
	for {
		q, err := n.Div(ix)
		if err != nil {
			return nil, err
		}
		next := ix.Add(q).RightShift(1)
		if next.Cmp(ix) >= 0 {
			break
		}
		ix = next
	}
	return decimal.NewBigDecimal(ix, -int32(scale)), nil
}
