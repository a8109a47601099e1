// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math implements the transcendental extension operations —
// IntPower, IntRoot, Sqrt, Exp, Ln, and CDivide — on top of the decimal
// package's BigInt/BigDecimal kernel. Every operation here is driven by a
// target scale (digits to the right of the decimal point) and composes
// BigDecimal/BigInt operations under an internally elevated working
// precision so that intermediate blow-up stays bounded.
package math

import (
	"github.com/dborg/bigdec"
)

// requireScale validates the scale argument shared by every transcendental
// operation. allowZero is set only for IntPower, which accepts scale == 0.
func requireScale(scale int, allowZero bool) error {
	minScale := 1
	if allowZero {
		minScale = 0
	}
	if scale < minScale {
		return &decimal.Error{Kind: decimal.OutOfRange, Msg: "scale out of range"}
	}
	return nil
}

// toleranceExceeded reports whether |cur-prev| > 5*10^-(sp1), IntRoot's
// Newton-iteration stopping tolerance (Ln checks its correction term
// against the same bound inline).
func toleranceExceeded(cur, prev *decimal.BigDecimal, sp1 int) (bool, error) {
	diff, err := cur.Sub(prev)
	if err != nil {
		return false, err
	}
	diff = diff.Abs()
	bound := decimal.NewBigDecimal(decimal.FromInt64(5), -int32(sp1))
	return diff.Cmp(bound) > 0, nil
}

func pow10BigInt(n int) (*decimal.BigInt, error) {
	return decimal.Ten.Power(n)
}

// divideToScale computes num/den rounded under mode directly to exponent
// -scale, working at the BigInt coefficient level: whichever operand needs
// padding to align the ratio is scaled up by an exact power of ten first,
// then RoundingEngine-style integer division produces the final digits in
// one step. This is the shared primitive behind CDivide and the internal
// divisions of IntRoot/Ln.
func divideToScale(num, den *decimal.BigDecimal, scale int, mode decimal.RoundingMode) (*decimal.BigDecimal, error) {
	shift := int64(num.Exponent()) + int64(scale) - int64(den.Exponent())
	numCoeff, denCoeff := num.Coefficient(), den.Coefficient()
	if shift >= 0 {
		p, err := pow10BigInt(int(shift))
		if err != nil {
			return nil, err
		}
		numCoeff = numCoeff.Mul(p)
	} else {
		p, err := pow10BigInt(int(-shift))
		if err != nil {
			return nil, err
		}
		denCoeff = denCoeff.Mul(p)
	}
	q, err := decimal.DivideRounded(numCoeff, denCoeff, mode)
	if err != nil {
		return nil, err
	}
	return decimal.NewBigDecimal(q, -int32(scale)), nil
}
