// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/dborg/bigdec"

// CDivide divides dividend by divisor directly to the given scale under
// mode, without the working-precision/preferred-exponent machinery of
// BigDecimal.Divide: whichever operand needs padding to align the ratio
// is rescaled up first (exact, since padding only ever adds trailing
// zero digits), then the aligned coefficients are rounded-divided in a
// single step.
func CDivide(dividend, divisor *decimal.BigDecimal, scale int, mode decimal.RoundingMode) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, false); err != nil {
		return nil, err
	}
	if divisor.IsZero() {
		return nil, &decimal.Error{Kind: decimal.Arithmetic, Msg: "division by zero"}
	}
	return divideToScale(dividend, divisor, scale, mode)
}
