// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/dborg/bigdec"

// IntPower raises x to the integer power n at the given scale. n may be
// negative, in which case the result is 1/IntPower(x, -n, scale), rounded
// HalfEven. scale may be 0 (IntPower is the one transcendental that
// permits an exact integer result).
func IntPower(x *decimal.BigDecimal, n int64, scale int) (*decimal.BigDecimal, error) {
	if err := requireScale(scale, true); err != nil {
		return nil, err
	}
	if n < 0 {
		p, err := IntPower(x, -n, scale)
		if err != nil {
			return nil, err
		}
		recip, err := decimal.DecimalOne.DivideContext(p, decimal.NewMathContext(precisionForScale(p, scale), decimal.HalfEven))
		if err != nil {
			return nil, err
		}
		return decimal.Rescale(recip, -int32(scale), decimal.HalfEven)
	}

	target := -int32(scale)
	base, err := decimal.Rescale(x, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}
	power, err := decimal.Rescale(decimal.DecimalOne, target, decimal.HalfEven)
	if err != nil {
		return nil, err
	}

	e := uint64(n)
	for e > 0 {
		if e&1 != 0 {
			power, err = power.Mul(base)
			if err != nil {
				return nil, err
			}
			power, err = decimal.Rescale(power, target, decimal.HalfEven)
			if err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		base, err = base.Mul(base)
		if err != nil {
			return nil, err
		}
		base, err = decimal.Rescale(base, target, decimal.HalfEven)
		if err != nil {
			return nil, err
		}
	}
	return power, nil
}

// precisionForScale picks a significant-digit precision comfortably
// covering scale fractional digits plus v's integer digits, for use as a
// DivideContext working precision when a caller only has a target scale.
func precisionForScale(v *decimal.BigDecimal, scale int) uint32 {
	intDigits := v.Precision() + int(v.Exponent())
	if intDigits < 0 {
		intDigits = 0
	}
	return uint32(intDigits+scale) + 2
}
