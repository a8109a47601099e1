// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// MathContext is an immutable (precision, rounding mode) pair governing
// BigDecimal division and rounding. Precision 0 means "exact /
// unlimited".
type MathContext struct {
	Precision uint32
	Mode      RoundingMode
}

// NewMathContext returns a MathContext with the given precision and mode.
func NewMathContext(precision uint32, mode RoundingMode) MathContext {
	return MathContext{Precision: precision, Mode: mode}
}

// Predefined contexts, ready before any public operation can observe
// them.
var (
	BasicDefault = MathContext{Precision: 9, Mode: HalfUp}
	Decimal32    = MathContext{Precision: 7, Mode: HalfEven}
	Decimal64    = MathContext{Precision: 16, Mode: HalfEven}
	Decimal128   = MathContext{Precision: 34, Mode: HalfEven}
	Unlimited    = MathContext{Precision: 0, Mode: HalfUp}
)
