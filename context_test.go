// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "testing"

func TestPredefinedContexts(t *testing.T) {
	cases := []struct {
		ctx       MathContext
		precision uint32
		mode      RoundingMode
	}{
		{BasicDefault, 9, HalfUp},
		{Decimal32, 7, HalfEven},
		{Decimal64, 16, HalfEven},
		{Decimal128, 34, HalfEven},
		{Unlimited, 0, HalfUp},
	}
	for _, c := range cases {
		if c.ctx.Precision != c.precision || c.ctx.Mode != c.mode {
			t.Errorf("context = %+v, want precision %d mode %s", c.ctx, c.precision, c.mode)
		}
	}
}

func TestNewMathContext(t *testing.T) {
	ctx := NewMathContext(5, Floor)
	if ctx.Precision != 5 || ctx.Mode != Floor {
		t.Errorf("NewMathContext(5,Floor) = %+v", ctx)
	}
}
