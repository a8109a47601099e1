// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "testing"

// TestRadixParseScenario is the worked radix-parse example: a 30-digit
// decimal literal whose magnitude decomposes into four 32-bit words.
func TestRadixParseScenario(t *testing.T) {
	v, err := ParseBigInt("123456789012345678901234567890")
	if err != nil {
		t.Fatalf("ParseBigInt: %v", err)
	}
	want := []uint32{0x1, 0x8EE90FF6, 0xC373E0EE, 0x4E3F0AD2}
	if len(v.mag) != len(want) {
		t.Fatalf("magnitude has %d words, want %d", len(v.mag), len(want))
	}
	for i, w := range want {
		if v.mag[i] != w {
			t.Errorf("mag[%d] = %#x, want %#x", i, v.mag[i], w)
		}
	}
	if v.sign != 1 {
		t.Errorf("sign = %d, want +1", v.sign)
	}
	if got := v.String(); got != "123456789012345678901234567890" {
		t.Errorf("round-trip format = %s, want original string", got)
	}
}

// TestKnuthBoundaryScenario constructs the Algorithm D boundary case
// B_m = 2^(32m)-1, B_n = 2^(32n)-1,
// B_(m+n) = 2^(32(m+n)) - 2^(32m) - 2^(32n) + 1 = B_m*B_n, a = B_m - 0xABCD.
// It asserts (B_(m+n)+a).divrem(B_m) == (B_n, a) for 2 <= m < 5,
// m+1 <= n <= m+4.
func TestKnuthBoundaryScenario(t *testing.T) {
	two := FromInt64(2)
	for m := 2; m < 5; m++ {
		bm, err := two.Power(32 * m)
		if err != nil {
			t.Fatalf("2^%d: %v", 32*m, err)
		}
		bm = bm.Sub(One)
		a := bm.Sub(FromInt64(0xABCD))
		for n := m + 1; n <= m+4; n++ {
			bn, err := two.Power(32 * n)
			if err != nil {
				t.Fatalf("2^%d: %v", 32*n, err)
			}
			bn = bn.Sub(One)

			bmn, err := two.Power(32 * (m + n))
			if err != nil {
				t.Fatalf("2^%d: %v", 32*(m+n), err)
			}
			bm32, err := two.Power(32 * m)
			if err != nil {
				t.Fatalf("2^%d: %v", 32*m, err)
			}
			bmn = bmn.Sub(bm32).Sub(bn)

			dividend := bmn.Add(a)
			q, r, err := dividend.DivRem(bm)
			if err != nil {
				t.Fatalf("DivRem(m=%d,n=%d): %v", m, n, err)
			}
			if q.Cmp(bn) != 0 {
				t.Errorf("m=%d n=%d: quotient = %s, want %s", m, n, q, bn)
			}
			if r.Cmp(a) != 0 {
				t.Errorf("m=%d n=%d: remainder = %s, want %s", m, n, r, a)
			}
		}
	}
}

// TestDivideWithRoundingScenario is the spec's canonical division example:
// 1/3 under MathContext(5, HalfUp).
func TestDivideWithRoundingScenario(t *testing.T) {
	x := mustParseDecimal(t, "1")
	y := mustParseDecimal(t, "3")
	got, err := x.DivideContext(y, NewMathContext(5, HalfUp))
	if err != nil {
		t.Fatalf("DivideContext: %v", err)
	}
	if got.Coefficient().String() != "33333" || got.Exponent() != -5 {
		t.Errorf("1/3 @ prec 5 HalfUp = (%s,%d), want (33333,-5)", got.Coefficient(), got.Exponent())
	}
}

// TestBitwiseNegativeScenario is the spec's sign-extension worked example:
// BigInt.of(-1, [0xAAAAAAAA, 0xAAAAAAAA]).test_bit(1000) is true, while the
// positive counterpart is false.
func TestBitwiseNegativeScenario(t *testing.T) {
	m := []uint32{0xAAAAAAAA, 0xAAAAAAAA}
	neg, err := Of(-1, m)
	if err != nil {
		t.Fatalf("Of(-1, ...): %v", err)
	}
	if b, err := neg.TestBit(1000); err != nil || !b {
		t.Errorf("negative.TestBit(1000) = %v, %v; want true, nil", b, err)
	}
	pos, err := Of(1, m)
	if err != nil {
		t.Fatalf("Of(1, ...): %v", err)
	}
	if b, err := pos.TestBit(1000); err != nil || b {
		t.Errorf("positive.TestBit(1000) = %v, %v; want false, nil", b, err)
	}
}
