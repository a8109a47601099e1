// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "testing"

func mustParseDecimal(t *testing.T, s string) *BigDecimal {
	t.Helper()
	v, err := ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q): %v", s, err)
	}
	return v
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "123.456", "-0.5", "0.001", "1E+10", "1.5E-7",
		"100", "-100", "0.0", "-.5", "3.14159",
	}
	for _, c := range cases {
		v := mustParseDecimal(t, c)
		if v == nil {
			t.Fatalf("ParseDecimal(%q) returned nil", c)
		}
		back := mustParseDecimal(t, v.String())
		if !back.Equal(v) {
			t.Errorf("ParseDecimal(%q) formats as %q, which reparses to (%s,%d), want (%s,%d)",
				c, v.String(), back.Coefficient(), back.Exponent(), v.Coefficient(), v.Exponent())
		}
	}
}

func TestParseDecimalValues(t *testing.T) {
	cases := []struct {
		s        string
		coeff    string
		exponent int32
	}{
		{"123.456", "123456", -3},
		{"-.5", "-5", -1},
		{"0.001", "1", -3},
		{"100", "100", 0},
		{"1E+10", "1", 10},
		{"1.5E-7", "15", -8},
	}
	for _, c := range cases {
		v := mustParseDecimal(t, c.s)
		if v.Coefficient().String() != c.coeff || v.Exponent() != c.exponent {
			t.Errorf("ParseDecimal(%q) = (%s, %d), want (%s, %d)",
				c.s, v.Coefficient(), v.Exponent(), c.coeff, c.exponent)
		}
	}
}

func TestParseDecimalErrors(t *testing.T) {
	for _, s := range []string{"", ".", "abc", "1.2.3", "1E", "--1", "1E+"} {
		if _, err := ParseDecimal(s); err == nil {
			t.Errorf("ParseDecimal(%q): want error", s)
		}
	}
}

func TestToScientificString(t *testing.T) {
	cases := []struct {
		coeff string
		exp   int32
		want  string
	}{
		{"123", -2, "1.23"},
		{"1", 0, "1"},
		{"1", 3, "1E+3"},
		{"1", -7, "1E-7"},
		{"1", -6, "0.000001"},
		{"-5", -1, "-0.5"},
		{"0", 0, "0"},
		{"100", 0, "100"},
	}
	for _, c := range cases {
		coeff, _ := ParseBigInt(c.coeff)
		v := NewBigDecimal(coeff, c.exp)
		if got := v.ToScientificString(); got != c.want {
			t.Errorf("(%s,%d).ToScientificString() = %q, want %q", c.coeff, c.exp, got, c.want)
		}
	}
}

func TestAddSubAlign(t *testing.T) {
	x := mustParseDecimal(t, "1.25")
	y := mustParseDecimal(t, "2.5")
	sum, err := x.Add(y)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.String() != "3.75" {
		t.Errorf("1.25+2.5 = %s, want 3.75", sum)
	}
	diff, err := x.Sub(y)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff.String() != "-1.25" {
		t.Errorf("1.25-2.5 = %s, want -1.25", diff)
	}
}

func TestMulNoAlignment(t *testing.T) {
	x := NewBigDecimal(FromInt64(123), -2) // 1.23
	y := NewBigDecimal(FromInt64(227), -2) // 2.27
	z, err := x.Mul(y)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if z.Coefficient().String() != "27921" || z.Exponent() != -4 {
		t.Errorf("1.23*2.27 = (%s,%d), want (27921,-4)", z.Coefficient(), z.Exponent())
	}
}

func TestRescale(t *testing.T) {
	v := mustParseDecimal(t, "1.2345")
	r, err := Rescale(v, -2, HalfUp)
	if err != nil || r.String() != "1.23" {
		t.Fatalf("Rescale(1.2345,-2,HalfUp) = %v, %v; want 1.23, nil", r, err)
	}
	r2, err := Rescale(v, -6, HalfUp)
	if err != nil || r2.Coefficient().String() != "1234500" || r2.Exponent() != -6 {
		t.Fatalf("Rescale(1.2345,-6,HalfUp) = (%s,%d), %v", r2.Coefficient(), r2.Exponent(), err)
	}
	if _, err := Rescale(mustParseDecimal(t, "1.005"), -2, Unnecessary); err == nil {
		t.Error("Rescale(1.005,-2,Unnecessary): want error")
	}
}

func TestStripTrailingZeros(t *testing.T) {
	v := NewBigDecimal(FromInt64(123000), -3) // 123.000
	s := v.StripTrailingZeros()
	if s.Coefficient().String() != "123" || s.Exponent() != 0 {
		t.Errorf("StripTrailingZeros(123.000) = (%s,%d), want (123,0)", s.Coefficient(), s.Exponent())
	}
	zero := DecimalZero
	if zero.StripTrailingZeros() != zero {
		t.Error("StripTrailingZeros(0) must return the same zero value")
	}
}

// TestDivideRoundingExample exercises the division-with-rounding worked
// scenario: 10 / 3 rounded to a few significant digits.
func TestDivideRoundingExample(t *testing.T) {
	x := DecimalFromInt64(10)
	y := DecimalFromInt64(3)
	got, err := x.DivideContext(y, NewMathContext(5, HalfUp))
	if err != nil {
		t.Fatalf("DivideContext: %v", err)
	}
	if got.String() != "3.3333" {
		t.Errorf("10/3 to 5 sig figs HalfUp = %s, want 3.3333", got)
	}
}

// TestDivideContextOnePrecThird checks the canonical 1/3 worked scenario:
// a quotient whose exact expansion is non-terminating, rounded to 5
// significant digits under HalfUp.
func TestDivideContextOnePrecThird(t *testing.T) {
	x := DecimalFromInt64(1)
	y := DecimalFromInt64(3)
	got, err := x.DivideContext(y, NewMathContext(5, HalfUp))
	if err != nil {
		t.Fatalf("DivideContext: %v", err)
	}
	if got.Coefficient().String() != "33333" || got.Exponent() != -5 {
		t.Errorf("1/3 to 5 sig figs HalfUp = (%s,%d), want (33333,-5)", got.Coefficient(), got.Exponent())
	}
	if got.String() != "0.33333" {
		t.Errorf("1/3 to 5 sig figs HalfUp = %s, want 0.33333", got)
	}
}

// TestDivideContextNegativeDelta exercises the branch where the requested
// precision is smaller than the naive digit-count difference, so y (not x)
// gets scaled up before the division.
func TestDivideContextNegativeDelta(t *testing.T) {
	x := DecimalFromInt64(12345)
	y := DecimalFromInt64(3)
	got, err := x.DivideContext(y, NewMathContext(1, Down))
	if err != nil {
		t.Fatalf("DivideContext: %v", err)
	}
	if got.String() != "4E+3" {
		t.Errorf("12345/3 to 1 sig fig Down = %s, want 4E+3", got)
	}
}

// TestDivideByZeroMessages checks that 0/0 and x/0 share the Arithmetic
// kind but carry distinct messages, per spec.md's requirement that both
// be distinguishable even though neither has a well-defined quotient.
func TestDivideByZeroMessages(t *testing.T) {
	zero := mustParseDecimal(t, "0")
	nonzero := mustParseDecimal(t, "5")
	ctx := NewMathContext(5, HalfUp)

	cases := []struct {
		name     string
		dividend *BigDecimal
	}{
		{"0/0", zero},
		{"x/0", nonzero},
	}
	for _, op := range []struct {
		name string
		call func(x *BigDecimal) (*BigDecimal, error)
	}{
		{"Divide", func(x *BigDecimal) (*BigDecimal, error) { return x.Divide(zero) }},
		{"DivideContext", func(x *BigDecimal) (*BigDecimal, error) { return x.DivideContext(zero, ctx) }},
		{"DivideInteger", func(x *BigDecimal) (*BigDecimal, error) { return x.DivideInteger(zero) }},
	} {
		var zeroZeroMsg, xZeroMsg string
		for _, c := range cases {
			_, err := op.call(c.dividend)
			if err == nil {
				t.Fatalf("%s(%s): want error", op.name, c.name)
			}
			if !Is(err, Arithmetic) {
				t.Errorf("%s(%s) error kind = %v, want Arithmetic", op.name, c.name, err)
			}
			if c.name == "0/0" {
				zeroZeroMsg = err.Error()
			} else {
				xZeroMsg = err.Error()
			}
		}
		if zeroZeroMsg == xZeroMsg {
			t.Errorf("%s: 0/0 and x/0 produced the same message %q, want distinct messages", op.name, zeroZeroMsg)
		}
	}
}

func TestDivideExact(t *testing.T) {
	x := mustParseDecimal(t, "1")
	y := mustParseDecimal(t, "4")
	q, err := x.Divide(y)
	if err != nil || q.String() != "0.25" {
		t.Fatalf("1/4 = %v, %v; want 0.25, nil", q, err)
	}
}

func TestDivideNonTerminating(t *testing.T) {
	x := mustParseDecimal(t, "1")
	y := mustParseDecimal(t, "3")
	if _, err := x.Divide(y); err == nil {
		t.Error("1/3 exact Divide: want error (non-terminating expansion)")
	}
}

func TestDivideInteger(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"10", "3", "3"},
		{"-10", "3", "-3"},
		{"10", "-3", "-3"},
		{"7.5", "2.5", "3"},
		{"100", "10", "10"},
	}
	for _, c := range cases {
		x := mustParseDecimal(t, c.x)
		y := mustParseDecimal(t, c.y)
		got, err := x.DivideInteger(y)
		if err != nil {
			t.Fatalf("DivideInteger(%s,%s): %v", c.x, c.y, err)
		}
		if got.String() != c.want {
			t.Errorf("DivideInteger(%s,%s) = %s, want %s", c.x, c.y, got, c.want)
		}
	}
}

func TestMod(t *testing.T) {
	x := mustParseDecimal(t, "10")
	y := mustParseDecimal(t, "3")
	got, err := x.Mod(y)
	if err != nil || got.String() != "1" {
		t.Fatalf("10 mod 3 = %v, %v; want 1, nil", got, err)
	}
}

func TestMovePoint(t *testing.T) {
	v := mustParseDecimal(t, "1.23")
	got, err := v.MovePoint(2)
	if err != nil || got.String() != "123" {
		t.Fatalf("MovePoint(1.23,2) = %v, %v; want 123, nil", got, err)
	}
}

func TestPower(t *testing.T) {
	v := mustParseDecimal(t, "1.5")
	got, err := v.Power(3)
	if err != nil || got.String() != "3.375" {
		t.Fatalf("1.5^3 = %v, %v; want 3.375, nil", got, err)
	}
	if _, err := v.Power(-1); err == nil {
		t.Error("Power(-1): want error")
	}
}

func TestPowerContextNegative(t *testing.T) {
	v := mustParseDecimal(t, "2")
	got, err := v.PowerContext(-3, NewMathContext(10, HalfEven))
	if err != nil {
		t.Fatalf("PowerContext(-3): %v", err)
	}
	if got.String() != "0.125" {
		t.Errorf("2^-3 = %s, want 0.125", got)
	}
}

func TestDecimalFromFloat64(t *testing.T) {
	v, err := DecimalFromFloat64(0.5)
	if err != nil || v.String() != "0.5" {
		t.Fatalf("DecimalFromFloat64(0.5) = %v, %v; want 0.5, nil", v, err)
	}
	if _, err := DecimalFromFloat64(nanFloat()); err == nil {
		t.Error("DecimalFromFloat64(NaN): want error")
	}
}

func TestDecimalEqualVsCmp(t *testing.T) {
	a := NewBigDecimal(FromInt64(10), -1) // 1.0
	b := NewBigDecimal(FromInt64(100), -2) // 1.00
	if a.Equal(b) {
		t.Error("1.0.Equal(1.00): want false (different exponents)")
	}
	if a.Cmp(b) != 0 {
		t.Error("1.0.Cmp(1.00): want 0 (numerically equal)")
	}
}
