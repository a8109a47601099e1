// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "testing"

func TestBigIntTextMarshal(t *testing.T) {
	x := FromInt64(-12345)
	text, err := x.MarshalText()
	if err != nil || string(text) != "-12345" {
		t.Fatalf("MarshalText() = %q, %v; want -12345, nil", text, err)
	}
	var y BigInt
	if err := y.UnmarshalText(text); err != nil || y.String() != "-12345" {
		t.Fatalf("UnmarshalText(%q) = %v; y = %s", text, err, &y)
	}
	if err := (&BigInt{}).UnmarshalText([]byte("not a number")); err == nil {
		t.Error("UnmarshalText(garbage): want error")
	}
}

func TestBigDecimalTextMarshal(t *testing.T) {
	x := mustParseDecimal(t, "3.14159")
	text, err := x.MarshalText()
	if err != nil || string(text) != "3.14159" {
		t.Fatalf("MarshalText() = %q, %v; want 3.14159, nil", text, err)
	}
	var y BigDecimal
	if err := y.UnmarshalText(text); err != nil || y.String() != "3.14159" {
		t.Fatalf("UnmarshalText(%q) = %v; y = %s", text, err, &y)
	}
	if err := (&BigDecimal{}).UnmarshalText([]byte("not a decimal")); err == nil {
		t.Error("UnmarshalText(garbage): want error")
	}
}
