// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements two immutable arbitrary-precision numeric types:
BigInt, an unbounded signed integer, and BigDecimal, a coefficient×10^exponent
decimal built on top of BigInt.

BigInt stores a sign and a normalized magnitude (no leading zero word) and
dispatches its arithmetic to an unexported magnitude-algebra layer (add,
subtract, schoolbook multiply, Knuth Algorithm D division). Parsing and
formatting in radixes 2 through 36 go through a super-radix chunking scheme,
also unexported.

BigDecimal pairs a BigInt coefficient with an int32 exponent and a lazily
cached decimal-digit count. Addition and subtraction align operands by
exponent; multiplication does not; division and rounding are governed by a
MathContext (precision and RoundingMode) and routed through a shared rounding
engine.

Every operation returns a new value; no type in this package is ever mutated
after construction, so instances may be freely shared across goroutines.

The math subpackage layers Newton-iteration and Taylor-series transcendentals
(Exp, Ln, Sqrt, IntRoot, IntPower) on top of BigDecimal, each computed to a
caller-supplied decimal scale.
*/
package decimal
