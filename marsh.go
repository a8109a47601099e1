// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements text (de)serialization of BigInt and BigDecimal.

package decimal

import "fmt"

// MarshalText implements the encoding.TextMarshaler interface.
func (x *BigInt) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("0"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *BigInt) UnmarshalText(text []byte) error {
	v, err := ParseBigInt(string(text))
	if err != nil {
		return fmt.Errorf("decimal: cannot unmarshal %q into a *BigInt (%v)", text, err)
	}
	z.sign, z.mag = v.sign, v.mag
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value
// is marshaled in full precision; no MathContext is applied.
func (x *BigDecimal) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("0"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *BigDecimal) UnmarshalText(text []byte) error {
	v, err := ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("decimal: cannot unmarshal %q into a *BigDecimal (%v)", text, err)
	}
	z.coeff, z.exp = v.coeff, v.exp
	z.prec.Store(0)
	return nil
}
