// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "fmt"

// debugDecimal gates internal invariant assertions. These catch
// programmer bugs in this package (a malformed BigInt escaping
// bigIntOf, for instance), never user-triggerable conditions, so they
// panic rather than return an *Error.
const debugDecimal = true

// assertNormalized panics if m has a leading zero word or if sign/m
// disagree about zero-ness, per the §3 BigInt invariants.
func assertNormalized(sign int, m mag) {
	if !debugDecimal {
		return
	}
	if len(m) > 0 && m[0] == 0 {
		panic(fmt.Sprintf("decimal: unnormalized magnitude %v", m))
	}
	if (sign == 0) != (len(m) == 0) {
		panic(fmt.Sprintf("decimal: sign %d inconsistent with magnitude %v", sign, m))
	}
}
