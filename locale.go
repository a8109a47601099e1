// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Locale supplies the decimal-separator string used when parsing or
// formatting a BigDecimal. The core stores no locale state: it is read
// only at the point of the parse/format call.
type Locale interface {
	DecimalSeparator() string
}

// DotLocale is the default Locale, using "." as the decimal separator.
type DotLocale struct{}

// DecimalSeparator implements Locale.
func (DotLocale) DecimalSeparator() string { return "." }

var defaultLocale Locale = DotLocale{}
