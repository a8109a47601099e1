// Copyright 2024 The bigdec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// RoundingMode governs how a division or rescale that would otherwise
// discard non-zero digits picks its result.
type RoundingMode byte

const (
	Up RoundingMode = iota
	Down
	Ceiling
	Floor
	HalfUp
	HalfDown
	HalfEven
	Unnecessary
)

func (m RoundingMode) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfEven:
		return "HalfEven"
	case Unnecessary:
		return "Unnecessary"
	default:
		return "RoundingMode(?)"
	}
}

// divideWithRounding computes (q0, r) = divrem(x, y) and returns q0,
// possibly incremented in magnitude toward the sign of x/y, according to
// mode. It is shared by BigInt's rounded division paths and by
// BigDecimal's rescale/divide machinery.
func divideWithRounding(x, y *BigInt, mode RoundingMode) (*BigInt, error) {
	q0, r, err := x.DivRem(y)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return q0, nil
	}

	negative := (x.sign < 0) != (y.sign < 0)
	increment, err := roundingIncrement(q0, r, y, negative, mode)
	if err != nil {
		return nil, err
	}
	if !increment {
		return q0, nil
	}

	// "increment" means add one toward +/-infinity according to the sign
	// x/y would have, even when q0 truncated to zero.
	if negative {
		return q0.Sub(One), nil
	}
	return q0.Add(One), nil
}

// DivideRounded computes x/y, rounded under mode, as a BigInt. It is the
// coefficient-level primitive behind BigDecimal.Rescale/Round and is also
// exposed for callers (such as the transcendental extensions) that need
// rounded integer division directly.
func DivideRounded(x, y *BigInt, mode RoundingMode) (*BigInt, error) {
	return divideWithRounding(x, y, mode)
}

// roundingIncrement decides whether divideWithRounding should nudge the
// truncated quotient q0 one unit toward infinity. negative is the true
// sign of x/y (x.sign != y.sign) — q0 and r alone can't tell Ceiling and
// Floor apart from a quotient whose magnitude truncates to zero.
func roundingIncrement(q0, r, y *BigInt, negative bool, mode RoundingMode) (bool, error) {
	switch mode {
	case Unnecessary:
		return false, newError(Arithmetic, "rounding necessary")
	case Ceiling:
		return !negative, nil
	case Floor:
		return negative, nil
	case Down:
		return false, nil
	case Up:
		return true, nil
	case HalfDown, HalfUp, HalfEven:
		twiceR := r.Abs().shiftLeft1()
		absY := y.Abs()
		cmp := twiceR.CmpAbs(absY)
		switch mode {
		case HalfDown:
			return cmp > 0, nil
		case HalfUp:
			return cmp >= 0, nil
		default: // HalfEven
			if cmp > 0 {
				return true, nil
			}
			if cmp < 0 {
				return false, nil
			}
			return q0.isOdd(), nil
		}
	default:
		return false, newError(InvalidOperation, "unknown rounding mode")
	}
}
