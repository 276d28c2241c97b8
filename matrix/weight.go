// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tagged edge/path weight: Finite(w) or Unreachable.
//   - "No path" is a distinct state, never an extreme integer, so it can not
//     leak into arithmetic and wrap around near math.MaxInt64.
//
// Contract:
//   - The zero Weight is Unreachable.
//   - Finite weights are int64; negativity is rejected at the Distance surface.

package matrix

import (
	"fmt"
	"math"
	"strconv"
)

// unreachableSymbol is how Unreachable renders in String/diagnostics.
const unreachableSymbol = "∞"

// Weight is either Finite(value) or Unreachable.
//
// Layout: value is meaningful only when finite is true. Equality via == is
// well defined because Unreachable is always stored as the zero Weight.
type Weight struct {
	value  int64
	finite bool
}

// Finite returns a reachable weight w.
func Finite(w int64) Weight { return Weight{value: w, finite: true} }

// Unreachable returns the "no known path" weight.
func Unreachable() Weight { return Weight{} }

// IsFinite reports whether w denotes an actual path length.
func (w Weight) IsFinite() bool { return w.finite }

// Value returns the path length and true, or (0, false) for Unreachable.
func (w Weight) Value() (int64, bool) { return w.value, w.finite }

// Less orders weights with every finite value below Unreachable.
// Two Unreachable weights are not Less than each other.
func (w Weight) Less(o Weight) bool {
	switch {
	case !w.finite:
		return false
	case !o.finite:
		return true
	default:
		return w.value < o.value
	}
}

// String renders a finite weight in base 10 and Unreachable as "∞".
func (w Weight) String() string {
	if !w.finite {
		return unreachableSymbol
	}

	return strconv.FormatInt(w.value, 10)
}

// MarshalYAML renders a weight as an integer, or the string "∞".
// It keeps reports readable without leaking the internal tag layout.
func (w Weight) MarshalYAML() (interface{}, error) {
	if !w.finite {
		return unreachableSymbol, nil
	}

	return w.value, nil
}

// AddWeights returns a+b.
//
// Behavior highlights:
//   - If either operand is Unreachable the result is Unreachable and no
//     arithmetic is performed.
//   - Finite sums are checked before the add; an overflowing sum returns
//     ErrWeightOverflow instead of a wrapped value.
//
// Complexity: O(1).
func AddWeights(a, b Weight) (Weight, error) {
	if !a.finite || !b.finite {
		return Unreachable(), nil
	}
	if (b.value > 0 && a.value > math.MaxInt64-b.value) ||
		(b.value < 0 && a.value < math.MinInt64-b.value) {
		return Unreachable(), fmt.Errorf("AddWeights(%d,%d): %w", a.value, b.value, ErrWeightOverflow)
	}

	return Finite(a.value + b.value), nil
}
