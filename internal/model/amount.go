package model

import "math"

// Amount is a quantity of KALE. Negative amounts are never valid in the
// ledger; the signed type exists so that invalid external results can be
// represented and rejected rather than silently wrapped.
type Amount int64

// AddAmount returns a + b, or ErrInvalidAmount if the sum overflows.
func AddAmount(a, b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrInvalidAmount
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrInvalidAmount
	}
	return a + b, nil
}
