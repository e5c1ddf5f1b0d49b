// Package validate holds the numeric-range precondition checks shared by the
// variate functions. Every check runs at the call boundary before any
// randomness is consumed, so a failed call never partially advances a
// stream. Type checking is left to the compiler; only range constraints
// remain as runtime validators.
package validate

import (
	apperrors "simvar/internal/errors"
)

// Count requires n >= 1. op prefixes the message, e.g. "vexp".
func Count(op string, n int) error {
	if n < 1 {
		return apperrors.ValidationErrorf("%s: must generate at least one variate (n=%d)", op, n)
	}
	return nil
}

// Stream requires stream in [0, numStreams-1].
func Stream(op string, stream, numStreams int) error {
	if stream < 0 || stream >= numStreams {
		return apperrors.ValidationErrorf("%s: stream must be in [0,%d] (got %d)", op, numStreams-1, stream)
	}
	return nil
}

// Positive requires v > 0 (open lower bound).
func Positive(op, name string, v float64) error {
	if !(v > 0) {
		return apperrors.ValidationErrorf("%s: must have %s > 0 (got %v)", op, name, v)
	}
	return nil
}

// Probability requires 0 < p <= 1.
func Probability(op, name string, p float64) error {
	if !(p > 0) || p > 1 {
		return apperrors.ValidationErrorf("%s: must have 0 < %s <= 1 (got %v)", op, name, p)
	}
	return nil
}

// NonNegativeInt requires v >= 0.
func NonNegativeInt(op, name string, v int) error {
	if v < 0 {
		return apperrors.ValidationErrorf("%s: must have %s >= 0 (got %d)", op, name, v)
	}
	return nil
}

// Ordered requires lo <= hi.
func Ordered(op, loName, hiName string, lo, hi float64) error {
	if hi < lo {
		return apperrors.ValidationErrorf("%s: must have %s <= %s (got %v > %v)", op, loName, hiName, lo, hi)
	}
	return nil
}
