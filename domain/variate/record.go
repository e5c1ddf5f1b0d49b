// Package variate defines the result shapes of variate generation.
package variate

// Record is the introspection output of an inversion: the raw (or
// antithetic-adjusted) uniforms alongside their quantile images,
// index-aligned so X[k] is the inverted image of U[k]. It exists for
// pedagogical visualization of the inverse-transform mapping.
type Record struct {
	U []float64 `json:"u"`
	X []float64 `json:"x"`
}

// IntRecord is the introspection output for a discrete distribution: the
// uniforms stay floats while the inverted variates are integers.
type IntRecord struct {
	U []float64 `json:"u"`
	X []int     `json:"x"`
}
