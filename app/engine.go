package app

import (
	"simvar/internal/validate"
	"simvar/ports"
)

// DrawEngine turns a requested count into one or more raw U(0,1) draws from
// a chosen stream, applying the antithetic transform uniformly. It holds no
// state of its own; the injected RNG port owns the stream table.
type DrawEngine struct {
	rng ports.RNGPort
}

// NewDrawEngine creates a draw engine backed by the given stream source.
func NewDrawEngine(rng ports.RNGPort) *DrawEngine {
	return &DrawEngine{rng: rng}
}

// Generate returns n successive U(0,1) draws from the given stream, in draw
// order. When antithetic is true each draw u is replaced by 1-u after the
// draw; the stream still advances by exactly n steps either way.
//
// Validation precedes consumption: a failed call never advances the stream.
func (e *DrawEngine) Generate(n, stream int, antithetic bool) ([]float64, error) {
	if err := validate.Count("generate", n); err != nil {
		return nil, err
	}
	if err := validate.Stream("generate", stream, e.rng.NumStreams()); err != nil {
		return nil, err
	}

	u := make([]float64, n)
	for i := range u {
		v, err := e.rng.Uniform(stream, 0, 1)
		if err != nil {
			return nil, err
		}
		if antithetic {
			v = 1 - v
		}
		u[i] = v
	}
	return u, nil
}
