package app

import (
	"simvar/domain/variate"
	"simvar/ports"
)

// Inverter is the generic driver shared by every distribution-specific
// variate function: it obtains uniforms from the draw engine and applies a
// quantile capability elementwise. It is distribution-agnostic, raises no
// distribution-specific errors, and assumes the capability's parameters were
// validated before it is reached.
type Inverter struct {
	engine *DrawEngine
}

// NewInverter creates an inverter over the given draw engine.
func NewInverter(engine *DrawEngine) *Inverter {
	return &Inverter{engine: engine}
}

// Invert draws n uniforms from the stream and maps each through q,
// preserving length and order. Errors from the draw engine propagate
// unmodified.
func (inv *Inverter) Invert(n, stream int, antithetic bool, q ports.Quantiler) ([]float64, error) {
	u, err := inv.engine.Generate(n, stream, antithetic)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(u))
	for i, v := range u {
		x[i] = q.Quantile(v)
	}
	return x, nil
}

// InvertRecord is Invert with introspection: it returns both the uniforms
// and their quantile images, index-aligned, for visualizing the inversion
// mapping.
func (inv *Inverter) InvertRecord(n, stream int, antithetic bool, q ports.Quantiler) (*variate.Record, error) {
	u, err := inv.engine.Generate(n, stream, antithetic)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(u))
	for i, v := range u {
		x[i] = q.Quantile(v)
	}
	return &variate.Record{U: u, X: x}, nil
}
