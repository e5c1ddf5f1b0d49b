package ports

// Quantiler is the inverse-CDF capability a distribution supplies to the
// variate inverter. Quantile maps a uniform draw u in [0,1] to the variate
// x with CDF(x) = u; it must be pure and non-decreasing in u.
//
// The inverter depends only on this capability, never on a concrete
// distribution type, and assumes the parameters behind it were validated
// before the capability reached it.
type Quantiler interface {
	Quantile(u float64) float64
}

// QuantileFunc adapts a plain function to the Quantiler capability.
type QuantileFunc func(u float64) float64

// Quantile calls f(u).
func (f QuantileFunc) Quantile(u float64) float64 { return f(u) }
