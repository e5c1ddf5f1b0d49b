// Package dist defines the closed set of supported distributions. Each
// variant carries its own parameters, validates them, and supplies the pure
// quantile (inverse-CDF) capability the variate inverter consumes. The
// inverter never sees concrete distribution types, only the capability.
package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"simvar/internal/validate"
)

// Kind tags a distribution variant.
type Kind string

const (
	KindUniform     Kind = "uniform"
	KindExponential Kind = "exponential"
	KindBinomial    Kind = "binomial"
	KindNormal      Kind = "normal"
)

// Spec is a distribution with validated parameters and a quantile capability.
// Quantile must only be called after Validate has passed.
type Spec interface {
	Kind() Kind
	Validate() error
	Quantile(u float64) float64
}

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min float64
	Max float64
}

func (d Uniform) Kind() Kind { return KindUniform }

// Validate requires Min <= Max.
func (d Uniform) Validate() error {
	return validate.Ordered("vunif", "min", "max", d.Min, d.Max)
}

// Quantile maps u=0 to Min and u=1 to Max, linearly in between.
func (d Uniform) Quantile(u float64) float64 {
	return distuv.Uniform{Min: d.Min, Max: d.Max}.Quantile(u)
}

// Exponential is the exponential distribution with the given rate.
type Exponential struct {
	Rate float64
}

func (d Exponential) Kind() Kind { return KindExponential }

// Validate requires Rate > 0.
func (d Exponential) Validate() error {
	return validate.Positive("vexp", "rate", d.Rate)
}

func (d Exponential) Quantile(u float64) float64 {
	return distuv.Exponential{Rate: d.Rate}.Quantile(u)
}

// Normal is the normal distribution with the given mean and standard
// deviation.
type Normal struct {
	Mean float64
	SD   float64
}

func (d Normal) Kind() Kind { return KindNormal }

// Validate requires SD > 0.
func (d Normal) Validate() error {
	return validate.Positive("vnorm", "sd", d.SD)
}

func (d Normal) Quantile(u float64) float64 {
	return distuv.Normal{Mu: d.Mean, Sigma: d.SD}.Quantile(u)
}

// Binomial is the binomial distribution with Size trials and per-trial
// success probability Prob.
type Binomial struct {
	Size int
	Prob float64
}

func (d Binomial) Kind() Kind { return KindBinomial }

// Validate requires Size >= 0 and 0 < Prob <= 1.
func (d Binomial) Validate() error {
	if err := validate.NonNegativeInt("vbinom", "size", d.Size); err != nil {
		return err
	}
	return validate.Probability("vbinom", "prob", d.Prob)
}

// Quantile returns the smallest integer k in [0, Size] with CDF(k) >= u,
// as a float64 so the capability signature stays uniform across variants.
// Callers truncate toward zero to obtain the integer variate.
func (d Binomial) Quantile(u float64) float64 {
	b := distuv.Binomial{N: float64(d.Size), P: d.Prob}
	for k := 0; k < d.Size; k++ {
		if b.CDF(float64(k)) >= u {
			return float64(k)
		}
	}
	return float64(d.Size)
}
