package app

import (
	"math"

	"simvar/domain/dist"
	"simvar/domain/variate"
	"simvar/internal/validate"
	"simvar/ports"
)

// Options selects the stream a variate call draws from and whether the
// antithetic transform (1-u) is applied. The zero value draws plain
// uniforms from stream 0.
type Options struct {
	Stream     int
	Antithetic bool
}

// VariateService is the caller-facing variate generator: one method per
// supported distribution, each validating its own parameters before any
// randomness is consumed and then delegating to the shared inverter.
//
// The service is an explicit handle over an injected stream pool; multiple
// independent services (one per test, one per simulation) never interfere.
type VariateService struct {
	rng      ports.RNGPort
	inverter *Inverter
}

// NewVariateService wires a variate service over the given stream source.
func NewVariateService(rng ports.RNGPort) *VariateService {
	return &VariateService{
		rng:      rng,
		inverter: NewInverter(NewDrawEngine(rng)),
	}
}

// SetSeed deterministically rebuilds the stream table from seed.
func (s *VariateService) SetSeed(seed int64) {
	s.rng.Reseed(seed)
}

// SetSeedFromEntropy rebuilds the stream table from system entropy.
func (s *VariateService) SetSeedFromEntropy() error {
	return s.rng.ReseedFromEntropy()
}

// NumStreams returns the fixed stream table size.
func (s *VariateService) NumStreams() int {
	return s.rng.NumStreams()
}

// Unif generates n U(min,max) variates by inversion.
func (s *VariateService) Unif(n int, min, max float64, opt Options) ([]float64, error) {
	return s.invert("vunif", n, dist.Uniform{Min: min, Max: max}, opt)
}

// UnifRecord is Unif with the {u, x} introspection record.
func (s *VariateService) UnifRecord(n int, min, max float64, opt Options) (*variate.Record, error) {
	return s.invertRecord("vunif", n, dist.Uniform{Min: min, Max: max}, opt)
}

// Unif1 generates a single U(min,max) variate.
func (s *VariateService) Unif1(min, max float64, opt Options) (float64, error) {
	return first(s.Unif(1, min, max, opt))
}

// Exp generates n exponential(rate) variates by inversion.
func (s *VariateService) Exp(n int, rate float64, opt Options) ([]float64, error) {
	return s.invert("vexp", n, dist.Exponential{Rate: rate}, opt)
}

// ExpRecord is Exp with the {u, x} introspection record.
func (s *VariateService) ExpRecord(n int, rate float64, opt Options) (*variate.Record, error) {
	return s.invertRecord("vexp", n, dist.Exponential{Rate: rate}, opt)
}

// Exp1 generates a single exponential(rate) variate.
func (s *VariateService) Exp1(rate float64, opt Options) (float64, error) {
	return first(s.Exp(1, rate, opt))
}

// Norm generates n normal(mean, sd) variates by inversion.
func (s *VariateService) Norm(n int, mean, sd float64, opt Options) ([]float64, error) {
	return s.invert("vnorm", n, dist.Normal{Mean: mean, SD: sd}, opt)
}

// NormRecord is Norm with the {u, x} introspection record.
func (s *VariateService) NormRecord(n int, mean, sd float64, opt Options) (*variate.Record, error) {
	return s.invertRecord("vnorm", n, dist.Normal{Mean: mean, SD: sd}, opt)
}

// Norm1 generates a single normal(mean, sd) variate.
func (s *VariateService) Norm1(mean, sd float64, opt Options) (float64, error) {
	return first(s.Norm(1, mean, sd, opt))
}

// Binom generates n binomial(size, prob) variates by inversion. The quantile
// image is truncated toward zero to the discrete distribution's natural
// integer type.
func (s *VariateService) Binom(n, size int, prob float64, opt Options) ([]int, error) {
	xs, err := s.invert("vbinom", n, dist.Binomial{Size: size, Prob: prob}, opt)
	if err != nil {
		return nil, err
	}
	return truncToInts(xs), nil
}

// BinomRecord is Binom with the {u, x} introspection record; x carries the
// integer variates.
func (s *VariateService) BinomRecord(n, size int, prob float64, opt Options) (*variate.IntRecord, error) {
	rec, err := s.invertRecord("vbinom", n, dist.Binomial{Size: size, Prob: prob}, opt)
	if err != nil {
		return nil, err
	}
	return &variate.IntRecord{U: rec.U, X: truncToInts(rec.X)}, nil
}

// Binom1 generates a single binomial(size, prob) variate.
func (s *VariateService) Binom1(size int, prob float64, opt Options) (int, error) {
	return first(s.Binom(1, size, prob, opt))
}

// invert runs the shared precondition checks, then the generic inversion.
// All checks complete before the first draw, so invalid calls consume no
// randomness and the inverter never receives invalid parameters.
func (s *VariateService) invert(op string, n int, spec dist.Spec, opt Options) ([]float64, error) {
	if err := s.precheck(op, n, spec, opt); err != nil {
		return nil, err
	}
	return s.inverter.Invert(n, opt.Stream, opt.Antithetic, spec)
}

func (s *VariateService) invertRecord(op string, n int, spec dist.Spec, opt Options) (*variate.Record, error) {
	if err := s.precheck(op, n, spec, opt); err != nil {
		return nil, err
	}
	return s.inverter.InvertRecord(n, opt.Stream, opt.Antithetic, spec)
}

func (s *VariateService) precheck(op string, n int, spec dist.Spec, opt Options) error {
	if err := validate.Count(op, n); err != nil {
		return err
	}
	if err := validate.Stream(op, opt.Stream, s.rng.NumStreams()); err != nil {
		return err
	}
	return spec.Validate()
}

func truncToInts(xs []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(math.Trunc(x))
	}
	return out
}

func first[T any](xs []T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	return xs[0], nil
}
