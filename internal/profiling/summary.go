// Package profiling computes descriptive statistics over generated samples,
// used by the CLI's --summary output and the export sheets.
package profiling

import (
	"github.com/montanaflynn/stats"

	"simvar/internal/errors"
)

// SampleSummary holds the descriptive statistics of one generated sample.
type SampleSummary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Summarize computes the summary of a sample.
func Summarize(data []float64) (SampleSummary, error) {
	s := SampleSummary{N: len(data)}
	if len(data) == 0 {
		return s, errors.ValidationError("summarize: sample is empty")
	}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, errors.Wrap(err, "failed to compute mean")
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, errors.Wrap(err, "failed to compute standard deviation")
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, errors.Wrap(err, "failed to compute min")
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, errors.Wrap(err, "failed to compute max")
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, errors.Wrap(err, "failed to compute median")
	}
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		return s, errors.Wrap(err, "failed to compute q25")
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		return s, errors.Wrap(err, "failed to compute q75")
	}
	return s, nil
}

// SummarizeInts converts an integer sample (discrete variates) and
// summarizes it.
func SummarizeInts(data []int) (SampleSummary, error) {
	f := make([]float64, len(data))
	for i, v := range data {
		f[i] = float64(v)
	}
	return Summarize(f)
}
