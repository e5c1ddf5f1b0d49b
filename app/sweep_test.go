package app

import (
	"testing"

	"simvar/adapters/streams"
	"simvar/domain/dist"
	apperrors "simvar/internal/errors"
)

func TestSweepMatchesSerialDraws(t *testing.T) {
	svc := newService(42)
	sweep := NewSweepService(svc)

	res, err := sweep.Run(50, []int{0, 5, 9}, false, dist.Exponential{Rate: 2.0})
	if err != nil {
		t.Fatal(err)
	}
	if res.RunID == "" {
		t.Error("sweep result missing run ID")
	}
	if res.Kind != dist.KindExponential {
		t.Errorf("kind: got %s", res.Kind)
	}
	if len(res.Samples) != 3 {
		t.Fatalf("got %d samples", len(res.Samples))
	}

	// Each stream's sample must equal what a serial reference run draws.
	ref := newService(42)
	for i, stream := range []int{0, 5, 9} {
		want, err := ref.Exp(50, 2.0, Options{Stream: stream})
		if err != nil {
			t.Fatal(err)
		}
		got := res.Samples[i]
		if got.Stream != stream {
			t.Errorf("sample %d tagged with stream %d, want %d", i, got.Stream, stream)
		}
		if len(got.U) != 50 || len(got.X) != 50 {
			t.Fatalf("sample %d lengths: u=%d x=%d", i, len(got.U), len(got.X))
		}
		for k := range want {
			if got.X[k] != want[k] {
				t.Fatalf("stream %d draw %d: %v != %v", stream, k, got.X[k], want[k])
			}
		}
	}
}

func TestSweepRejectsDuplicateStreams(t *testing.T) {
	sweep := NewSweepService(newService(1))

	_, err := sweep.Run(10, []int{1, 2, 1}, false, dist.Uniform{Min: 0, Max: 1})
	if !apperrors.HasCode(err, apperrors.CodeValidationError) {
		t.Errorf("duplicate streams: got %v", err)
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	sweep := NewSweepService(newService(1))

	if _, err := sweep.Run(0, []int{0}, false, dist.Uniform{Min: 0, Max: 1}); err == nil {
		t.Error("n=0 must fail")
	}
	if _, err := sweep.Run(1, nil, false, dist.Uniform{Min: 0, Max: 1}); err == nil {
		t.Error("empty stream list must fail")
	}
	if _, err := sweep.Run(1, []int{streams.NumStreams}, false, dist.Uniform{Min: 0, Max: 1}); err == nil {
		t.Error("out-of-range stream must fail")
	}
	if _, err := sweep.Run(1, []int{0}, false, dist.Exponential{Rate: 0}); err == nil {
		t.Error("invalid distribution must fail")
	}
}
