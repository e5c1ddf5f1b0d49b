package streams

import (
	"sync"
	"testing"

	"gonum.org/v1/gonum/stat"

	apperrors "simvar/internal/errors"
)

func drawN(t *testing.T, p *Pool, stream, n int) []float64 {
	t.Helper()
	out := make([]float64, n)
	for i := range out {
		u, err := p.Uniform(stream, 0, 1)
		if err != nil {
			t.Fatalf("draw %d on stream %d: %v", i, stream, err)
		}
		out[i] = u
	}
	return out
}

// TestDeterminism: for any seed s, reseeding with s and drawing k uniforms
// from stream i twice yields identical sequences.
func TestDeterminism(t *testing.T) {
	p := New(42)
	first := drawN(t, p, 3, 100)

	p.Reseed(42)
	second := drawN(t, p, 3, 100)

	for k := range first {
		if first[k] != second[k] {
			t.Fatalf("draw %d differs after reseed: %v != %v", k, first[k], second[k])
		}
	}
}

// TestReseedReplacesWholeTable: a reseed mid-use restores every stream, not
// just the ones that have been drawn from.
func TestReseedReplacesWholeTable(t *testing.T) {
	p := New(7)
	baseline0 := drawN(t, p, 0, 5)
	baseline127 := drawN(t, p, 127, 5)

	// Advance some streams unevenly, then reseed.
	drawN(t, p, 0, 13)
	drawN(t, p, 64, 99)
	p.Reseed(7)

	if again := drawN(t, p, 0, 5); !equal(again, baseline0) {
		t.Error("stream 0 not restored by reseed")
	}
	if again := drawN(t, p, 127, 5); !equal(again, baseline127) {
		t.Error("stream 127 not restored by reseed")
	}
}

// TestStreamsBitwiseDistinct: under one seed, every pair of streams produces
// a distinct sequence.
func TestStreamsBitwiseDistinct(t *testing.T) {
	p := New(1)

	const k = 8
	seqs := make([][]float64, NumStreams)
	for i := range seqs {
		seqs[i] = drawN(t, p, i, k)
	}

	for i := 0; i < NumStreams; i++ {
		for j := i + 1; j < NumStreams; j++ {
			if equal(seqs[i], seqs[j]) {
				t.Fatalf("streams %d and %d produced identical %d-draw sequences", i, j, k)
			}
		}
	}
}

// TestStreamCrossCorrelation spot-checks that adjacent streams show no
// short-lag cross-correlation beyond chance.
func TestStreamCrossCorrelation(t *testing.T) {
	p := New(1234)

	const n = 2000
	a := drawN(t, p, 0, n)
	b := drawN(t, p, 1, n)

	r := stat.Correlation(a, b, nil)
	// For independent U(0,1) samples of this size, |r| beyond ~3/sqrt(n)
	// (~0.067) would be suspicious; allow a margin.
	if r > 0.1 || r < -0.1 {
		t.Errorf("streams 0 and 1 correlate: r=%v", r)
	}
}

func TestUniformBounds(t *testing.T) {
	p := New(5)
	for i := 0; i < 10000; i++ {
		u, err := p.Uniform(2, 2.0, 5.0)
		if err != nil {
			t.Fatal(err)
		}
		if u < 2.0 || u >= 5.0 {
			t.Fatalf("draw %d out of [2,5): %v", i, u)
		}
	}
}

func TestUniformOutOfRangeStream(t *testing.T) {
	p := New(5)
	for _, stream := range []int{-1, NumStreams, NumStreams + 10} {
		_, err := p.Uniform(stream, 0, 1)
		if err == nil {
			t.Errorf("stream %d must fail", stream)
			continue
		}
		if apperrors.GetCode(err) != apperrors.CodeStreamOutOfRange {
			t.Errorf("stream %d: wrong code %s", stream, apperrors.GetCode(err))
		}
	}
}

// TestFailedDrawConsumesNothing: an out-of-range lookup must leave every
// stream's state untouched.
func TestFailedDrawConsumesNothing(t *testing.T) {
	p := New(42)
	q := New(42)

	if _, err := p.Uniform(-1, 0, 1); err == nil {
		t.Fatal("expected error")
	}
	if _, err := p.Uniform(NumStreams, 0, 1); err == nil {
		t.Fatal("expected error")
	}

	for i := 0; i < NumStreams; i += 17 {
		if a, b := drawN(t, p, i, 3), drawN(t, q, i, 3); !equal(a, b) {
			t.Fatalf("stream %d advanced by a failed call", i)
		}
	}
}

// TestConcurrentDistinctStreams: concurrent draws from distinct streams must
// each reproduce the serial per-stream sequence.
func TestConcurrentDistinctStreams(t *testing.T) {
	serial := New(99)
	concurrent := New(99)

	const perStream = 200
	want := make([][]float64, NumStreams)
	for i := range want {
		want[i] = drawN(t, serial, i, perStream)
	}

	got := make([][]float64, NumStreams)
	var wg sync.WaitGroup
	for i := 0; i < NumStreams; i++ {
		wg.Add(1)
		go func(stream int) {
			defer wg.Done()
			out := make([]float64, perStream)
			for k := range out {
				u, err := concurrent.Uniform(stream, 0, 1)
				if err != nil {
					t.Errorf("stream %d: %v", stream, err)
					return
				}
				out[k] = u
			}
			got[stream] = out
		}(i)
	}
	wg.Wait()

	for i := range want {
		if !equal(got[i], want[i]) {
			t.Fatalf("stream %d: concurrent sequence differs from serial", i)
		}
	}
}

func TestNewFromEntropy(t *testing.T) {
	p, err := NewFromEntropy()
	if err != nil {
		t.Fatalf("entropy seeding failed: %v", err)
	}
	if _, err := p.Uniform(0, 0, 1); err != nil {
		t.Fatalf("draw after entropy seed: %v", err)
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
