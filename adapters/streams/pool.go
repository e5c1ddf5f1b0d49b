// Package streams implements the stream-partitioned uniform source: a fixed
// table of independent generators derived from one seed by repeated
// jump-ahead, so distinct stochastic components of a simulation (arrivals,
// service times, ...) can draw from uncorrelated sequences without
// re-seeding or coordination.
package streams

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync"

	"simvar/adapters/xoshiro"
	apperrors "simvar/internal/errors"
)

// NumStreams is the fixed size of the stream table.
const NumStreams = 128

// Pool owns the table of jumped generator copies and implements
// ports.RNGPort. It is an explicit handle: construct one per process (or
// per test) and inject it; there is no package-level instance.
//
// Each table entry carries its own mutex so draws against distinct streams
// never contend, while draws against the same stream are serialized. The
// table-level RWMutex orders reseeds against in-flight draws.
type Pool struct {
	mu      sync.RWMutex
	entries [NumStreams]*entry
}

type entry struct {
	mu  sync.Mutex
	src *xoshiro.Source
}

// New returns a pool deterministically derived from seed. Entry 0 wraps the
// root generator; every subsequent entry wraps a copy of its predecessor
// advanced by one jump (2^128 steps), which guarantees non-overlapping
// sequences by construction.
func New(seed int64) *Pool {
	p := &Pool{}
	p.Reseed(seed)
	return p
}

// NewFromEntropy returns a pool seeded from fresh operating-system entropy.
// The resulting table is not reproducible.
func NewFromEntropy() (*Pool, error) {
	p := &Pool{}
	if err := p.ReseedFromEntropy(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reseed rebuilds the entire stream table from seed, fully replacing any
// prior table. Values already returned are unaffected; subsequent draws
// start from the freshly derived states.
func (p *Pool) Reseed(seed int64) {
	p.reseed(uint64(seed))
}

// ReseedFromEntropy rebuilds the table from 8 bytes of system entropy.
func (p *Pool) ReseedFromEntropy() error {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return apperrors.Wrap(err, "failed to read system entropy")
	}
	p.reseed(binary.LittleEndian.Uint64(buf[:]))
	return nil
}

func (p *Pool) reseed(seed uint64) {
	var entries [NumStreams]*entry

	src := xoshiro.New(seed)
	entries[0] = &entry{src: src}
	for i := 1; i < NumStreams; i++ {
		src = src.Clone()
		src.Jump()
		entries[i] = &entry{src: src}
	}

	p.mu.Lock()
	p.entries = entries
	p.mu.Unlock()
}

// NumStreams returns the fixed table size.
func (p *Pool) NumStreams() int {
	return NumStreams
}

// Uniform returns one value in [low, high) from the generator at the given
// stream index, advancing that generator's state by exactly one draw. An
// out-of-range index is fatal to the call: no clamping, no wraparound, and
// no randomness consumed.
func (p *Pool) Uniform(stream int, low, high float64) (float64, error) {
	if stream < 0 || stream >= NumStreams {
		return 0, apperrors.StreamOutOfRange(stream, NumStreams)
	}

	p.mu.RLock()
	e := p.entries[stream]
	p.mu.RUnlock()

	e.mu.Lock()
	u := e.src.Float64()
	e.mu.Unlock()

	return low + u*(high-low), nil
}
