// Package xoshiro implements the xoshiro256** pseudo-random bit generator
// with jump-ahead support, based on the public domain
// [C implementation].
//
// Jump() advances the internal state by 2^128 steps, which is the mechanism
// used to carve non-overlapping sub-sequences out of a single seeded
// sequence: two generators separated by a jump cannot collide for any
// realistic draw volume.
//
// [C implementation]: https://xoshiro.di.unimi.it/xoshiro256starstar.c
package xoshiro

// jumpPoly is the jump polynomial for xoshiro256; applying it is
// equivalent to 2^128 calls to Uint64.
var jumpPoly = [4]uint64{
	0x180ec6d33cfd0aba,
	0xd5a61266f0c9392c,
	0xa9582618e03fc9aa,
	0x39abdc4529b1661c,
}

// Source is a xoshiro256** generator. The zero value is invalid; construct
// one with New so the state is expanded from the seed via SplitMix64.
type Source struct {
	state [4]uint64
}

// New returns a Source whose 256-bit state is derived from seed using the
// SplitMix64 expansion recommended by the xoshiro authors. Any seed,
// including zero, yields a valid (non-degenerate) state.
func New(seed uint64) *Source {
	s := &Source{}
	sm := seed
	for i := range s.state {
		s.state[i] = splitmix64(&sm)
	}
	return s
}

// Uint64 returns the next 64 random bits, advancing the state by one step.
func (s *Source) Uint64() uint64 {
	result := rotl(s.state[1]*5, 7) * 9

	t := s.state[1] << 17

	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]

	s.state[2] ^= t

	s.state[3] = rotl(s.state[3], 45)

	return result
}

// Float64 returns a uniformly distributed value in [0, 1) with 53 bits of
// precision, advancing the state by one step.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Jump advances the state by 2^128 steps. A generator and its pre-jump copy
// produce non-overlapping sequences for up to 2^128 draws each.
func (s *Source) Jump() {
	var s0, s1, s2, s3 uint64
	for _, j := range jumpPoly {
		for b := 0; b < 64; b++ {
			if j&(1<<uint(b)) != 0 {
				s0 ^= s.state[0]
				s1 ^= s.state[1]
				s2 ^= s.state[2]
				s3 ^= s.state[3]
			}
			s.Uint64()
		}
	}
	s.state = [4]uint64{s0, s1, s2, s3}
}

// Clone returns an independent copy of the generator at its current state.
func (s *Source) Clone() *Source {
	c := *s
	return &c
}

// splitmix64 is the state expander from the xoshiro reference code; it
// guarantees the four state words are well mixed even for small seeds.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// rotl rotates x left by k bits.
func rotl(x uint64, k int) uint64 {
	return (x << k) | (x >> (64 - k))
}
