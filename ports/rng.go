package ports

// RNGPort is the contract of the stream-partitioned uniform source. A single
// seed deterministically derives a fixed table of independent streams;
// drawing from one stream never disturbs another.
//
// Implementations must make each draw atomic per stream: two callers may
// draw from distinct streams concurrently, but draws against the same
// stream index are serialized so the advance-and-return step never
// interleaves.
type RNGPort interface {
	// NumStreams returns the fixed stream table size, for bounds checks.
	NumStreams() int

	// Uniform returns one value in [low, high) from the given stream,
	// advancing that stream's state by exactly one draw. An out-of-range
	// stream index fails with a STREAM_OUT_OF_RANGE error and consumes
	// no randomness.
	Uniform(stream int, low, high float64) (float64, error)

	// Reseed rebuilds the whole stream table deterministically from seed.
	// Re-deriving from the same seed always reproduces the identical table.
	Reseed(seed int64)

	// ReseedFromEntropy rebuilds the table from fresh operating-system
	// entropy, establishing a non-reproducible state.
	ReseedFromEntropy() error
}
