package prng

import "math/bits"

// twoPow32 is used to scale a 32 bit output into the [0, 1) interval.
const twoPow32 = 4294967296.0

// Stream is a small fast counter generator (sfc32) with 128 bits of state.
// The stream is infinite and fully determined by its initial state.
// A Stream is not safe for concurrent use; every caller should own its instance.
type Stream struct {
	a, b, c, d uint32
}

// New returns a stream initialized with the four state words.
func New(a, b, c, d uint32) *Stream {
	return &Stream{a: a, b: b, c: c, d: d}
}

// FromSeed hashes the seed and returns a stream initialized with the result.
func FromSeed(seed string) *Stream {
	s := Hash128(seed)
	return New(s[0], s[1], s[2], s[3])
}

// Uint32 advances the state by one step and returns the next 32 bit output.
func (s *Stream) Uint32() uint32 {
	t := s.a + s.b + s.d
	s.d++
	s.a = s.b ^ (s.b >> 9)
	s.b = s.c + (s.c << 3)
	s.c = bits.RotateLeft32(s.c, 21)
	s.c += t

	return t
}

// Next returns the next value of the stream in the [0, 1) interval.
func (s *Stream) Next() float64 {
	return float64(s.Uint32()) / twoPow32
}
