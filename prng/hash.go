// Package prng implements the seeded pseudo-random machinery behind the avatar generator:
// a 128 bit non-cryptographic string hash used to derive the generator state
// and a small fast counter (sfc32) stream consuming that state.
//
// Neither of them is suitable for security sensitive use.
package prng

import "unicode/utf16"

// Initial values of the four hash accumulators.
const (
	seed0 uint32 = 1779033703
	seed1 uint32 = 3144134277
	seed2 uint32 = 1013904242
	seed3 uint32 = 2773480762
)

// Odd multipliers applied to each accumulator.
const (
	mul0 uint32 = 597399067
	mul1 uint32 = 2869860233
	mul2 uint32 = 951274213
	mul3 uint32 = 2716044179
)

// Hash128 maps the seed text to four 32 bit words (cyrb128).
// The input is consumed as UTF-16 code units, so that a seed containing
// characters outside the BMP hashes identically on every platform.
func Hash128(seed string) [4]uint32 {
	h1, h2, h3, h4 := seed0, seed1, seed2, seed3

	for _, r := range utf16.Encode([]rune(seed)) {
		k := uint32(r)
		h1 = h2 ^ ((h1 ^ k) * mul0)
		h2 = h3 ^ ((h2 ^ k) * mul1)
		h3 = h4 ^ ((h3 ^ k) * mul2)
		h4 = h1 ^ ((h4 ^ k) * mul3)
	}

	// Final avalanche. Every step reads the accumulators updated right before it.
	h1 = (h3 ^ (h1 >> 18)) * mul0
	h2 = (h4 ^ (h2 >> 22)) * mul1
	h3 = (h1 ^ (h3 >> 17)) * mul2
	h4 = (h2 ^ (h4 >> 19)) * mul3

	h1 ^= h2 ^ h3 ^ h4
	h2 ^= h1
	h3 ^= h1
	h4 ^= h1

	return [4]uint32{h1, h2, h3, h4}
}
