// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package bitfield implements the DCF77 pulse numeral and the placement of
// pulse values into a 64-bit carrier word.
package bitfield

const (
	// NumWeights is the number of pulse weights
	NumWeights = 8
)

// weights are the values carried by bits 0..7 of a pulse. Not binary.
var weights = [NumWeights]uint32{1, 2, 4, 8, 10, 20, 40, 80}

// clampWeights limits a bit count to the weight table
func clampWeights(n int) int {
	if n < 0 {
		return 0
	}
	if n > NumWeights {
		return NumWeights
	}
	return n
}

// EncodePulse converts v into pulse bits using the first n weights.
//
// The weights are tried from the largest to the smallest and a bit is set
// whenever the remaining value is at least its weight. Values the prefix
// cannot represent are encoded lossily; callers check ranges beforehand.
func EncodePulse(v uint32, n int) uint64 {
	n = clampWeights(n)
	var out uint64
	for i := n - 1; i >= 0; i-- {
		if v >= weights[i] {
			out |= 1 << uint(i)
			v -= weights[i]
		}
	}
	return out
}

// DecodePulse sums the weights of the set bits among the first n
func DecodePulse(bits uint64, n int) uint32 {
	n = clampWeights(n)
	var out uint32
	for i := n - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			out += weights[i]
		}
	}
	return out
}

// MaxPulse returns the largest value the first n weights can represent
func MaxPulse(n int) uint32 {
	n = clampWeights(n)
	var sum uint32
	for _, w := range weights[:n] {
		sum += w
	}
	return sum
}
