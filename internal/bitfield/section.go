// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bitfield

import (
	"errors"
	"math/bits"
)

var (
	ErrRange  = errors.New("bitfield: value out of range")
	ErrParity = errors.New("bitfield: parity mismatch")
)

// Section describes where a pulse value lives inside the carrier
type Section struct {
	// Mask selects the pulse bits before shifting. Its population count
	// is the number of weights in use.
	Mask uint64

	// Offset is the carrier position of the least significant pulse bit
	Offset uint

	// Parity is the carrier bit holding even parity, or 0 for none
	Parity uint64

	// Max is the exclusive upper bound of the encoded value
	Max uint32
}

// width returns the number of weights used by the section
func (s Section) width() int {
	return bits.OnesCount64(s.Mask)
}

// placed returns the section's data mask in carrier position
func (s Section) placed() uint64 {
	return s.Mask << s.Offset
}

// Encode returns the carrier fragment holding v and its parity bit
func (s Section) Encode(v uint32) (uint64, error) {
	if v >= s.Max {
		return 0, ErrRange
	}

	out := (EncodePulse(v, s.width()) << s.Offset) & s.placed()

	// Even parity over data and check bit
	if s.Parity != 0 && bits.OnesCount64(out)%2 != 0 {
		out |= s.Parity
	}

	return out, nil
}

// Decode extracts the section's value from a carrier.
//
// The value is not checked against Max; the weight prefix and parity bound it.
func (s Section) Decode(c uint64) (uint32, error) {
	data := c & s.placed()
	if s.Parity != 0 && bits.OnesCount64(data|c&s.Parity)%2 != 0 {
		return 0, ErrParity
	}
	return DecodePulse(data>>s.Offset, s.width()), nil
}

// Bits returns every carrier bit owned by the section, parity included
func (s Section) Bits() uint64 {
	return s.placed() | s.Parity
}
