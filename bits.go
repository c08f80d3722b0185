// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dcf77

import (
	"math/bits"
	"strconv"
	"strings"
)

// secondBit returns the carrier bit of broadcast second s.
//
// Flag and parity seconds map to bit 59-s. Field data is sent least
// significant weight first while the carrier keeps weight 1 at the field's
// lowest bit, so data seconds are mirrored within their field.
func secondBit(s int) Carrier {
	bit := uint(NumSeconds - s)
	for _, def := range fields {
		lo := def.section.Offset
		hi := lo + uint(bits.OnesCount64(def.section.Mask)) - 1
		if bit >= lo && bit <= hi {
			bit = lo + hi - bit
			break
		}
	}
	return 1 << bit
}

// Bits renders the carrier as a receiver bit string, second 0 first.
// Second 20, the start-of-time marker, is not part of the carrier and
// renders as 0.
func (c Carrier) Bits() string {
	var b strings.Builder
	b.Grow(NumSeconds)
	for s := 0; s < NumSeconds; s++ {
		if c&secondBit(s) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseBits reads a receiver bit string of 59 seconds, second 0 first.
// Whitespace and underscores are ignored. The start-of-time marker is kept
// in the carrier and ignored by Decode.
func ParseBits(str string) (Carrier, error) {
	var c Carrier
	s := 0
	for _, r := range str {
		switch r {
		case ' ', '\t', '\n', '\r', '_':
			continue
		case '0', '1':
			if s >= NumSeconds {
				return 0, StatusErrFormat
			}
			if r == '1' {
				c |= secondBit(s)
			}
			s++
		default:
			return 0, StatusErrFormat
		}
	}
	if s != NumSeconds {
		return 0, StatusErrFormat
	}
	return c, nil
}

// ParseCarrier reads a carrier given either as a hexadecimal word with a
// 0x prefix or as a receiver bit string
func ParseCarrier(str string) (Carrier, error) {
	str = strings.TrimSpace(str)
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		v, err := strconv.ParseUint(str[2:], 16, 64)
		if err != nil {
			return 0, StatusErrFormat
		}
		return Carrier(v), nil
	}
	return ParseBits(str)
}
