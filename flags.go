// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package dcf77

import "strings"

// Flags is a set of status bits carried alongside the date fields
type Flags uint8

const (
	// FlagAntenna indicates the backup antenna is in use (R, second 15)
	FlagAntenna Flags = 1 << iota

	// FlagDSTAnnounce announces a switch between CET and CEST (A1, second 16)
	FlagDSTAnnounce

	// FlagDST indicates daylight saving time, CEST, is active (Z1, second 17)
	FlagDST

	// FlagStandardTime indicates standard time, CET, is active (Z2, second 18)
	FlagStandardTime

	// FlagLeapSecond announces a leap second (A2, second 19)
	FlagLeapSecond

	// flagMask covers all defined flags
	flagMask = 1<<NumFlags - 1
)

// flagBits maps each flag, by its index, to its carrier bit. The layout
// follows the broadcast: Z1 and Z2 are separate seconds, so the leap second
// announcement (A2) lands on bit 40.
var flagBits = [NumFlags]Carrier{
	1 << 44,
	1 << 43,
	1 << 42,
	1 << 41,
	1 << 40,
}

var flagNames = [NumFlags]string{"antenna", "dst-announce", "dst", "standard-time", "leap-second"}

// FlagBit returns the carrier bit of a single flag
func FlagBit(f Flags) Carrier {
	var c Carrier
	for i := 0; i < NumFlags; i++ {
		if f&(1<<i) != 0 {
			c |= flagBits[i]
		}
	}
	return c
}

// Has reports whether all flags in mask are set
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// carrier returns the carrier bits of the set flags
func (f Flags) carrier() Carrier {
	return FlagBit(f & flagMask)
}

// flagsFromCarrier reads the flag bits of a carrier
func flagsFromCarrier(c Carrier) Flags {
	var f Flags
	for i, bit := range flagBits {
		if c&bit != 0 {
			f |= 1 << i
		}
	}
	return f
}

// Names returns the names of the set flags in carrier order
func (f Flags) Names() []string {
	names := []string{}
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (f Flags) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseFlag returns the flag with the given name
func ParseFlag(name string) (Flags, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range flagNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}
