// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dcf77

import "github.com/complex-gh/dcf77_go/internal/bitfield"

// Field identifies a pulse-encoded field of the frame
type Field int

const (
	// FieldMinute is the minute of the hour, seconds 21..28
	FieldMinute Field = iota

	// FieldHour is the hour of the day, seconds 29..35
	FieldHour

	// FieldDay is the day of the month, seconds 36..41
	FieldDay

	// FieldWeekday is the day of the week, seconds 42..44
	FieldWeekday

	// FieldMonth is the month of the year, seconds 45..49
	FieldMonth

	// FieldYear is the two-digit year, seconds 50..58
	FieldYear
)

var fieldNames = [NumFields]string{"minute", "hour", "day", "weekday", "month", "year"}

func (f Field) String() string {
	if f < 0 || int(f) >= NumFields {
		return "unknown"
	}
	return fieldNames[f]
}

// fieldDef binds a field to its place in the carrier
type fieldDef struct {
	field   Field
	section bitfield.Section
	min     uint32
}

// fields is the carrier layout, in encode and decode order
var fields = [NumFields]fieldDef{
	{FieldMinute, bitfield.Section{Mask: 0x7F, Offset: 32, Parity: 1 << 31, Max: 60}, 0},
	{FieldHour, bitfield.Section{Mask: 0x3F, Offset: 25, Parity: 1 << 24, Max: 24}, 0},
	{FieldDay, bitfield.Section{Mask: 0x3F, Offset: 18, Max: 32}, 1},
	{FieldWeekday, bitfield.Section{Mask: 0x07, Offset: 15, Max: 8}, 1},
	{FieldMonth, bitfield.Section{Mask: 0x1F, Offset: 10, Max: 13}, 1},
	{FieldYear, bitfield.Section{Mask: 0xFF, Offset: 2, Parity: 1 << 1, Max: 100}, 0},
}

// lookupField returns the definition of a field
func lookupField(f Field) (fieldDef, bool) {
	if f < 0 || int(f) >= NumFields {
		return fieldDef{}, false
	}
	return fields[f], true
}

// FieldRange returns the legal values of a field as [min, max)
func FieldRange(f Field) (min, max uint32) {
	def, ok := lookupField(f)
	if !ok {
		return 0, 0
	}
	return def.min, def.section.Max
}

// FieldBits returns the carrier bits owned by a field, parity included
func FieldBits(f Field) Carrier {
	def, ok := lookupField(f)
	if !ok {
		return 0
	}
	return Carrier(def.section.Bits())
}
