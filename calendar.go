// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package dcf77

import "time"

const (
	// DefaultPivot is the first year of the century window used to expand
	// two-digit years: 00..99 map to 2000..2099
	DefaultPivot = 2000

	// cetOffset is the UTC offset of Central European Time
	cetOffset = 1 * 60 * 60

	// cestOffset is the UTC offset of Central European Summer Time
	cestOffset = 2 * 60 * 60
)

var (
	// CET is the zone broadcast while standard time is active
	CET = time.FixedZone("CET", cetOffset)

	// CEST is the zone broadcast while daylight saving time is active
	CEST = time.FixedZone("CEST", cestOffset)
)

// ExpandYear converts a two-digit year into the hundred-year window
// starting at pivot
func ExpandYear(yy, pivot int) int {
	century := pivot - mod(pivot, 100)
	year := century + mod(yy, 100)
	if year < pivot {
		year += 100
	}
	return year
}

// mod returns the non-negative remainder of a by b
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// isoWeekday converts Go's Sunday-first weekday to Monday = 1 .. Sunday = 7
func isoWeekday(d time.Weekday) uint32 {
	if d == time.Sunday {
		return 7
	}
	return uint32(d)
}

// zoneFlags derives the zone bit from a time's location
func zoneFlags(t time.Time) Flags {
	switch name, _ := t.Zone(); name {
	case "CEST":
		return FlagDST
	case "CET":
		return FlagStandardTime
	}
	return 0
}

// FromTime builds a frame from a point in time.
//
// The date fields are taken in t's location. When flags carries no zone bit
// and t is in CET or CEST, the matching zone bit is added.
func FromTime(t time.Time, flags Flags) Frame {
	if flags&(FlagDST|FlagStandardTime) == 0 {
		flags |= zoneFlags(t)
	}
	return Frame{
		Year:    uint32(mod(t.Year(), 100)),
		Month:   uint32(t.Month()),
		Day:     uint32(t.Day()),
		Hour:    uint32(t.Hour()),
		Minute:  uint32(t.Minute()),
		Weekday: isoWeekday(t.Weekday()),
		Flags:   flags,
	}
}

// Location returns the zone announced by the frame's zone bits. Frames
// without a zone bit are reported in CET.
func (f *Frame) Location() *time.Location {
	if f.Flags.Has(FlagDST) {
		return CEST
	}
	return CET
}

// Time returns the frame as a point in time, expanding the two-digit year
// with pivot.
func (f *Frame) Time(pivot int) (time.Time, error) {
	if err := f.Validate(pivot); err != nil {
		return time.Time{}, err
	}
	year := ExpandYear(int(f.Year), pivot)
	return time.Date(year, time.Month(f.Month), int(f.Day), int(f.Hour), int(f.Minute), 0, 0, f.Location()), nil
}

// Validate checks the frame against the calendar: the date must exist and
// the weekday must match it. Ranges are checked first, as Encode does.
func (f *Frame) Validate(pivot int) error {
	for _, def := range fields {
		v := f.Get(def.field)
		if v < def.min || v >= def.section.Max {
			return &CodecError{Field: def.field, Err: StatusErrRange}
		}
	}
	if f.Flags.Has(FlagDST | FlagStandardTime) {
		return StatusErrZone
	}

	year := ExpandYear(int(f.Year), pivot)
	t := time.Date(year, time.Month(f.Month), int(f.Day), 0, 0, 0, 0, time.UTC)
	if t.Day() != int(f.Day) {
		return &CodecError{Field: FieldDay, Err: StatusErrCalendar}
	}
	if isoWeekday(t.Weekday()) != f.Weekday {
		return &CodecError{Field: FieldWeekday, Err: StatusErrCalendar}
	}
	return nil
}
