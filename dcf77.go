// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package dcf77 converts between civil time and the DCF77 minute frame.
package dcf77

import (
	"errors"
	"fmt"

	"github.com/complex-gh/dcf77_go/internal/bitfield"
)

// Constants
const (
	// NumSeconds is the number of data seconds in a broadcast minute
	NumSeconds = 59

	// NumFields is the number of pulse-encoded fields in a frame
	NumFields = 6

	// NumFlags is the number of single-bit status flags
	NumFlags = 5
)

// Status represents the result of a codec operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrRange indicates a field value outside its legal domain
	StatusErrRange

	// StatusErrParity indicates a parity mismatch in a received field
	StatusErrParity

	// StatusErrCalendar indicates a date that does not exist in the calendar
	StatusErrCalendar

	// StatusErrZone indicates that both time zone bits are set
	StatusErrZone

	// StatusErrFormat indicates an unparsable carrier representation
	StatusErrFormat
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrRange:
		return "value out of range"
	case StatusErrParity:
		return "parity mismatch"
	case StatusErrCalendar:
		return "date does not exist"
	case StatusErrZone:
		return "both time zone bits set"
	case StatusErrFormat:
		return "invalid carrier format"
	default:
		return "unknown error"
	}
}

// CodecError reports a failure tied to one field of the frame
type CodecError struct {
	Field Field
	Err   Status
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("dcf77: %s: %s", e.Field, e.Err.Error())
}

// Unwrap returns the underlying status
func (e *CodecError) Unwrap() error {
	return e.Err
}

// statusOf maps a bitfield error to its status
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, bitfield.ErrParity):
		return StatusErrParity
	default:
		return StatusErrRange
	}
}

// Carrier is one encoded minute. Flag and parity bits sit at bit 59-s for
// broadcast second s; within a field, weight 1 is the lowest bit. See
// Carrier.Bits for the broadcast order.
type Carrier uint64

// String renders the carrier in hexadecimal
func (c Carrier) String() string {
	return fmt.Sprintf("0x%015X", uint64(c))
}

// Frame is the content of one broadcast minute
type Frame struct {
	// Year is the two-digit year (0..99)
	Year uint32

	// Month is the month of the year (1..12)
	Month uint32

	// Day is the day of the month (1..31)
	Day uint32

	// Hour is the hour of the day (0..23)
	Hour uint32

	// Minute is the minute of the hour (0..59)
	Minute uint32

	// Weekday is the day of the week, Monday = 1 through Sunday = 7
	Weekday uint32

	// Flags are the status bits of the minute
	Flags Flags
}

// Get returns the value of a field
func (f *Frame) Get(field Field) uint32 {
	switch field {
	case FieldMinute:
		return f.Minute
	case FieldHour:
		return f.Hour
	case FieldDay:
		return f.Day
	case FieldWeekday:
		return f.Weekday
	case FieldMonth:
		return f.Month
	case FieldYear:
		return f.Year
	}
	return 0
}

// set stores the value of a field
func (f *Frame) set(field Field, v uint32) {
	switch field {
	case FieldMinute:
		f.Minute = v
	case FieldHour:
		f.Hour = v
	case FieldDay:
		f.Day = v
	case FieldWeekday:
		f.Weekday = v
	case FieldMonth:
		f.Month = v
	case FieldYear:
		f.Year = v
	}
}

// EncodeField encodes a single field value into its carrier fragment
func EncodeField(field Field, v uint32) (Carrier, error) {
	def, ok := lookupField(field)
	if !ok {
		return 0, StatusErrRange
	}
	if v < def.min {
		return 0, &CodecError{Field: field, Err: StatusErrRange}
	}
	out, err := def.section.Encode(v)
	if err != nil {
		return 0, &CodecError{Field: field, Err: statusOf(err)}
	}
	return Carrier(out), nil
}

// DecodeField extracts a single field value from a carrier
func DecodeField(field Field, c Carrier) (uint32, error) {
	def, ok := lookupField(field)
	if !ok {
		return 0, StatusErrRange
	}
	v, err := def.section.Decode(uint64(c))
	if err != nil {
		return 0, &CodecError{Field: field, Err: statusOf(err)}
	}
	return v, nil
}

// Encode encodes a frame into a carrier.
//
// Fields are checked in catalog order and the first out-of-range field is
// reported. No carrier is returned on failure.
func Encode(f Frame) (Carrier, error) {
	var c Carrier
	for _, def := range fields {
		out, err := EncodeField(def.field, f.Get(def.field))
		if err != nil {
			return 0, err
		}
		c |= out
	}
	return c | f.Flags.carrier(), nil
}

// Decode decodes a carrier into a frame.
//
// The first field failing its parity check is reported. The result is not
// checked against the calendar; see Frame.Validate.
func Decode(c Carrier) (Frame, error) {
	var f Frame
	for _, def := range fields {
		v, err := DecodeField(def.field, c)
		if err != nil {
			return Frame{}, err
		}
		f.set(def.field, v)
	}
	f.Flags = flagsFromCarrier(c)
	return f, nil
}
