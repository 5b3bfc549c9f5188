package kernel

import (
	"fmt"
	"time"

	"procurement/internal/pkg/errs"
)

// ISODateLayout is the calendar-date layout used for all persisted dates.
const ISODateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not properly initialized through
// one of the constructor functions. This error is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateFromString, or DateFromTime")

// Date is a value object that represents a calendar date without a time-of-day
// component. It normalizes every source representation to midnight UTC so that
// two dates compare equal regardless of how they were produced.
//
// The zero value of Date is invalid and stands for "no date". Lifecycle dates
// on an order use *Date with nil meaning the order never reached that state.
//
// Date is immutable and safe for concurrent use.
//
// Example usage:
//
//	today := kernel.Today()
//	shipped, err := kernel.DateFromString("2026-03-14")
//	if err != nil {
//	    // handle error
//	}
//	if shipped.After(today) {
//	    // shipped date lies in the future
//	}
type Date struct {
	t time.Time
}

// NewDate creates a Date from its calendar components.
// Returns an error if the components do not name a real calendar day
// (for example month 13 or February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%04d-%02d-%02d is not a valid calendar date", year, int(month), day))
	}
	return Date{t: t}, nil
}

// DateFromString parses a Date from its ISO calendar-date representation ("2006-01-02").
// This is the encoding used by the persistence layer; any other format is rejected.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return Date{t: t}, nil
}

// DateFromTime truncates a native timestamp to its calendar date.
// The timestamp's own location is used to pick the day before normalizing to UTC,
// so a stored local-midnight value maps back to the same calendar day.
func DateFromTime(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return DateFromTime(time.Now())
}

// DecodeDate converts a stored field value of unknown runtime representation
// into a Date. It is the single decode point for temporal values at the store
// boundary: ISO strings and native timestamps are accepted transparently,
// while nil, empty strings, and malformed values map to absent rather than
// an error.
func DecodeDate(v any) (Date, bool) {
	switch val := v.(type) {
	case nil:
		return Date{}, false
	case string:
		if val == "" {
			return Date{}, false
		}
		d, err := DateFromString(val)
		if err != nil {
			return Date{}, false
		}
		return d, true
	case time.Time:
		if val.IsZero() {
			return Date{}, false
		}
		return DateFromTime(val), true
	case *time.Time:
		if val == nil || val.IsZero() {
			return Date{}, false
		}
		return DateFromTime(*val), true
	case Date:
		if val.IsZero() {
			return Date{}, false
		}
		return val, true
	default:
		return Date{}, false
	}
}

// String returns the ISO calendar-date representation ("2006-01-02").
// A zero-value Date renders as the empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISODateLayout)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the Date is the zero value (no date).
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// IsEqual compares two dates for calendar equality.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
