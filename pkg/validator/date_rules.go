package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// MaxTemporalLength is the longest date, time or date-time string the
// ISO validators will try to parse.
const MaxTemporalLength = 64

var (
	dateRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

	timeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2})(?:\.(\d{1,9}))?)?$`)

	dateTimeRegex = regexp.MustCompile(
		`^(\d{4})-(\d{1,2})-(\d{1,2})[T ](\d{1,2}):(\d{1,2})` +
			`(?::(\d{1,2})(?:\.(\d{1,9}))?)?` +
			`\s*(Z|[+-]\d{2}(?::?\d{2})?)?$`)
)

// ISODate accepts civil.Date values and YYYY-MM-DD strings.
// Date-time values are rejected with KindType.
func ISODate(opts ...Option) Validator {
	o := buildOptions("iso_date", []string{optAllowNull}, opts)
	return isoDateValidator{allowNull: o.allowNull}
}

// ISOTime accepts civil.Time values and HH:MM[:SS[.fffffffff]] strings.
func ISOTime(opts ...Option) Validator {
	o := buildOptions("iso_time", []string{optAllowNull}, opts)
	return isoTimeValidator{allowNull: o.allowNull}
}

// ISODateTime accepts time.Time, civil.DateTime and ISO 8601 date-time strings
// with optional fractional seconds and an optional Z or ±HH:MM offset.
//
// Values carrying an offset produce time.Time. Offset-less values produce
// time.Time in the DefaultTimezone when one is configured, and a naive
// civil.DateTime otherwise.
func ISODateTime(opts ...Option) Validator {
	o := buildOptions("iso_datetime", []string{optAllowNull, optDefaultTimezone}, opts)
	return isoDateTimeValidator{allowNull: o.allowNull, location: o.location}
}

type isoDateValidator struct {
	allowNull bool
}

func (v isoDateValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	switch value := raw.(type) {
	case civil.Date:
		return value, nil
	case string:
		s, err := temporalString(value)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nullResult(v.allowNull, KindBlank)
		}
		m := dateRegex.FindStringSubmatch(s)
		if m == nil {
			return nil, valueError("date")
		}
		d := civil.Date{Year: atoi(m[1]), Month: time.Month(atoi(m[2])), Day: atoi(m[3])}
		if !d.IsValid() {
			return nil, valueError("date")
		}
		return d, nil
	}
	return nil, typeError("date")
}

type isoTimeValidator struct {
	allowNull bool
}

func (v isoTimeValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	switch value := raw.(type) {
	case civil.Time:
		return value, nil
	case string:
		s, err := temporalString(value)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nullResult(v.allowNull, KindBlank)
		}
		m := timeRegex.FindStringSubmatch(s)
		if m == nil {
			return nil, valueError("time")
		}
		t := civil.Time{
			Hour:       atoi(m[1]),
			Minute:     atoi(m[2]),
			Second:     atoi(m[3]),
			Nanosecond: fraction(m[4]),
		}
		if !t.IsValid() {
			return nil, valueError("time")
		}
		return t, nil
	}
	return nil, typeError("time")
}

type isoDateTimeValidator struct {
	allowNull bool
	location  *time.Location
}

func (v isoDateTimeValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	switch value := raw.(type) {
	case time.Time:
		return value, nil
	case civil.DateTime:
		return v.naive(value), nil
	case string:
		s, err := temporalString(value)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nullResult(v.allowNull, KindBlank)
		}
		return v.parse(s)
	}
	return nil, typeError("datetime")
}

func (v isoDateTimeValidator) parse(s string) (any, error) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, valueError("datetime")
	}

	dt := civil.DateTime{
		Date: civil.Date{Year: atoi(m[1]), Month: time.Month(atoi(m[2])), Day: atoi(m[3])},
		Time: civil.Time{
			Hour:       atoi(m[4]),
			Minute:     atoi(m[5]),
			Second:     atoi(m[6]),
			Nanosecond: fraction(m[7]),
		},
	}
	if !dt.IsValid() {
		return nil, valueError("datetime")
	}

	if m[8] == "" {
		return v.naive(dt), nil
	}
	loc, ok := offsetLocation(m[8])
	if !ok {
		return nil, valueError("datetime")
	}
	return dt.In(loc), nil
}

func (v isoDateTimeValidator) naive(dt civil.DateTime) any {
	if v.location == nil {
		return dt
	}
	return dt.In(v.location)
}

// offsetLocation turns "Z", "+01", "-0130" or "+01:30" into a location.
func offsetLocation(offset string) (*time.Location, bool) {
	if offset == "Z" {
		return time.UTC, true
	}

	sign := 1
	if offset[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(offset[1:], ":", "")
	hours := atoi(digits[:2])
	minutes := 0
	if len(digits) > 2 {
		minutes = atoi(digits[2:])
	}
	if hours > 23 || minutes > 59 {
		return nil, false
	}

	seconds := sign * (hours*3600 + minutes*60)
	if seconds == 0 {
		return time.UTC, true
	}
	return time.FixedZone(offset, seconds), true
}

// temporalString trims s and applies the length guard.
func temporalString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxTemporalLength {
		return "", NewError(KindTooLarge, nil)
	}
	return s, nil
}

// atoi parses digits already matched by a pattern; empty means zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// fraction converts fractional second digits to nanoseconds.
func fraction(digits string) int {
	if digits == "" {
		return 0
	}
	return atoi(digits + strings.Repeat("0", 9-len(digits)))
}
