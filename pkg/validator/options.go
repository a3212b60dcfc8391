package validator

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Option names, as reported when a constructor rejects an option.
const (
	optAllowNull       = "allow_null"
	optAllowBlank      = "allow_blank"
	optMinLength       = "min_length"
	optMaxLength       = "max_length"
	optMinValue        = "min_value"
	optMaxValue        = "max_value"
	optMajorDigits     = "major_digits"
	optMinorDigits     = "minor_digits"
	optAllowEmpty      = "allow_empty"
	optDefaultTimezone = "default_timezone"
)

// Option configures a validator at construction time.
// Every constructor accepts a fixed set of options and panics on any other,
// so a misconfigured validator tree fails at startup rather than per request.
type Option struct {
	name  string
	apply func(*options)
}

// Name returns the option name, e.g. "max_length".
func (o Option) Name() string { return o.name }

type options struct {
	allowNull   bool
	allowBlank  *bool
	minLength   *int
	maxLength   *int
	minValue    *decimal.Decimal
	maxValue    *decimal.Decimal
	majorDigits *int
	minorDigits *int
	allowEmpty  *bool
	location    *time.Location
}

func buildOptions(kind string, supported []string, opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt.apply == nil {
			panic(fmt.Errorf("validator: %s: zero Option", kind))
		}
		if !slices.Contains(supported, opt.name) {
			panic(fmt.Errorf("validator: %s does not support option %q", kind, opt.name))
		}
		opt.apply(&o)
	}
	return o
}

func (o options) blankAllowed(def bool) bool {
	if o.allowBlank == nil {
		return def
	}
	return *o.allowBlank
}

func (o options) emptyAllowed() bool {
	return o.allowEmpty == nil || *o.allowEmpty
}

// AllowNull makes null input produce a nil result instead of a "null" failure.
// Blank strings also resolve to nil for validators without blank allowance.
func AllowNull(allow bool) Option {
	return Option{name: optAllowNull, apply: func(o *options) { o.allowNull = allow }}
}

// AllowBlank controls whether a blank string is accepted.
func AllowBlank(allow bool) Option {
	return Option{name: optAllowBlank, apply: func(o *options) { o.allowBlank = &allow }}
}

// MinLength sets the minimum text length in characters.
func MinLength(n int) Option {
	if n < 0 {
		panic("MinLength: length must be >= 0")
	}
	return Option{name: optMinLength, apply: func(o *options) { o.minLength = &n }}
}

// MaxLength sets the maximum text length in characters.
func MaxLength(n int) Option {
	if n < 0 {
		panic("MaxLength: length must be >= 0")
	}
	return Option{name: optMaxLength, apply: func(o *options) { o.maxLength = &n }}
}

// MinValue sets the inclusive lower bound of a numeric validator.
func MinValue(v float64) Option {
	return MinValueDecimal(decimal.NewFromFloat(v))
}

// MaxValue sets the inclusive upper bound of a numeric validator.
func MaxValue(v float64) Option {
	return MaxValueDecimal(decimal.NewFromFloat(v))
}

func MinValueDecimal(v decimal.Decimal) Option {
	return Option{name: optMinValue, apply: func(o *options) { o.minValue = &v }}
}

func MaxValueDecimal(v decimal.Decimal) Option {
	return Option{name: optMaxValue, apply: func(o *options) { o.maxValue = &v }}
}

// MajorDigits bounds the number of integer digits of a fixed precision value.
func MajorDigits(n int) Option {
	if n < 0 {
		panic("MajorDigits: digits must be >= 0")
	}
	return Option{name: optMajorDigits, apply: func(o *options) { o.majorDigits = &n }}
}

// MinorDigits sets the number of fractional digits a fixed precision value is rounded to.
func MinorDigits(n int) Option {
	if n < 0 {
		panic("MinorDigits: digits must be >= 0")
	}
	return Option{name: optMinorDigits, apply: func(o *options) { o.minorDigits = &n }}
}

// AllowEmpty controls whether an empty list or mapping is accepted. Default true.
func AllowEmpty(allow bool) Option {
	return Option{name: optAllowEmpty, apply: func(o *options) { o.allowEmpty = &allow }}
}

// DefaultTimezone is applied to date-time strings without an offset.
func DefaultTimezone(loc *time.Location) Option {
	if loc == nil {
		panic("DefaultTimezone: nil location")
	}
	return Option{name: optDefaultTimezone, apply: func(o *options) { o.location = loc }}
}
