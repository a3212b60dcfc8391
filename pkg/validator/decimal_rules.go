package validator

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultMinorDigits is the number of fractional digits FixedPrecision rounds
// to when MinorDigits is not given.
const DefaultMinorDigits = 2

// FixedPrecision accepts numbers and numeric strings and produces a
// decimal.Decimal rounded half away from zero to MinorDigits fractional
// digits. MajorDigits bounds the integer part: 3 major and 2 minor digits
// imply values within [-999.99, 999.99].
//
// Numeral strings whose exponent magnitude exceeds MaxNumeralLength fail with
// KindTooLarge, including tiny or zero values such as "1e-129" and "0e-200".
func FixedPrecision(opts ...Option) Validator {
	o := buildOptions("fixed_precision",
		[]string{optAllowNull, optMinValue, optMaxValue, optMajorDigits, optMinorDigits}, opts)

	v := fixedPrecisionValidator{
		allowNull: o.allowNull,
		minor:     DefaultMinorDigits,
		min:       o.minValue,
		max:       o.maxValue,
	}
	if o.minorDigits != nil {
		v.minor = int32(*o.minorDigits)
	}
	if o.majorDigits != nil {
		limit := decimal.New(1, int32(*o.majorDigits)).Sub(decimal.New(1, -v.minor))
		if v.max == nil || limit.LessThan(*v.max) {
			v.max = &limit
		}
		if floor := limit.Neg(); v.min == nil || floor.GreaterThan(*v.min) {
			v.min = &floor
		}
	}
	return v
}

type fixedPrecisionValidator struct {
	allowNull bool
	minor     int32
	min, max  *decimal.Decimal
}

func (v fixedPrecisionValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	var d decimal.Decimal
	switch value := raw.(type) {
	case string, json.Number:
		s, err := numeralString(value)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nullResult(v.allowNull, KindBlank)
		}
		if !numeralRegex.MatchString(s) {
			return nil, valueError("number")
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return nil, valueError("number")
		}
		// Rescaling cost grows with the exponent in either direction, so
		// "0e-200" is too_large even though its value is zero.
		if exp := parsed.Exponent(); exp > MaxNumeralLength || exp < -MaxNumeralLength {
			return nil, NewError(KindTooLarge, nil)
		}
		d = parsed
	case decimal.Decimal:
		d = value
	case float32:
		if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
			return nil, valueError("number")
		}
		d = decimal.NewFromFloat32(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, valueError("number")
		}
		d = decimal.NewFromFloat(value)
	default:
		if i, ok := intValue(raw); ok {
			d = decimal.NewFromInt(i)
			break
		}
		u, ok := uintValue(raw)
		if !ok {
			return nil, typeError("number")
		}
		d = decimal.NewFromUint64(u)
	}

	d = d.Round(v.minor)
	if err := checkBounds(d, v.min, v.max); err != nil {
		return nil, err
	}
	return d, nil
}
