package validator

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxNumeralLength is the longest numeral string any numeric validator will
// parse. Longer input fails with KindTooLarge before parsing starts.
const MaxNumeralLength = 128

var (
	numericOptions = []string{optAllowNull, optMinValue, optMaxValue}

	// Plain decimal numerals: no hex, no underscores, no inf/nan words.
	numeralRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Integer accepts Go integers, floats (truncated toward zero), json.Number
// and numeric strings, producing int64.
func Integer(opts ...Option) Validator {
	o := buildOptions("integer", numericOptions, opts)
	return integerValidator{allowNull: o.allowNull, min: o.minValue, max: o.maxValue}
}

// Number accepts Go integers, floats, json.Number and numeric strings,
// producing float64.
func Number(opts ...Option) Validator {
	o := buildOptions("number", numericOptions, opts)
	return numberValidator{allowNull: o.allowNull, min: o.minValue, max: o.maxValue}
}

type integerValidator struct {
	allowNull bool
	min, max  *decimal.Decimal
}

func (v integerValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	var n int64
	switch value := raw.(type) {
	case string, json.Number:
		s, err := numeralString(value)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nullResult(v.allowNull, KindBlank)
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err == nil:
			n = parsed
		case errors.Is(err, strconv.ErrRange):
			return nil, NewError(KindTooLarge, nil)
		default:
			// A JSON numeral such as 12.0 or 1e3 is still a number.
			if _, isNumber := value.(json.Number); !isNumber || !numeralRegex.MatchString(s) {
				return nil, valueError("integer")
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, NewError(KindTooLarge, nil)
			}
			if n, err = truncateFloat(f); err != nil {
				return nil, err
			}
		}
	case decimal.Decimal:
		whole := value.Truncate(0)
		if !whole.BigInt().IsInt64() {
			return nil, NewError(KindTooLarge, nil)
		}
		n = whole.IntPart()
	default:
		if i, ok := intValue(raw); ok {
			n = i
			break
		}
		if u, ok := uintValue(raw); ok {
			if u > math.MaxInt64 {
				return nil, NewError(KindTooLarge, nil)
			}
			n = int64(u)
			break
		}
		f, ok := floatValue(raw)
		if !ok {
			return nil, typeError("integer")
		}
		var err error
		if n, err = truncateFloat(f); err != nil {
			return nil, err
		}
	}

	if err := checkBounds(decimal.NewFromInt(n), v.min, v.max); err != nil {
		return nil, err
	}
	return n, nil
}

type numberValidator struct {
	allowNull bool
	min, max  *decimal.Decimal
}

func (v numberValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	var f float64
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
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, NewError(KindTooLarge, nil)
			}
			return nil, valueError("number")
		}
		f = parsed
	case decimal.Decimal:
		f = value.InexactFloat64()
	default:
		parsed, ok := numericValue(raw)
		if !ok {
			return nil, typeError("number")
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, valueError("number")
	}
	if err := checkBounds(decimal.NewFromFloat(f), v.min, v.max); err != nil {
		return nil, err
	}
	return f, nil
}

// truncateFloat drops the fractional part of f.
func truncateFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, valueError("integer")
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, NewError(KindTooLarge, nil)
	}
	return int64(f), nil
}

// nullResult resolves null-like input: nil when null is allowed, otherwise a
// failure of the given kind (KindNull by default).
func nullResult(allowNull bool, kind ...Kind) (any, error) {
	if allowNull {
		return nil, nil
	}
	if len(kind) > 0 {
		return nil, NewError(kind[0], nil)
	}
	return nil, NewError(KindNull, nil)
}

// numeralString trims a string or json.Number and applies the length guard.
func numeralString(raw any) (string, error) {
	var s string
	switch value := raw.(type) {
	case string:
		s = value
	case json.Number:
		s = value.String()
	}
	s = strings.TrimSpace(s)
	if len(s) > MaxNumeralLength {
		return "", NewError(KindTooLarge, nil)
	}
	return s, nil
}

func checkBounds(value decimal.Decimal, min, max *decimal.Decimal) error {
	if min != nil && value.LessThan(*min) {
		return NewError(KindMinValue, map[string]any{"min_value": min.String()})
	}
	if max != nil && value.GreaterThan(*max) {
		return NewError(KindMaxValue, map[string]any{"max_value": max.String()})
	}
	return nil
}

// numericValue converts any Go integer or float kind to float64.
// Strings and bools are not numeric.
func numericValue(raw any) (float64, bool) {
	if i, ok := intValue(raw); ok {
		return float64(i), true
	}
	if u, ok := uintValue(raw); ok {
		return float64(u), true
	}
	return floatValue(raw)
}

func intValue(raw any) (int64, bool) {
	switch value := raw.(type) {
	case int:
		return int64(value), true
	case int8:
		return int64(value), true
	case int16:
		return int64(value), true
	case int32:
		return int64(value), true
	case int64:
		return value, true
	}
	return 0, false
}

func uintValue(raw any) (uint64, bool) {
	switch value := raw.(type) {
	case uint:
		return uint64(value), true
	case uint8:
		return uint64(value), true
	case uint16:
		return uint64(value), true
	case uint32:
		return uint64(value), true
	case uint64:
		return value, true
	case uintptr:
		return uint64(value), true
	}
	return 0, false
}

func floatValue(raw any) (float64, bool) {
	switch value := raw.(type) {
	case float32:
		return float64(value), true
	case float64:
		return value, true
	}
	return 0, false
}
