package validator_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

func assertDecimal(t *testing.T, v validator.Validator, raw any, want string) {
	t.Helper()
	got, err := v.Validate(raw)
	require.NoError(t, err, "unexpected error for %#v", raw)
	d, ok := got.(decimal.Decimal)
	require.True(t, ok, "expected decimal.Decimal, got %T", got)
	assert.True(t, decimal.RequireFromString(want).Equal(d), "want %s, got %s", want, d)
}

func TestFixedPrecision(t *testing.T) {
	t.Parallel()

	t.Run("rounds to minor digits", func(t *testing.T) {
		v := validator.FixedPrecision(validator.MinorDigits(2), validator.MajorDigits(3))

		assertDecimal(t, v, "123", "123.00")
		assertDecimal(t, v, "123.45", "123.45")
		assertDecimal(t, v, 0.12345, "0.12")
		assertDecimal(t, v, 12.345, "12.35")
		assertDecimal(t, v, json.Number("1.005"), "1.01")
		assertDecimal(t, v, 42, "42")
		assertDecimal(t, v, decimal.RequireFromString("12.35"), "12.35")
	})

	t.Run("keeps the rounded scale", func(t *testing.T) {
		v := validator.FixedPrecision(validator.MinorDigits(2))
		got, err := v.Validate("123")
		require.NoError(t, err)
		assert.Equal(t, "123.00", got.(decimal.Decimal).StringFixed(2))
	})

	t.Run("major digits imply bounds", func(t *testing.T) {
		v := validator.FixedPrecision(validator.MinorDigits(2), validator.MajorDigits(3))

		assertInvalid(t, v, []invalidCase{
			{1000, maxValueMsg("999.99")},
			{999.999, maxValueMsg("999.99")},
			{-1000, minValueMsg("-999.99")},
			{"123abc", valueMsg("number")},
			{map[string]any{}, typeMsg("number")},
			{strings.Repeat("9", 1000), msg(validator.KindTooLarge)},
			{"1e-999999999", msg(validator.KindTooLarge)},
			{"1e-129", msg(validator.KindTooLarge)},
			{"0e-200", msg(validator.KindTooLarge)},
			{nil, msg(validator.KindNull)},
			{"", msg(validator.KindBlank)},
		})
	})

	t.Run("exponent at the limit is accepted", func(t *testing.T) {
		v := validator.FixedPrecision()
		assertDecimal(t, v, "1e-128", "0.00")
		assertDecimal(t, v, "0e-128", "0.00")
	})

	t.Run("explicit bounds with null allowed", func(t *testing.T) {
		v := validator.FixedPrecision(validator.AllowNull(true), validator.MinValue(10))

		assertValid(t, v, []validCase{{nil, nil}})
		assertDecimal(t, v, "99.99", "99.99")
		assertInvalid(t, v, []invalidCase{
			{9, minValueMsg("10")},
		})
	})

	t.Run("tighter explicit max wins over digits", func(t *testing.T) {
		v := validator.FixedPrecision(validator.MajorDigits(3), validator.MaxValue(50))
		assertInvalid(t, v, []invalidCase{
			{60, maxValueMsg("50")},
		})
	})
}
