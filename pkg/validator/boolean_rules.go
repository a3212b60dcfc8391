package validator

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Boolean accepts bool, the numbers 0 and 1 (including json.Number), and the
// strings "true" and "false".
// A blank string is false unless AllowBlank(false) is given.
func Boolean(opts ...Option) Validator {
	o := buildOptions("boolean", []string{optAllowNull, optAllowBlank}, opts)
	return booleanValidator{allowNull: o.allowNull, allowBlank: o.blankAllowed(true)}
}

// NullableBoolean is Boolean where null and blank input both resolve to nil.
func NullableBoolean(opts ...Option) Validator {
	o := buildOptions("nullable_boolean", []string{optAllowBlank}, opts)
	return booleanValidator{allowNull: true, allowBlank: o.blankAllowed(true), blankIsNull: true}
}

type booleanValidator struct {
	allowNull   bool
	allowBlank  bool
	blankIsNull bool
}

func (v booleanValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		if v.allowNull {
			return nil, nil
		}
		return nil, NewError(KindNull, nil)
	}

	switch value := raw.(type) {
	case bool:
		return value, nil
	case string:
		s := strings.TrimSpace(value)
		switch s {
		case "":
			if !v.allowBlank {
				return nil, NewError(KindBlank, nil)
			}
			if v.blankIsNull {
				return nil, nil
			}
			return false, nil
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, valueError("boolean")
	case json.Number:
		n, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
		if err != nil {
			return nil, valueError("boolean")
		}
		return numericBool(n)
	}

	n, ok := numericValue(raw)
	if !ok {
		return nil, typeError("boolean")
	}
	return numericBool(n)
}

func numericBool(n float64) (any, error) {
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return nil, valueError("boolean")
}
