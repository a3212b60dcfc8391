// Package validator coerces loosely typed input, as produced by decoding JSON
// bodies, query strings or environment variables, into well typed Go values,
// or explains in a structured way why it could not.
//
// A Validator is built once from a constructor and a set of Option values and
// then called per input with Validate. Validators hold no mutable state, so a
// single validator tree can be shared by any number of goroutines.
//
// # Architecture
//
// Each source file groups a family of validators:
//
//   - boolean_rules.go   : Boolean, NullableBoolean
//   - string_rules.go    : Text, Email, URL
//   - numeric_rules.go   : Integer (int64), Number (float64)
//   - decimal_rules.go   : FixedPrecision (decimal.Decimal)
//   - date_rules.go      : ISODate (civil.Date), ISOTime (civil.Time), ISODateTime
//   - collection_rules.go: Optional, ListOf, MappingOf, ObjectOf
//
// Every primitive first resolves null input (nil or Absent) and blank strings
// according to AllowNull and AllowBlank, trims strings, then checks type,
// parse and constraints in a fixed order and stops at the first failure.
// Composites check every element and return one aggregate error.
//
// Constructors reject options they do not understand by panicking, so a
// misconfigured tree fails at startup.
//
// # Usage
//
//	noteValidator := validator.ObjectOf(validator.Fields{
//	    "description": validator.Text(validator.MaxLength(100)),
//	    "complete":    validator.Optional(validator.Boolean(), false),
//	    "tags":        validator.Optional(validator.ListOf(validator.Text()), nil),
//	})
//
//	value, err := noteValidator.Validate(raw)
//	if verr := validator.ExtractValidationError(err); verr != nil {
//	    // verr.Description() mirrors the shape of the failing input:
//	    // map[string]any{"description": "This field is required."}
//	}
//	note := value.(map[string]any)
//
// # Error Handling
//
// Failures are *ValidationError values. A scalar failure carries its Kind,
// the template Params and the rendered Message; aggregates carry Items (list
// positions) or Fields (keys). errors.Is(err, ErrValidationFailed) holds for
// all of them, Flatten turns an aggregate into dotted paths, and MarshalJSON
// encodes the description for API responses.
//
// Messages come from DefaultCatalog and are keyed by Kind, so callers can
// translate them using Kind and Params.
//
// # Limits
//
// Numeral strings longer than MaxNumeralLength and date/time strings longer
// than MaxTemporalLength fail with KindTooLarge before any parsing, which
// bounds the cost of adversarial input. FixedPrecision also rejects numerals
// whose exponent lies outside [-MaxNumeralLength, MaxNumeralLength] with
// KindTooLarge, so small values written with a large negative exponent, such
// as "0e-200", are reported as too large.
package validator
