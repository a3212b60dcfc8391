package params

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Validators maps argument names to the validator applied to them.
type Validators map[string]validator.Validator

// Args holds bound argument values keyed by name.
// Arguments that were not supplied are absent from the map.
type Args map[string]any

// Has reports whether the argument was supplied or defaulted.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Get returns the named argument asserted to T. The second result is false
// when the argument is absent, null or of a different type.
func Get[T any](a Args, name string) (T, bool) {
	v, ok := a[name].(T)
	return v, ok
}

// Binder validates call arguments against a fixed set of validators.
// It is immutable once built and safe for concurrent use.
type Binder struct {
	args       []string
	validators Validators
}

// New returns a Binder for a call taking the named arguments.
//
// It panics when a validator is declared for a name that is not one of args:
// such a binder can never apply that validator, which is a programming error.
func New(args []string, validators Validators) *Binder {
	for name, v := range validators {
		if !slices.Contains(args, name) {
			panic(fmt.Sprintf("params: validator %q does not match any argument of %v", name, args))
		}
		if v == nil {
			panic(fmt.Sprintf("params: nil validator for argument %q", name))
		}
	}
	return &Binder{
		args:       slices.Clone(args),
		validators: maps.Clone(validators),
	}
}

// Args returns the argument names the binder was declared with.
func (b *Binder) Args() []string {
	return slices.Clone(b.args)
}

// Bind validates every supplied value that has a validator and returns the
// coerced arguments. Supplied values without a validator pass through as is.
// Unsupplied arguments stay absent, unless their validator is Optional, in
// which case they take its default.
//
// All failures are collected into one *validator.ValidationError keyed by
// argument name.
func (b *Binder) Bind(values map[string]any) (Args, error) {
	out := make(Args, len(values))
	failed := make(map[string]*validator.ValidationError)

	for name, raw := range values {
		v, ok := b.validators[name]
		if !ok {
			out[name] = raw
			continue
		}

		value, err := v.Validate(raw)
		if err != nil {
			verr := validator.ExtractValidationError(err)
			if verr == nil {
				return nil, fmt.Errorf("params: argument %q: %w", name, err)
			}
			failed[name] = verr
			continue
		}
		out[name] = value
	}

	for name, v := range b.validators {
		if _, supplied := values[name]; supplied {
			continue
		}
		if d, ok := v.(validator.Defaulter); ok {
			out[name] = d.Default()
		}
	}

	if verr := validator.NewFieldsError(failed); verr != nil {
		return nil, verr
	}
	return out, nil
}

// Wrap returns fn guarded by b: arguments are bound first and fn only runs
// when every argument is valid.
func Wrap[R any](b *Binder, fn func(Args) (R, error)) func(map[string]any) (R, error) {
	return func(values map[string]any) (R, error) {
		args, err := b.Bind(values)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(args)
	}
}
