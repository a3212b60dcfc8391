package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Var declares one environment variable: the validator its raw string is
// coerced with and an optional default used when the variable is unset.
type Var struct {
	Validator  validator.Validator
	Default    string
	HasDefault bool
}

// Env declares a variable that must be set, unless v is validator.Optional.
func Env(v validator.Validator) Var {
	return Var{Validator: v}
}

// EnvDefault declares a variable that falls back to def when unset.
// The default goes through the validator like any other value.
func EnvDefault(v validator.Validator, def string) Var {
	return Var{Validator: v, Default: def, HasDefault: true}
}

// Environment holds coerced variable values keyed by variable name.
type Environment struct {
	values map[string]any
}

// Get returns the coerced value of a declared variable, or nil.
func (e Environment) Get(name string) any {
	return e.values[name]
}

// Len returns how many variables were loaded.
func (e Environment) Len() int {
	return len(e.values)
}

// Value returns the named variable asserted to T.
func Value[T any](e Environment, name string) (T, bool) {
	v, ok := e.values[name].(T)
	return v, ok
}

type environmentOptions struct {
	lookup map[string]string
}

// EnvironmentOption configures LoadEnvironment.
type EnvironmentOption func(*environmentOptions)

// WithEnvironment replaces the process environment with the given map.
func WithEnvironment(vars map[string]string) EnvironmentOption {
	return func(o *environmentOptions) {
		o.lookup = vars
		if o.lookup == nil {
			o.lookup = map[string]string{}
		}
	}
}

// LoadEnvironment reads and validates the declared variables.
//
// Every variable is checked; failures are collected into one
// *validator.ValidationError keyed by variable name and joined with
// ErrInvalidEnvironment. An unset variable without a default fails with
// "This field is required." unless its validator is validator.Optional.
//
// Example:
//
//	environ, err := config.LoadEnvironment(map[string]config.Var{
//	    "APP_PORT":  config.EnvDefault(validator.Integer(validator.MinValue(1)), "8080"),
//	    "APP_DEBUG": config.EnvDefault(validator.Boolean(), "false"),
//	})
//	port, _ := config.Value[int64](environ, "APP_PORT")
func LoadEnvironment(vars map[string]Var, opts ...EnvironmentOption) (Environment, error) {
	o := environmentOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lookup == nil {
		o.lookup = env.ToMap(os.Environ())
	}

	values := make(map[string]any, len(vars))
	failed := make(map[string]*validator.ValidationError)

	for name, spec := range vars {
		if spec.Validator == nil {
			return Environment{}, fmt.Errorf("config: no validator declared for %s", name)
		}

		raw, set := o.lookup[name]
		if !set {
			if !spec.HasDefault {
				if d, ok := spec.Validator.(validator.Defaulter); ok {
					values[name] = d.Default()
					continue
				}
				failed[name] = validator.NewError(validator.KindRequired, nil)
				continue
			}
			raw = spec.Default
		}

		value, err := spec.Validator.Validate(raw)
		if err != nil {
			verr := validator.ExtractValidationError(err)
			if verr == nil {
				return Environment{}, fmt.Errorf("config: %s: %w", name, err)
			}
			failed[name] = verr
			continue
		}
		values[name] = value
	}

	if verr := validator.NewFieldsError(failed); verr != nil {
		return Environment{}, errors.Join(ErrInvalidEnvironment, verr)
	}
	return Environment{values: values}, nil
}

// MustLoadEnvironment works like LoadEnvironment but panics on failure.
func MustLoadEnvironment(vars map[string]Var, opts ...EnvironmentOption) Environment {
	environ, err := LoadEnvironment(vars, opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load environment: %v", err))
	}
	return environ
}
