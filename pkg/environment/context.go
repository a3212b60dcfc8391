package environment

import (
	"context"
	"strings"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// aliases maps accepted spellings to their canonical environment.
var aliases = map[string]Environment{
	"development": Development,
	"dev":         Development,
	"production":  Production,
	"prod":        Production,
	"staging":     Staging,
	"stage":       Staging,
}

// Parse returns the environment named by s, accepting the short forms
// "dev", "prod" and "stage" in any case.
func Parse(s string) (Environment, bool) {
	env, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return env, ok
}

// Validator coerces a string into an Environment. Blank input and unknown
// names fail with "Must be a valid environment.".
func Validator() validator.Validator {
	text := validator.Text()
	return validator.Func(func(raw any) (any, error) {
		if env, ok := raw.(Environment); ok {
			raw = string(env)
		}
		value, err := text.Validate(raw)
		if err != nil {
			return nil, err
		}
		env, ok := Parse(value.(string))
		if !ok {
			return nil, validator.NewError(validator.KindValue, map[string]any{"type_name": "environment"})
		}
		return env, nil
	})
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsStaging() bool     { return e == Staging }

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx).IsProduction()
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx).IsDevelopment()
}

// IsStaging checks if the environment from context is staging
func IsStaging(ctx context.Context) bool {
	return FromContext(ctx).IsStaging()
}
