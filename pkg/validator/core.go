package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Validator coerces an untyped input value into a typed value.
// On failure the returned error is a *ValidationError.
// Implementations are immutable and safe for concurrent use.
type Validator interface {
	Validate(raw any) (any, error)
}

// Func adapts an ordinary function to the Validator interface.
type Func func(raw any) (any, error)

// Validate calls f(raw).
func (f Func) Validate(raw any) (any, error) {
	return f(raw)
}

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent is the raw value of a key that was never supplied. Optional returns
// its default for it; every other validator treats it as null.
var Absent = absent{}

func isNull(raw any) bool {
	return raw == nil || raw == Absent
}

// ValidationError describes why a value was rejected.
//
// A scalar failure carries Kind, Params and the rendered Message.
// A composite failure carries either Items (list positions) or Fields
// (mapping keys, object fields, argument names) holding nested errors.
type ValidationError struct {
	Kind    Kind
	Params  map[string]any
	Message string
	Items   map[int]*ValidationError
	Fields  map[string]*ValidationError
}

// NewError builds a scalar error rendered from DefaultCatalog.
func NewError(kind Kind, params map[string]any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Params:  params,
		Message: Render(kind, params),
	}
}

// NewFieldsError builds an aggregate error keyed by name.
// It returns nil for an empty map.
func NewFieldsError(fields map[string]*ValidationError) *ValidationError {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func typeError(typeName string) *ValidationError {
	return NewError(KindType, map[string]any{"type_name": typeName})
}

func valueError(typeName string) *ValidationError {
	return NewError(KindValue, map[string]any{"type_name": typeName})
}

// IsAggregate reports whether the error holds nested element errors.
func (e *ValidationError) IsAggregate() bool {
	return e.Items != nil || e.Fields != nil
}

// Description returns the message string for scalar failures, or a
// map[int]any / map[string]any of nested descriptions for composite ones.
func (e *ValidationError) Description() any {
	switch {
	case e.Items != nil:
		out := make(map[int]any, len(e.Items))
		for i, child := range e.Items {
			out[i] = child.Description()
		}
		return out
	case e.Fields != nil:
		out := make(map[string]any, len(e.Fields))
		for key, child := range e.Fields {
			out[key] = child.Description()
		}
		return out
	default:
		return e.Message
	}
}

// Flatten returns every leaf message keyed by its dotted path, e.g.
// "items.2.name". A scalar error is keyed by the empty string.
func (e *ValidationError) Flatten() map[string]string {
	out := make(map[string]string)
	e.flatten("", out)
	return out
}

func (e *ValidationError) flatten(prefix string, out map[string]string) {
	if !e.IsAggregate() {
		out[prefix] = e.Message
		return
	}
	for i, child := range e.Items {
		child.flatten(joinPath(prefix, strconv.Itoa(i)), out)
	}
	for key, child := range e.Fields {
		child.flatten(joinPath(prefix, key), out)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func (e *ValidationError) Error() string {
	if !e.IsAggregate() {
		return "validation failed: " + e.Message
	}

	flat := e.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, flat[path]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// MarshalJSON encodes the description.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Description())
}

// ExtractValidationError extracts a *ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}

// As runs v and asserts the result to T. A null result yields the zero T.
func As[T any](v Validator, raw any) (T, error) {
	var zero T
	out, err := v.Validate(raw)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	typed, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, out, zero)
	}
	return typed, nil
}

// Must runs v and panics on failure. Meant for values fixed at startup.
func Must(v Validator, raw any) any {
	out, err := v.Validate(raw)
	if err != nil {
		panic(err)
	}
	return out
}
