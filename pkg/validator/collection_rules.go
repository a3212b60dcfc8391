package validator

import (
	"fmt"
	"maps"
	"reflect"
)

// Defaulter is implemented by validators that supply a value for absent input.
type Defaulter interface {
	Default() any
}

// Fields declares the shape of an object: field name to validator.
type Fields map[string]Validator

// Optional returns def for Absent input without calling child, and delegates
// everything else (including null) to child. ObjectOf uses it to mark fields
// that may be left out. The default is returned as is, not copied.
func Optional(child Validator, def any) Validator {
	if child == nil {
		panic("Optional: nil child validator")
	}
	return optionalValidator{child: child, def: def}
}

type optionalValidator struct {
	child Validator
	def   any
}

func (v optionalValidator) Validate(raw any) (any, error) {
	if raw == Absent {
		return v.def, nil
	}
	return v.child.Validate(raw)
}

func (v optionalValidator) Default() any {
	return v.def
}

// ListOf applies child to every element of a slice or array and returns []any.
// All failing positions are reported in one aggregate error.
func ListOf(child Validator, opts ...Option) Validator {
	if child == nil {
		panic("ListOf: nil child validator")
	}
	o := buildOptions("list_of", []string{optAllowNull, optAllowEmpty}, opts)
	return listValidator{child: child, allowNull: o.allowNull, allowEmpty: o.emptyAllowed()}
}

type listValidator struct {
	child      Validator
	allowNull  bool
	allowEmpty bool
}

func (v listValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	items, ok := sequence(raw)
	if !ok {
		return nil, typeError("list")
	}
	if len(items) == 0 && !v.allowEmpty {
		return nil, NewError(KindEmpty, nil)
	}

	out := make([]any, len(items))
	var failed map[int]*ValidationError
	for i, item := range items {
		value, err := v.child.Validate(item)
		if err != nil {
			verr := ExtractValidationError(err)
			if verr == nil {
				return nil, fmt.Errorf("validator: item %d: %w", i, err)
			}
			if failed == nil {
				failed = make(map[int]*ValidationError)
			}
			failed[i] = indexed(i, verr)
			continue
		}
		out[i] = value
	}

	if failed != nil {
		return nil, &ValidationError{Items: failed}
	}
	return out, nil
}

// indexed prefixes a scalar element message with its position.
func indexed(i int, err *ValidationError) *ValidationError {
	if err.IsAggregate() {
		return err
	}
	params := maps.Clone(err.Params)
	if params == nil {
		params = make(map[string]any, 1)
	}
	params["index"] = i
	return &ValidationError{
		Kind:    err.Kind,
		Params:  params,
		Message: Render(KindIndex, map[string]any{"index": i}) + " " + err.Message,
	}
}

// MappingOf applies child to every value of a string-keyed map and returns
// map[string]any. All failing keys are reported in one aggregate error.
func MappingOf(child Validator, opts ...Option) Validator {
	if child == nil {
		panic("MappingOf: nil child validator")
	}
	o := buildOptions("mapping_of", []string{optAllowNull, optAllowEmpty}, opts)
	return mappingValidator{child: child, allowNull: o.allowNull, allowEmpty: o.emptyAllowed()}
}

type mappingValidator struct {
	child      Validator
	allowNull  bool
	allowEmpty bool
}

func (v mappingValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	entries, ok := mapping(raw)
	if !ok {
		return nil, typeError("object")
	}
	if len(entries) == 0 && !v.allowEmpty {
		return nil, NewError(KindEmpty, nil)
	}

	out := make(map[string]any, len(entries))
	failed := make(map[string]*ValidationError)
	for key, item := range entries {
		value, err := v.child.Validate(item)
		if err != nil {
			verr := ExtractValidationError(err)
			if verr == nil {
				return nil, fmt.Errorf("validator: key %q: %w", key, err)
			}
			failed[key] = verr
			continue
		}
		out[key] = value
	}

	if verr := NewFieldsError(failed); verr != nil {
		return nil, verr
	}
	return out, nil
}

// ObjectOf validates a string-keyed map against a fixed set of fields.
// Fields missing from the input fail with KindRequired unless wrapped in
// Optional, in which case they take the default. Undeclared input keys are
// ignored and left out of the result.
func ObjectOf(fields Fields, opts ...Option) Validator {
	for name, field := range fields {
		if field == nil {
			panic(fmt.Sprintf("ObjectOf: nil validator for field %q", name))
		}
	}
	o := buildOptions("object_of", []string{optAllowNull}, opts)
	return objectValidator{fields: maps.Clone(fields), allowNull: o.allowNull}
}

type objectValidator struct {
	fields    Fields
	allowNull bool
}

func (v objectValidator) Validate(raw any) (any, error) {
	if isNull(raw) {
		return nullResult(v.allowNull)
	}

	entries, ok := mapping(raw)
	if !ok {
		return nil, typeError("object")
	}

	out := make(map[string]any, len(v.fields))
	failed := make(map[string]*ValidationError)
	for name, field := range v.fields {
		item, present := entries[name]
		if !present {
			d, optional := field.(Defaulter)
			if !optional {
				failed[name] = NewError(KindRequired, nil)
				continue
			}
			out[name] = d.Default()
			continue
		}

		value, err := field.Validate(item)
		if err != nil {
			verr := ExtractValidationError(err)
			if verr == nil {
				return nil, fmt.Errorf("validator: field %q: %w", name, err)
			}
			failed[name] = verr
			continue
		}
		out[name] = value
	}

	if verr := NewFieldsError(failed); verr != nil {
		return nil, verr
	}
	return out, nil
}

// sequence returns the elements of any slice or array except strings and
// byte slices.
func sequence(raw any) ([]any, bool) {
	switch value := raw.(type) {
	case []any:
		return value, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// mapping returns the entries of any map keyed by a string kind.
func mapping(raw any) (map[string]any, bool) {
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
