package validator

import (
	"fmt"
	"strings"
)

// Kind names a category of validation failure and selects its message template.
type Kind string

const (
	KindNull      Kind = "null"
	KindBlank     Kind = "blank"
	KindType      Kind = "type"
	KindValue     Kind = "value"
	KindMinLength Kind = "min_length"
	KindMaxLength Kind = "max_length"
	KindMinValue  Kind = "min_value"
	KindMaxValue  Kind = "max_value"
	KindTooLarge  Kind = "too_large"
	KindEmpty     Kind = "empty"
	KindRequired  Kind = "required"

	// KindIndex is not a failure by itself; it labels list element messages.
	KindIndex Kind = "index"
)

// Catalog maps error kinds to message templates. Templates reference runtime
// parameters as {name} placeholders.
type Catalog map[Kind]string

// DefaultCatalog holds the messages used by every validator in this package.
// It is read-only after package initialization.
var DefaultCatalog = Catalog{
	KindNull:      "This field may not be null.",
	KindBlank:     "This field may not be blank.",
	KindType:      "Must be of type {type_name}.",
	KindValue:     "Must be a valid {type_name}.",
	KindMinLength: "Must have at least {min_length} characters.",
	KindMaxLength: "Must have no more than {max_length} characters.",
	KindMinValue:  "Must be greater than or equal to {min_value}.",
	KindMaxValue:  "Must be less than or equal to {max_value}.",
	KindTooLarge:  "Value is too large.",
	KindEmpty:     "This field may not be empty.",
	KindRequired:  "This field is required.",
	KindIndex:     "Item {index}:",
}

// Render formats the template registered for kind with params.
// An unknown kind is a programming error and panics.
func (c Catalog) Render(kind Kind, params map[string]any) string {
	tmpl, ok := c[kind]
	if !ok {
		panic(fmt.Sprintf("validator: unknown error kind %q", kind))
	}
	if len(params) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Render formats a message from DefaultCatalog.
func Render(kind Kind, params map[string]any) string {
	return DefaultCatalog.Render(kind, params)
}
