package logger

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validation lists the failures carried by a validation error under the key
// "validation", one attribute per dotted path in sorted order. A scalar
// failure is logged under "value". Errors without validation details give an
// empty Attr.
func Validation(err error) slog.Attr {
	verr := validator.ExtractValidationError(err)
	if verr == nil {
		return slog.Attr{}
	}

	flat := verr.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	attrs := make([]slog.Attr, 0, len(paths))
	for _, path := range paths {
		key := path
		if key == "" {
			key = "value"
		}
		attrs = append(attrs, slog.String(key, flat[path]))
	}
	return Group("validation", attrs...)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// NoteID records the note identifier under the key "note_id".
func NoteID(id string) slog.Attr {
	return slog.String("note_id", id)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
