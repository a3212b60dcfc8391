package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxFormMemory is the memory limit for multipart forms (10MB).
// Larger parts spill to temporary files.
const DefaultMaxFormMemory = 10 << 20

// Form returns the body fields of an application/x-www-form-urlencoded or
// multipart/form-data request. File parts are ignored. Query parameters are
// not included; combine with Query through Merge when both are wanted.
func Form(r *http.Request) (map[string]any, error) {
	mt, err := mediaType(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	switch mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxFormMemory); err != nil {
			return nil, formError(err)
		}
	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data",
			ErrUnsupportedMediaType, mt)
	}

	// PostForm holds multipart text fields as well once the form is parsed.
	return fromValues(r.PostForm), nil
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}
