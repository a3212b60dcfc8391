// Package binder extracts raw HTTP request data into plain maps.
//
// The extractors do no type conversion: query and form values stay strings,
// JSON numbers stay json.Number. Coercion is left to pkg/validator or
// pkg/params, so every input source goes through the same rules and
// produces the same error messages.
//
// # Extractors
//
//   - Query(r): URL query parameters
//   - Form(r): urlencoded or multipart form fields
//   - JSON(r): a JSON object body, limited to DefaultMaxJSONSize
//   - Path(r, extractor, names...): router path parameters, e.g. chi.URLParam
//   - Merge(sources...): combines sources, later ones win
//
// A key that appears once maps to a string; a repeated key maps to []any.
//
// # Usage
//
//	body, err := binder.JSON(r)
//	if err != nil {
//	    // errors.Is(err, binder.ErrInvalidJSON) and friends
//	}
//	args, err := createNote.Bind(binder.Merge(binder.Query(r), body))
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: Content-Type doesn't match the extractor
//   - ErrMissingContentType: Content-Type header is absent
//   - ErrInvalidJSON: malformed, empty, trailing or non-object JSON
//   - ErrInvalidForm: form body could not be parsed
//   - ErrBodyTooLarge: body exceeds the size limit
package binder
