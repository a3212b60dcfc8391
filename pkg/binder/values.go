package binder

import (
	"fmt"
	"maps"
	"mime"
	"net/url"
)

// fromValues flattens url.Values: single values become strings and repeated
// keys become []any so ListOf validators receive a list.
func fromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			out[key] = items
		}
	}
	return out
}

// mediaType returns the media type of a Content-Type header without parameters.
func mediaType(contentType, expected string) (string, error) {
	if contentType == "" {
		return "", fmt.Errorf("%w: expected %s", ErrMissingContentType, expected)
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, nil
}

// Merge combines extracted sources into one map. Later sources win on
// conflicting keys.
func Merge(sources ...map[string]any) map[string]any {
	size := 0
	for _, src := range sources {
		size += len(src)
	}
	out := make(map[string]any, size)
	for _, src := range sources {
		maps.Copy(out, src)
	}
	return out
}
