package binder

import "net/http"

// PathExtractor reads a named path parameter from a request, for example
// chi.URLParam.
type PathExtractor func(r *http.Request, name string) string

// Path returns the named path parameters of r. Parameters the extractor
// reports as empty are left out so validators see them as missing.
//
//	r.Get("/notes/{note_id}/", func(w http.ResponseWriter, r *http.Request) {
//	    path := binder.Path(r, chi.URLParam, "note_id")
//	})
func Path(r *http.Request, extractor PathExtractor, names ...string) map[string]any {
	out := make(map[string]any, len(names))
	if extractor == nil {
		return out
	}
	for _, name := range names {
		if value := extractor(r, name); value != "" {
			out[name] = value
		}
	}
	return out
}
