package binder

import "net/http"

// Query returns the URL query parameters of r.
//
//	GET /search?q=go&tag=web&tag=api
//	// map[string]any{"q": "go", "tag": []any{"web", "api"}}
func Query(r *http.Request) map[string]any {
	return fromValues(r.URL.Query())
}
