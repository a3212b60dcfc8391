// Package notes is a small JSON API built on the coercion engine: a to-do
// list kept in memory and a day-of-week lookup.
//
// Routes:
//
//	GET    /day-of-week/?date=YYYY-MM-DD
//	GET    /notes/
//	POST   /notes/               description (max 100 characters)
//	GET    /notes/{note_id}/
//	PUT    /notes/{note_id}/     [description], [complete]
//	DELETE /notes/{note_id}/
//	GET    /healthz
//
// Request values come from the query string, a JSON or form body and the
// path, in that order of precedence, and are bound with pkg/params.
// Successful responses are wrapped as {"data": ...}; failures as
// {"error": {"code", "message", "details"}} where details mirrors the
// rejected input.
package notes
