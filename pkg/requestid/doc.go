// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is 1 to 128
// characters of letters, digits, '-' and '_'; anything else is replaced with
// a fresh UUIDv4. The id is stored in the request context, echoed in the
// response header and picked up by LoggerExtractor, so every record logged
// with the request context carries "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
