// Package requestid tags every HTTP request with an identifier.
//
// The middleware reuses a client supplied X-Request-ID header when it is at
// most 128 characters of [a-zA-Z0-9_-]; otherwise it generates a new UUID v4
// (or calls the generator passed with WithGenerator). The id is echoed in the
// response header and stored in the request context:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	id := requestid.FromContext(r.Context())
//
// LoggerExtractor plugs into logger.WithContextExtractors so log records
// emitted with the request context carry a "request_id" attribute.
package requestid
