// Package middleware holds the Echo middleware stack: CORS, request
// logging, panic recovery, request correlation, context-scoped loggers,
// New Relic tracing, and the global error handler that maps the error
// taxonomy onto the registries' wire format.
package middleware
