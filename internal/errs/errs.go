// Package errs defines the application error taxonomy.
//
// Every domain failure is represented as an *HTTPError carrying the status
// the global error handler should answer with: validation and duplicate-key
// failures map to 400, lookup misses to 404, failed logins to 401, and
// anything else becomes a generic 500 that never leaks the underlying fault.
package errs
