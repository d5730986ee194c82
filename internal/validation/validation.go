// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags
// (required fields, lengths, email formats) and extracts validation errors
// into a field-level format the client can act on.
package validation
