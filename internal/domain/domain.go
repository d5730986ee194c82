// Package domain holds the registry entities and their closed enum sets.
//
// The wire format (JSON field names, enum tokens) is Spanish because the
// consuming clients already speak it; Go identifiers stay English. Enum
// tokens are parsed case-insensitively and normalized to upper case.
package domain
