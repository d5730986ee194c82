// Package sqlerr translates database driver errors into the application
// error taxonomy.
//
// It exists mostly as the backstop for the read-then-write uniqueness
// checks: two concurrent creates with the same email can both pass the
// existence check, and the second insert then trips the unique constraint.
// That pgconn error must come back to the client as the same DuplicateKey
// it would have been on the fast path.
package sqlerr
