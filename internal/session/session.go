// Package session defines the session marker shared by the login handlers,
// which write it, and the gate middleware, which only reads it.
package session

const (
	// UserKey is the single session key set on successful PIN verification.
	UserKey = "user"
	// RoleCashier is the only role this system knows.
	RoleCashier = "cajero"
)
