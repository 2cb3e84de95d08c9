// Package storage defines the token store port: the only durable client-side
// state is a single opaque bearer token, and the session controller accesses
// it exclusively through this interface so tests can substitute an in-memory
// fake.
package storage

import "errors"

// ErrNoToken is returned by Load when no token is persisted.
var ErrNoToken = errors.New("no stored token")

// TokenStore persists the session's bearer token.
type TokenStore interface {
	// Load returns the persisted token, or ErrNoToken if absent.
	Load() (string, error)

	// Save persists the token, replacing any previous value.
	Save(token string) error

	// Clear removes the persisted token. Clearing an absent token is not an
	// error.
	Clear() error
}
