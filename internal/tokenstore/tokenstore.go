// Package tokenstore persists the opaque bearer token across process
// restarts. Only the token string is ever stored; the user identity is
// always re-derived from the backend.
package tokenstore

import "errors"

// ErrNotFound is returned by Load when no token has been saved
var ErrNotFound = errors.New("no token stored")

// Store defines the interface for token persistence operations.
// This allows us to swap the keyring for a file on headless hosts and
// for an in-memory store in tests.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}

// Memory is an in-memory Store for tests
type Memory struct {
	token string
	has   bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(token string) error {
	m.token = token
	m.has = true
	return nil
}

func (m *Memory) Load() (string, error) {
	if !m.has {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *Memory) Delete() error {
	m.token = ""
	m.has = false
	return nil
}
