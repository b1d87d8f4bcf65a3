// Package session holds the process-local admin flag. It is a UI gate
// only: it starts false, is never persisted and proves nothing to the
// server. Use Authenticate to also obtain an API token.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"blogapi/internal/client"
)

var ErrNotAuthenticated = errors.New("admin login required")

// Authenticator exchanges admin credentials for an API token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*client.Session, error)
	SetToken(token string)
}

type Flag struct {
	mu        sync.RWMutex
	on        bool
	expiresAt time.Time
}

func New() *Flag {
	return &Flag{}
}

// Login sets the flag without contacting the server.
func (f *Flag) Login() {
	f.mu.Lock()
	f.on = true
	f.expiresAt = time.Time{}
	f.mu.Unlock()
}

func (f *Flag) Logout() {
	f.mu.Lock()
	f.on = false
	f.expiresAt = time.Time{}
	f.mu.Unlock()
}

// IsAuthenticated reports the flag. A flag set through Authenticate turns
// itself off once the token has expired.
func (f *Flag) IsAuthenticated() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.on {
		return false
	}
	return f.expiresAt.IsZero() || time.Now().Before(f.expiresAt)
}

// Require returns ErrNotAuthenticated unless the flag is set.
func (f *Flag) Require() error {
	if !f.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Authenticate logs in against the API and sets the flag on success. On
// failure the flag is cleared.
func (f *Flag) Authenticate(ctx context.Context, auth Authenticator, username, password string) error {
	session, err := auth.Login(ctx, username, password)
	if err != nil {
		f.Logout()
		return err
	}

	f.mu.Lock()
	f.on = true
	f.expiresAt = session.ExpiresAt
	f.mu.Unlock()
	return nil
}

// Close clears the flag and the client's token.
func (f *Flag) Close(auth Authenticator) {
	f.Logout()
	if auth != nil {
		auth.SetToken("")
	}
}
