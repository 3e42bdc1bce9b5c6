// Package session owns the Hive session token for one run of hheat.
//
// A run starts from the cached token if there is one. The first authenticated
// call (the product listing) decides whether that token is still good: on any
// failure the manager logs in once, persists the new token, and repeats the
// call once. A second failure ends the run.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/logging"
)

// API is the subset of the Hive client the manager drives.
type API interface {
	Login(ctx context.Context, creds hive.Credentials) (string, error)
	Products(ctx context.Context, token string) (hive.Listing, error)
}

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load() (token string, ok bool)
	Save(token string) error
}

// LoginError wraps a failed login.
type LoginError struct {
	Err error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed: %v", e.Err)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// Manager holds the token in force for the current run.
type Manager struct {
	api   API
	store TokenStore
	creds hive.Credentials

	token    string
	relogged bool
}

// NewManager creates a manager. Nothing is read or sent until Products is called.
func NewManager(api API, store TokenStore, creds hive.Credentials) *Manager {
	return &Manager{api: api, store: store, creds: creds}
}

// Token returns the token in force, or "" before Products succeeds.
func (m *Manager) Token() string {
	return m.token
}

// Relogged reports whether this run had to log in.
func (m *Manager) Relogged() bool {
	return m.relogged
}

// Products fetches the product listing, logging in at most once.
func (m *Manager) Products(ctx context.Context) (hive.Listing, error) {
	if cached, ok := m.store.Load(); ok {
		m.token = cached

		listing, err := m.api.Products(ctx, m.token)
		if err == nil {
			return listing, nil
		}
		logging.Warn("Cached token rejected, logging in again", zap.Error(err))
	}

	if err := m.login(ctx); err != nil {
		return nil, err
	}

	listing, err := m.api.Products(ctx, m.token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products after login: %w", err)
	}
	return listing, nil
}

// login obtains a fresh token and persists it before it is used.
func (m *Manager) login(ctx context.Context) error {
	token, err := m.api.Login(ctx, m.creds)
	if err != nil {
		return &LoginError{Err: err}
	}

	if err := m.store.Save(token); err != nil {
		return fmt.Errorf("failed to cache session token: %w", err)
	}

	m.token = token
	m.relogged = true
	return nil
}
