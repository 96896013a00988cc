// Package services holds the client-side application services. AuthService
// is the garden.Auth implementation: it signs in against the server, keeps
// the session in the local database and tells subscribers when the session
// changes.
package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/virtualgarden/internal/client/repositories/session"
	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

// Remote is the server half of authentication. client.GRPCClient
// implements it.
type Remote interface {
	SignUp(ctx context.Context, email string, password []byte) error
	SignIn(ctx context.Context, email string, password []byte) (*garden.Session, error)
	SignOut(ctx context.Context) error
	SetTokens(accessToken, refreshToken string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
}

var _ garden.Auth = (*AuthService)(nil)

type AuthService struct {
	remote   Remote
	sessions session.Repository
	logger   logging.Logger

	mu        sync.Mutex
	listeners map[int]func(*garden.Session)
	nextID    int
}

// NewAuthService wires remote token rotations into the session repository.
func NewAuthService(remote Remote, sessions session.Repository, logger logging.Logger) *AuthService {
	a := &AuthService{
		remote:    remote,
		sessions:  sessions,
		logger:    logger.With("module", "auth"),
		listeners: make(map[int]func(*garden.Session)),
	}
	remote.OnTokensRefreshed(a.persistTokens)
	return a
}

func (a *AuthService) persistTokens(accessToken, refreshToken string) {
	ctx := context.Background()
	if err := a.sessions.UpdateTokens(ctx, accessToken, refreshToken); err != nil {
		a.logger.Warn(ctx, "could not store refreshed tokens", "error", err)
	}
}

// CurrentSession returns the stored session, or nil when signed out, and
// installs its tokens on the remote.
func (a *AuthService) CurrentSession(ctx context.Context) (*garden.Session, error) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		a.remote.SetTokens(s.AccessToken, s.RefreshToken)
	}
	return s, nil
}

func (a *AuthService) OnSessionChange(fn func(*garden.Session)) (unsubscribe func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.listeners[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.listeners, id)
	}
}

func (a *AuthService) notify(s *garden.Session) {
	a.mu.Lock()
	fns := make([]func(*garden.Session), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// SignUp registers a new account. The password is checked locally first so
// a short one never leaves the machine.
func (a *AuthService) SignUp(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &garden.AuthError{Op: "sign up", Err: common.ErrorInvalidEmail}
	}
	if len(password) < common.MinPasswordLength {
		return &garden.AuthError{Op: "sign up", Err: common.ErrorWeakPassword}
	}

	if err := a.remote.SignUp(ctx, email, password); err != nil {
		return &garden.AuthError{Op: "sign up", Err: err}
	}
	return nil
}

func (a *AuthService) SignIn(ctx context.Context, email string, password []byte) (*garden.Session, error) {
	s, err := a.remote.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, &garden.AuthError{Op: "sign in", Err: err}
	}

	if err := a.sessions.Save(ctx, *s); err != nil {
		return nil, &garden.AuthError{Op: "sign in", Err: err}
	}

	a.notify(s)
	return s, nil
}

// SignOut forgets the local session. A failure to revoke the refresh token
// on the server is logged and does not keep the user signed in.
func (a *AuthService) SignOut(ctx context.Context) error {
	if err := a.remote.SignOut(ctx); err != nil {
		a.logger.Warn(ctx, "refresh token not revoked", "error", err)
	}

	if err := a.sessions.Clear(ctx); err != nil {
		return &garden.AuthError{Op: "sign out", Err: err}
	}

	a.notify(nil)
	return nil
}
