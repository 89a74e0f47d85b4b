// Package auth holds the client-side session state: the bearer token, the
// signed-in account, and the credential operations that maintain them.
// Validation errors from the server pass through untouched so callers can
// surface field-level detail.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ewilde/lumen/internal/domain"
)

// TokenSink receives the token after sign-in/out so the transport client
// can attach it to subsequent requests.
type TokenSink interface {
	SetToken(token string)
}

// Service manages the session lifecycle
type Service struct {
	client domain.AuthClient
	sink   TokenSink
	logger *slog.Logger

	mu    sync.RWMutex
	token string
	user  *domain.User
}

// NewService creates an auth service. sink may be nil when the transport
// does not need token updates (demo mode).
func NewService(client domain.AuthClient, sink TokenSink, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, sink: sink, logger: logger}
}

// IsAuthenticated reports whether a token and account are both present
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Token returns the current bearer token, or "" when signed out
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in account; ok is false when signed out
func (s *Service) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// SignIn exchanges credentials for a session. Invalid credentials surface
// as a status-coded error from the client.
func (s *Service) SignIn(ctx context.Context, email, password string) error {
	token, user, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Warn("sign-in failed", "email", email, "error", err)
		return err
	}
	s.setSession(token, user)
	s.logger.Info("signed in", "user", user.ID)
	return nil
}

// SignUp registers an account and starts a session
func (s *Service) SignUp(ctx context.Context, name, email, password string) error {
	token, user, err := s.client.SignUp(ctx, name, email, password)
	if err != nil {
		s.logger.Warn("sign-up failed", "email", email, "error", err)
		return err
	}
	s.setSession(token, user)
	s.logger.Info("signed up", "user", user.ID)
	return nil
}

// ForgotPassword requests a reset email; it never reveals whether the
// address exists.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	return s.client.ForgotPassword(ctx, email)
}

// SignOut invalidates the session server-side and clears local state.
// Local state clears even when the server call fails.
func (s *Service) SignOut(ctx context.Context) error {
	err := s.client.SignOut(ctx)

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if s.sink != nil {
		s.sink.SetToken("")
	}

	if err != nil {
		s.logger.Warn("server sign-out failed", "error", err)
		return err
	}
	s.logger.Info("signed out")
	return nil
}

// FetchUser refreshes the account behind the current token. A missing
// token is a silent no-op.
func (s *Service) FetchUser(ctx context.Context) error {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// RestoreToken seeds a previously persisted token (from config) without a
// round-trip; FetchUser completes the session.
func (s *Service) RestoreToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	if s.sink != nil {
		s.sink.SetToken(token)
	}
}

func (s *Service) setSession(token string, user domain.User) {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	if s.sink != nil {
		s.sink.SetToken(token)
	}
}
