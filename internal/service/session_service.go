package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
)

type sessionService struct {
	session *models.Session
	adapter adapter.ServerAdapter
	scoped  []Resetter

	logger *logger.Logger
}

// NewSessionService returns a [SessionService] mutating session through
// serverAdapter. scoped stores are reset whenever the identity changes.
func NewSessionService(session *models.Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger, scoped ...Resetter) SessionService {
	return &sessionService{
		session: session,
		adapter: serverAdapter,
		scoped:  scoped,
		logger:  logger,
	}
}

func (s *sessionService) Session() *models.Session {
	return s.session
}

func (s *sessionService) CheckStatus(ctx context.Context) {
	s.session.SetChecking()

	status, err := s.adapter.CheckAuth(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("auth check failed")
		s.session.Clear()
		return
	}
	if !status.Authenticated {
		s.logger.Debug().Msg("no active session")
		s.session.Clear()
		return
	}

	var user models.User
	if status.User != nil {
		user = *status.User
	}
	s.session.Authenticate(user)
	s.logger.Info().Str("username", user.Username).Msg("session restored")
}

func (s *sessionService) Login(ctx context.Context, username, password string) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}

	user, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.resetScoped()
	s.session.Authenticate(user)
	s.logger.Info().Str("username", user.Username).Msg("logged in")
	return nil
}

func (s *sessionService) Register(ctx context.Context, username, password string) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}

	if err = s.adapter.Register(ctx, creds); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("username", creds.Username).Msg("registered")
	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("logout request failed")
	}

	s.adapter.ClearSession()
	s.session.Clear()
	s.resetScoped()
	s.logger.Info().Msg("logged out")
}

func (s *sessionService) resetScoped() {
	for _, store := range s.scoped {
		store.Reset()
	}
}

func credentials(username, password string) (models.Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Credentials{}, ErrCredentialsRequired
	}
	return models.Credentials{Username: username, Password: password}, nil
}
