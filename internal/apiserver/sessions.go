package apiserver

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessions issues signed session tokens and remembers which of them are
// still open. A token is accepted only while its signature, issuer and expiry
// check out and its jti has not been logged out.
type sessions struct {
	mu   sync.RWMutex
	open map[string]session

	signKey []byte
	issuer  string
	ttl     time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time
}

type session struct {
	user      models.User
	expiresAt time.Time
}

func newSessions(signKey []byte, issuer string, ttl time.Duration, now func() time.Time) *sessions {
	return &sessions{
		open:    make(map[string]session),
		signKey: signKey,
		issuer:  issuer,
		ttl:     ttl,
		ids:     utils.NewUUIDGenerator(),
		now:     now,
	}
}

func randomSignKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate token sign key: %w", err)
	}
	return key, nil
}

// start opens a session for user and returns its token.
func (s *sessions) start(user models.User) (string, error) {
	now := s.now()
	id := s.ids.Generate()
	expiresAt := now.Add(s.ttl)

	token, err := utils.GenerateJWTToken(jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   user.ID.String(),
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}, s.signKey)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[id] = session{user: user, expiresAt: expiresAt}
	return token, nil
}

func (s *sessions) user(token string) (models.User, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	s.mu.RLock()
	sess, ok := s.open[claims.ID]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrSessionNotFound
	}
	return sess.user, nil
}

// end closes the session of token. Invalid tokens are ignored. Expired
// sessions are dropped on the way.
func (s *sessions) end(token string) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.open, claims.ID)
	}

	now := s.now()
	for id, sess := range s.open {
		if !now.Before(sess.expiresAt) {
			delete(s.open, id)
		}
	}
}
