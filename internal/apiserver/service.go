// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/store"
	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/MKhiriev/go-pass-client/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer   = "go-pass-server"
	defaultTokenDuration = 24 * time.Hour
)

// ServiceConfig tunes a [Service]. Zero fields take defaults: bcrypt's
// default cost, a random sign key, the "go-pass-server" issuer and a 24h
// session lifetime.
type ServiceConfig struct {
	BcryptCost    int
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// Service implements the API on top of the repositories. Open sessions live
// in memory only, so a restart logs every user out. It is safe for
// concurrent use.
type Service struct {
	accounts store.AccountRepository
	records  store.RecordRepository
	sessions *sessions

	ids        *utils.UUIDGenerator
	now        func() time.Time
	bcryptCost int
}

// NewService returns a service over repos.
func NewService(repos *store.Repositories, cfg ServiceConfig) (*Service, error) {
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = defaultTokenIssuer
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = defaultTokenDuration
	}

	signKey := []byte(cfg.TokenSignKey)
	if len(signKey) == 0 {
		var err error
		if signKey, err = randomSignKey(); err != nil {
			return nil, err
		}
	}

	s := &Service{
		accounts:   repos.Accounts,
		records:    repos.Records,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		bcryptCost: cfg.BcryptCost,
	}
	s.sessions = newSessions(signKey, cfg.TokenIssuer, cfg.TokenDuration, func() time.Time { return s.now() })
	return s, nil
}

// Register creates an account.
func (s *Service) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{ID: models.ID(s.ids.Generate()), Username: username}
	err = s.accounts.CreateAccount(ctx, store.Account{
		User:         user,
		PasswordHash: hash,
		CreatedAt:    models.NewTimestamp(s.now()),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("create account: %w", err)
	}
	return user, nil
}

// Login checks creds and opens a session. It returns the session token.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, "", ErrInvalidDataProvided
	}

	acc, err := s.accounts.FindAccount(ctx, username)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.User{}, "", ErrWrongCredentials
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("find account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.User{}, "", ErrWrongCredentials
		}
		return models.User{}, "", fmt.Errorf("compare password: %w", err)
	}

	token, err := s.sessions.start(acc.User)
	if err != nil {
		return models.User{}, "", fmt.Errorf("start session: %w", err)
	}

	return acc.User, token, nil
}

// SessionUser returns the user of an open session.
func (s *Service) SessionUser(token string) (models.User, error) {
	return s.sessions.user(token)
}

// Logout ends a session. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.sessions.end(token)
}

// List returns the records of user in creation order.
func (s *Service) List(ctx context.Context, user models.User) ([]models.CredentialRecord, error) {
	records, err := s.records.ListRecords(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Create stores a new record for user.
func (s *Service) Create(ctx context.Context, user models.User, payload models.RecordPayload) (models.CredentialRecord, error) {
	if err := checkPayload(payload); err != nil {
		return models.CredentialRecord{}, err
	}

	now := models.NewTimestamp(s.now())
	record := withPayload(models.CredentialRecord{
		ID:        models.ID(s.ids.Generate()),
		CreatedAt: now,
		UpdatedAt: now,
	}, payload)

	if err := s.records.CreateRecord(ctx, user.ID, record); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("create record: %w", err)
	}
	return record, nil
}

// Update replaces the fields of a record owned by user.
func (s *Service) Update(ctx context.Context, user models.User, id models.ID, payload models.RecordPayload) (models.CredentialRecord, error) {
	if err := checkPayload(payload); err != nil {
		return models.CredentialRecord{}, err
	}

	record := withPayload(models.CredentialRecord{
		ID:        id,
		UpdatedAt: models.NewTimestamp(s.now()),
	}, payload)

	stored, err := s.records.UpdateRecord(ctx, user.ID, record)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("update record %s: %w", id, err)
	}
	return stored, nil
}

// Delete removes a record owned by user.
func (s *Service) Delete(ctx context.Context, user models.User, id models.ID) error {
	if err := s.records.DeleteRecord(ctx, user.ID, id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

func checkPayload(p models.RecordPayload) error {
	if strings.TrimSpace(p.Title) == "" || p.Secret == "" {
		return fmt.Errorf("%w: title and password are required", ErrInvalidDataProvided)
	}
	if p.Category != "" && !p.Category.IsKnown() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidDataProvided, p.Category)
	}
	return nil
}

func withPayload(r models.CredentialRecord, p models.RecordPayload) models.CredentialRecord {
	r.Title = strings.TrimSpace(p.Title)
	r.Website = p.Website
	r.Username = p.Username
	r.Secret = p.Secret
	r.Notes = p.Notes
	r.Category = p.Category
	return r
}
