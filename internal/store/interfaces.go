// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Account is a stored user together with its bcrypt password hash.
type Account struct {
	User         models.User
	PasswordHash []byte
	CreatedAt    models.Timestamp
}

// AccountRepository stores user accounts keyed by username.
type AccountRepository interface {
	// CreateAccount persists account. A taken username fails with
	// ErrLoginAlreadyExists.
	CreateAccount(ctx context.Context, account Account) error

	// FindAccount returns the account registered under username or
	// ErrAccountNotFound.
	FindAccount(ctx context.Context, username string) (Account, error)
}

// RecordRepository stores credential records, each owned by one user. Every
// method is scoped to userID: records of other users behave as missing.
type RecordRepository interface {
	// ListRecords returns the records of userID in creation order.
	ListRecords(ctx context.Context, userID models.ID) ([]models.CredentialRecord, error)

	// CreateRecord persists record as owned by userID.
	CreateRecord(ctx context.Context, userID models.ID, record models.CredentialRecord) error

	// UpdateRecord overwrites the editable fields and UpdatedAt of the record
	// with record.ID and returns the stored result. CreatedAt is kept.
	UpdateRecord(ctx context.Context, userID models.ID, record models.CredentialRecord) (models.CredentialRecord, error)

	// DeleteRecord removes the record with id.
	DeleteRecord(ctx context.Context, userID, id models.ID) error
}
