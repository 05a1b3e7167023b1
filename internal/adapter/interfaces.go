// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the password
// API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that keeps the backend session in a cookie jar and
// sends it with every call.
//
// Non-2xx responses are returned as [*APIError]; transport failures wrap
// [ErrNetwork]. Both can be matched with [errors.Is] / [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the calls the client makes against the password API.
// Implementations are responsible for serialisation, session cookie handling
// and mapping transport-level errors to the values defined in this package.
type ServerAdapter interface {
	// CheckAuth asks the server whether the stored session cookie is still
	// valid.
	CheckAuth(ctx context.Context) (models.AuthStatusResponse, error)

	// Login authenticates with the given credentials. On success the server's
	// session cookie is kept for subsequent calls and the user is returned.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Register creates a new account. It does not establish a session.
	Register(ctx context.Context, creds models.Credentials) error

	// Logout ends the session on the server side.
	Logout(ctx context.Context) error

	// ClearSession forgets every cookie held by the adapter.
	ClearSession()

	// ListPasswords returns every record owned by the session's user.
	ListPasswords(ctx context.Context) ([]models.CredentialRecord, error)

	// CreatePassword stores a new record. The returned record is whatever the
	// server echoed back and may be zero when the body was not a record.
	CreatePassword(ctx context.Context, payload models.RecordPayload) (models.CredentialRecord, error)

	// UpdatePassword replaces the fields of the record with the given id.
	UpdatePassword(ctx context.Context, id models.ID, payload models.RecordPayload) (models.CredentialRecord, error)

	// DeletePassword removes the record with the given id.
	DeletePassword(ctx context.Context, id models.ID) error
}
