// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SessionService owns the authenticated-identity lifecycle of the client.
// Every mutation of the shared [models.Session] happens when the matching
// backend call resolves.
type SessionService interface {
	// Session returns the session this service mutates.
	Session() *models.Session

	// CheckStatus asks the backend for an existing session. The session is
	// authenticated only when the backend confirms it; any failure leaves it
	// unauthenticated. Failures are logged, never returned.
	CheckStatus(ctx context.Context)

	// Login authenticates with username and password. On success the session
	// becomes authenticated with the identity returned by the backend.
	// Empty credentials fail with ErrCredentialsRequired without a request.
	// The password is not retained.
	Login(ctx context.Context, username, password string) error

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, username, password string) error

	// Logout ends the backend session on a best-effort basis, then clears the
	// local session and every session-scoped store.
	Logout(ctx context.Context)
}

// VaultService is the client-side view of the user's credential records.
// It keeps the last fetched list in memory and synchronises it with the
// backend on every write.
type VaultService interface {
	// FetchAll replaces the list with the backend's. On failure the previous
	// list is kept and the error is returned.
	FetchAll(ctx context.Context) error

	// Create stores a new record, then refreshes the list before returning.
	// A refresh failure after a successful write wraps ErrRefreshAfterWrite.
	Create(ctx context.Context, payload models.RecordPayload) error

	// Update replaces the record with the given id, then refreshes the list
	// before returning. Refresh failures are reported like Create's.
	Update(ctx context.Context, id models.ID, payload models.RecordPayload) error

	// Remove deletes the record with the given id once confirm approves it,
	// then drops it from the local list without refetching. An id missing
	// from the list is a no-op. A declined confirmation returns
	// ErrRemovalNotConfirmed.
	Remove(ctx context.Context, id models.ID, confirm ConfirmFunc) error

	// Records returns a copy of the current list.
	Records() []models.CredentialRecord

	// Loading reports whether any request of the service is in flight.
	Loading() bool

	// Reset drops the list and ignores results of requests already in
	// flight.
	Reset()
}

// ConfirmFunc asks the user to approve the removal of record.
type ConfirmFunc func(record models.CredentialRecord) bool

// Resetter is a session-scoped store cleared on logout.
type Resetter interface {
	Reset()
}
