// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiserver

import (
	"errors"

	"github.com/MKhiriev/go-pass-client/internal/store"
)

var (
	// ErrLoginAlreadyExists is returned when registering a taken username.
	ErrLoginAlreadyExists = store.ErrLoginAlreadyExists

	// ErrWrongCredentials is returned when a username/password pair does not
	// match an account.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrInvalidDataProvided is returned for missing credentials or record
	// fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSessionNotFound is returned for unknown or ended sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRecordNotFound is returned when the record does not exist or belongs
	// to another user.
	ErrRecordNotFound = store.ErrRecordNotFound

	errNoServersAreCreated = errors.New("no servers are created")
)
