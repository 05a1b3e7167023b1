// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/app"
)

var (
	// ErrCredentialsRequired is returned before any request when the username
	// or the password is empty.
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrRefreshAfterWrite marks a create or update that reached the backend
	// but whose follow-up list refresh failed. The record was saved.
	ErrRefreshAfterWrite = errors.New("record saved but list refresh failed")

	// ErrRemovalNotConfirmed is returned when the user declined a removal.
	ErrRemovalNotConfirmed = errors.New("removal not confirmed")
)

// UserMessage turns err into the text shown to the user. Server-provided
// messages win; fallback is used when the server gave none. An empty
// fallback selects a generic one.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = app.MsgRequestFailed
	}

	switch {
	case errors.Is(err, ErrCredentialsRequired):
		return app.MsgCredentialsRequired
	case errors.Is(err, ErrRefreshAfterWrite):
		return app.MsgRefreshAfterWrite
	case errors.Is(err, ErrRemovalNotConfirmed):
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return app.MsgNetworkError
	}

	return fallback
}
