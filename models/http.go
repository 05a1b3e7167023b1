// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthStatusResponse is returned by GET /check-auth.
type AuthStatusResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// LoginResponse is returned by a successful POST /login.
type LoginResponse struct {
	User User `json:"user"`
}

// ErrorResponse is the body of every non-2xx response. Error is the
// user-facing message.
type ErrorResponse struct {
	Error string `json:"error"`
}
