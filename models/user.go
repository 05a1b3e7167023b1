// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity returned by the backend after authentication.
// The client treats it as opaque apart from the display name.
type User struct {
	// ID is the backend identifier of the user, if it sends one.
	ID ID `json:"id,omitempty"`

	// Username is the login the user authenticated with.
	Username string `json:"username"`
}

// Credentials is the body of login and registration requests.
// It lives only for the duration of a single request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
