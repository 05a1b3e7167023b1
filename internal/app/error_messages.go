// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// both the terminal client and the reference API server.
//
// Msg* constants are human-readable strings that end up in the "error" field
// of API responses or in the client's error overlay. Keeping them in one
// place keeps wording consistent between the two sides.
package app

const (
	// MsgNetworkError is shown when a request never received a response.
	MsgNetworkError = "Network error. Please try again."

	// MsgRequestFailed is the fallback shown when the server rejected a
	// request without an "error" message.
	MsgRequestFailed = "Request failed"

	// MsgFailedToSave is the fallback for failed create/update requests.
	MsgFailedToSave = "Failed to save password"

	// MsgRefreshAfterWrite is shown when a record was saved but the list
	// could not be reloaded afterwards.
	MsgRefreshAfterWrite = "Password saved, but the list could not be refreshed"

	// MsgFailedToDelete is the fallback for failed delete requests.
	MsgFailedToDelete = "Failed to delete password"

	// MsgFailedToFetch is the fallback for failed list requests.
	MsgFailedToFetch = "Failed to fetch passwords"

	// MsgLoginFailed is the fallback for rejected logins.
	MsgLoginFailed = "Login failed"

	// MsgRegistrationFailed is the fallback for rejected registrations.
	MsgRegistrationFailed = "Registration failed"

	// MsgFailedToGenerate is shown when no random password could be
	// generated.
	MsgFailedToGenerate = "Failed to generate password"

	// MsgCredentialsRequired is returned when username or password is empty.
	MsgCredentialsRequired = "Username and password are required"

	// MsgTitleAndPasswordRequired is returned when a record lacks a title or
	// a password.
	MsgTitleAndPasswordRequired = "Title and password are required"

	// MsgInvalidWebsite is returned when the website is not a valid URL.
	MsgInvalidWebsite = "Website must be a valid URL"

	// MsgInvalidCategory is returned when a record carries an unknown
	// category label.
	MsgInvalidCategory = "Unknown category"

	// MsgInvalidLoginPassword is returned by the server when the supplied
	// username/password pair does not match an account.
	MsgInvalidLoginPassword = "Invalid username or password"

	// MsgUsernameTaken is returned by the server when registering a username
	// that already exists.
	MsgUsernameTaken = "Username already exists"

	// MsgUnauthorized is returned by the server for requests without a valid
	// session.
	MsgUnauthorized = "Authentication required"

	// MsgPasswordNotFound is returned by the server when the record does not
	// exist or belongs to another user.
	MsgPasswordNotFound = "Password not found"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "Internal server error"

	// MsgSessionExpired is shown when the server rejects the session of a
	// logged-in user.
	MsgSessionExpired = "Your session has expired. Please log in again."
)
