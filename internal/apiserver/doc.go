// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiserver is a reference implementation of the password API the
// client talks to. It serves the same routes as the production backend,
// stores users and records through internal/store (memory, PostgreSQL or
// SQLite) and identifies sessions with a signed token cookie. It is used for
// local development and as the backend of integration tests.
package apiserver
