// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// AuthStatus is the authentication state of a [Session].
type AuthStatus int

const (
	// StatusUnauthenticated means no user is logged in.
	StatusUnauthenticated AuthStatus = iota
	// StatusChecking means the backend is being asked for an existing session.
	StatusChecking
	// StatusAuthenticated means a user is logged in.
	StatusAuthenticated
)

func (s AuthStatus) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is the authenticated-identity state shared by the client
// components. It is created once and passed explicitly to every consumer.
// The zero value is an unauthenticated session ready for use.
//
// Session is safe for concurrent use: UI commands resolve on their own
// goroutines while the UI goroutine reads the state.
type Session struct {
	mu     sync.RWMutex
	user   *User
	status AuthStatus
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// User returns the logged-in user and true, or a zero User and false.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Status returns the current authentication status.
func (s *Session) Status() AuthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// SetChecking marks the session as waiting for the backend. A previously
// authenticated user is kept until the check resolves.
func (s *Session) SetChecking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusChecking
}

// Authenticate stores user and marks the session as authenticated.
func (s *Session) Authenticate(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	s.status = StatusAuthenticated
}

// Clear drops the user and resets the session to unauthenticated.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.status = StatusUnauthenticated
}
