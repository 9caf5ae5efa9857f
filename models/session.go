// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity describes the account a session is authenticated as.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session holds the bearer token and identity of the current user.
//
// Token and Identity are only ever changed together through [Session.Set] and
// [Session.Clear]: either both are present or both are absent. A Session is
// kept in memory for the lifetime of the process and is never persisted.
type Session struct {
	Token    string
	Identity *Identity
}

// Set stores token and identity together.
func (s *Session) Set(token string, identity Identity) {
	s.Token = token
	s.Identity = &identity
}

// Clear drops both token and identity.
func (s *Session) Clear() {
	s.Token = ""
	s.Identity = nil
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Snapshot returns a copy that shares no pointers with s.
func (s *Session) Snapshot() Session {
	if s == nil {
		return Session{}
	}
	cp := Session{Token: s.Token}
	if s.Identity != nil {
		id := *s.Identity
		cp.Identity = &id
	}
	return cp
}

// AbbreviatedToken renders the token as its first 20 and last 10 characters.
// Short tokens are returned unchanged.
func (s Session) AbbreviatedToken() string {
	const head, tail = 20, 10
	if len(s.Token) <= head+tail {
		return s.Token
	}
	return s.Token[:head] + "..." + s.Token[len(s.Token)-tail:]
}
