// Package session tracks the single authenticated principal of a CLI
// process. A session is created anonymous at process start, transitions on
// login/logout, and is never shared across processes.
package session

import "errors"

var (
	// ErrAlreadyLoggedIn is returned when a login is attempted while a
	// principal is already authenticated.
	ErrAlreadyLoggedIn = errors.New("a user is already logged in")

	// ErrNotLoggedIn is returned when logout is attempted from an
	// anonymous session.
	ErrNotLoggedIn = errors.New("no user is logged in")
)

// Role identifies the kind of authenticated principal.
type Role int

const (
	RoleAnonymous Role = iota
	RolePatient
	RoleCaregiver
)

// Session holds the process-wide authentication state: exactly one of
// anonymous, patient-logged-in, or caregiver-logged-in.
type Session struct {
	role     Role
	username string
}

// New returns an anonymous session.
func New() *Session {
	return &Session{role: RoleAnonymous}
}

// LoginPatient transitions the session to patient-logged-in.
func (s *Session) LoginPatient(username string) error {
	if s.role != RoleAnonymous {
		return ErrAlreadyLoggedIn
	}
	s.role = RolePatient
	s.username = username
	return nil
}

// LoginCaregiver transitions the session to caregiver-logged-in.
func (s *Session) LoginCaregiver(username string) error {
	if s.role != RoleAnonymous {
		return ErrAlreadyLoggedIn
	}
	s.role = RoleCaregiver
	s.username = username
	return nil
}

// Logout returns the session to anonymous.
func (s *Session) Logout() error {
	if s.role == RoleAnonymous {
		return ErrNotLoggedIn
	}
	s.role = RoleAnonymous
	s.username = ""
	return nil
}

// Role returns the current principal kind.
func (s *Session) Role() Role {
	return s.role
}

// Username returns the authenticated username, or "" when anonymous.
func (s *Session) Username() string {
	return s.username
}

// LoggedIn reports whether any principal is authenticated.
func (s *Session) LoggedIn() bool {
	return s.role != RoleAnonymous
}
