package services

import "errors"

// Workflow errors surfaced to the CLI. Each maps to a specific user-facing
// message; none of them leaves any state changed.
var (
	// ErrNotLoggedIn: the operation requires an authenticated principal.
	ErrNotLoggedIn = errors.New("login required")

	// ErrWrongRole: the operation is restricted to the other principal kind.
	ErrWrongRole = errors.New("operation not permitted for this role")

	// ErrAlreadyLoggedIn: a login was attempted over an existing session.
	ErrAlreadyLoggedIn = errors.New("a user is already logged in")

	// ErrUsernameTaken: registration collided with an existing username of
	// the same principal kind.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials: unknown username or wrong password. The two
	// cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnknownVaccine: the requested vaccine type does not exist.
	ErrUnknownVaccine = errors.New("unknown vaccine")

	// ErrNoDoses: the requested vaccine (or all vaccines, for schedule
	// search) has no doses left.
	ErrNoDoses = errors.New("no vaccine doses available")

	// ErrAlreadyBooked: the patient already holds an active appointment.
	ErrAlreadyBooked = errors.New("patient already has an appointment")

	// ErrNoOpenSlots: no caregiver has an open slot on the requested date.
	ErrNoOpenSlots = errors.New("no appointments available")

	// ErrDuplicateAvailability: the caregiver already uploaded a slot for
	// that date.
	ErrDuplicateAvailability = errors.New("availability already uploaded for that date")

	// ErrAppointmentNotFound: the appointment does not exist or does not
	// belong to the acting principal. Ownership failures read identically
	// to missing ids so the error leaks nothing about other users.
	ErrAppointmentNotFound = errors.New("appointment not found")
)
