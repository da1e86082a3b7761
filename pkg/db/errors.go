package db

import "errors"

// Sentinel errors returned by store implementations. Callers branch with
// errors.Is; the concrete store wraps them with context.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert collides with an existing
	// record (username taken, availability already uploaded for a date).
	ErrDuplicate = errors.New("record already exists")

	// ErrNoDoses is returned when a reservation loses the race for the
	// last dose of a vaccine. The dose count is left untouched.
	ErrNoDoses = errors.New("no doses available")

	// ErrNoOpenSlots is returned when no open slot exists on the requested
	// date, or another reservation claimed the last one first.
	ErrNoOpenSlots = errors.New("no open slots available")

	// ErrPatientBooked is returned when the patient already holds an
	// active appointment.
	ErrPatientBooked = errors.New("patient already has an appointment")

	// ErrStoreUnavailable signals a connectivity failure to the backing
	// store. The CLI treats this as fatal and exits non-zero.
	ErrStoreUnavailable = errors.New("store unavailable")
)
