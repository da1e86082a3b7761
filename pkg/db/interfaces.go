package db

import (
	"context"
	"time"
)

// PatientStore defines patient credential persistence.
type PatientStore interface {
	InsertPatient(ctx context.Context, patient Patient) error
	GetPatient(ctx context.Context, username string) (Patient, error)
}

// CaregiverStore defines caregiver credential persistence.
type CaregiverStore interface {
	InsertCaregiver(ctx context.Context, caregiver Caregiver) error
	GetCaregiver(ctx context.Context, username string) (Caregiver, error)
}

// VaccineStore defines dose inventory operations. Decrements happen only
// inside the reservation transaction, never through this interface.
type VaccineStore interface {
	TotalDoses(ctx context.Context) (int, error)
	ListVaccines(ctx context.Context) ([]Vaccine, error)
	GetVaccine(ctx context.Context, name string) (Vaccine, error)
	AddDoses(ctx context.Context, name string, doses int) error
}

// AvailabilityStore defines caregiver calendar operations.
type AvailabilityStore interface {
	InsertAvailability(ctx context.Context, caregiverUsername string, date time.Time) error
	OpenCaregiversOn(ctx context.Context, date time.Time) ([]string, error)
}

// AppointmentStore defines the transactional reservation operations.
// Reserve and Cancel are each a single atomic unit at the store level.
type AppointmentStore interface {
	Reserve(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (Appointment, error)
	Cancel(ctx context.Context, appt Appointment, byCaregiver bool) error
	GetAppointment(ctx context.Context, id int64) (Appointment, error)
	PatientAppointments(ctx context.Context, username string) ([]Appointment, error)
	CaregiverAppointments(ctx context.Context, username string) ([]Appointment, error)
}

// Store is the full set of database operations. postgres.DB implements it.
type Store interface {
	PatientStore
	CaregiverStore
	VaccineStore
	AvailabilityStore
	AppointmentStore
}
