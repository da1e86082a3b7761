package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// ReserveStore defines the database operations needed for reservation
type ReserveStore interface {
	GetVaccine(ctx context.Context, name string) (db.Vaccine, error)
	PatientAppointments(ctx context.Context, username string) ([]db.Appointment, error)
	OpenCaregiversOn(ctx context.Context, date time.Time) ([]string, error)
	Reserve(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (db.Appointment, error)
}

// Reserve books the earliest open slot on date for the logged-in patient
// with one dose of the named vaccine. Checks run in a fixed order so the
// user always sees the most specific failure:
//
//	role -> vaccine exists -> doses left -> no existing appointment ->
//	slot available -> atomic claim/bind/decrement.
//
// The final step is a single store transaction; a race lost at that point
// resurfaces as the same error the pre-check would have produced.
func Reserve(ctx context.Context, store ReserveStore, logger *zap.Logger, sess *session.Session, date time.Time, vaccineName string) (db.Appointment, error) {
	switch sess.Role() {
	case session.RolePatient:
	case session.RoleCaregiver:
		return db.Appointment{}, ErrWrongRole
	default:
		return db.Appointment{}, ErrNotLoggedIn
	}

	vaccine, err := store.GetVaccine(ctx, vaccineName)
	if errors.Is(err, db.ErrNotFound) {
		return db.Appointment{}, ErrUnknownVaccine
	}
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to look up vaccine: %w", err)
	}
	if vaccine.Doses == 0 {
		return db.Appointment{}, ErrNoDoses
	}

	existing, err := store.PatientAppointments(ctx, sess.Username())
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to check existing appointments: %w", err)
	}
	if len(existing) > 0 {
		return db.Appointment{}, ErrAlreadyBooked
	}

	open, err := store.OpenCaregiversOn(ctx, date)
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to search availability: %w", err)
	}
	if len(open) == 0 {
		return db.Appointment{}, ErrNoOpenSlots
	}

	appt, err := store.Reserve(ctx, sess.Username(), date, vaccineName)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNoDoses):
			return db.Appointment{}, ErrNoDoses
		case errors.Is(err, db.ErrNoOpenSlots):
			return db.Appointment{}, ErrNoOpenSlots
		case errors.Is(err, db.ErrPatientBooked):
			return db.Appointment{}, ErrAlreadyBooked
		}
		return db.Appointment{}, fmt.Errorf("failed to reserve appointment: %w", err)
	}

	logger.Info("Appointment reserved",
		zap.Int64("appointment_id", appt.ID),
		zap.String("patient", appt.PatientUsername),
		zap.String("caregiver", appt.CaregiverUsername),
		zap.String("vaccine", appt.VaccineName),
		zap.Time("date", appt.Date))

	return appt, nil
}
