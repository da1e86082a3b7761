package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// AppointmentListStore defines the database operations needed for listings
type AppointmentListStore interface {
	PatientAppointments(ctx context.Context, username string) ([]db.Appointment, error)
	CaregiverAppointments(ctx context.Context, username string) ([]db.Appointment, error)
}

// ShowAppointments returns the acting principal's appointments ordered by
// id: a patient sees the appointment bound to their record, a caregiver
// sees every appointment booked on their slots.
func ShowAppointments(ctx context.Context, store AppointmentListStore, logger *zap.Logger, sess *session.Session) ([]db.Appointment, error) {
	var (
		appointments []db.Appointment
		err          error
	)
	switch sess.Role() {
	case session.RolePatient:
		appointments, err = store.PatientAppointments(ctx, sess.Username())
	case session.RoleCaregiver:
		appointments, err = store.CaregiverAppointments(ctx, sess.Username())
	default:
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	logger.Debug("Appointments listed",
		zap.String("username", sess.Username()),
		zap.Int("count", len(appointments)))
	return appointments, nil
}
