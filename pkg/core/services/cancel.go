package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// CancelStore defines the database operations needed for cancellation
type CancelStore interface {
	GetAppointment(ctx context.Context, id int64) (db.Appointment, error)
	Cancel(ctx context.Context, appt db.Appointment, byCaregiver bool) error
}

// Cancel removes an appointment the acting principal owns. A patient owns
// the appointments bound to their record; a caregiver owns the appointments
// on their own slots. A caregiver cancel deletes the slot outright; a
// patient cancel reopens it. One dose returns to inventory either way,
// atomically with the rest.
func Cancel(ctx context.Context, store CancelStore, logger *zap.Logger, sess *session.Session, appointmentID int64) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}

	appt, err := store.GetAppointment(ctx, appointmentID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up appointment: %w", err)
	}

	byCaregiver := sess.Role() == session.RoleCaregiver
	if byCaregiver {
		if appt.CaregiverUsername != sess.Username() {
			return ErrAppointmentNotFound
		}
	} else if appt.PatientUsername != sess.Username() {
		return ErrAppointmentNotFound
	}

	if err := store.Cancel(ctx, appt, byCaregiver); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	logger.Info("Appointment cancelled",
		zap.Int64("appointment_id", appt.ID),
		zap.String("cancelled_by", sess.Username()),
		zap.Bool("by_caregiver", byCaregiver))
	return nil
}
