package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/auth"
	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// LoginStore defines the database operations needed for authentication
type LoginStore interface {
	GetPatient(ctx context.Context, username string) (db.Patient, error)
	GetCaregiver(ctx context.Context, username string) (db.Caregiver, error)
}

// LoginPatient authenticates a patient and transitions the session.
// The stored hash is always re-verified against the supplied password.
func LoginPatient(ctx context.Context, store LoginStore, logger *zap.Logger, sess *session.Session, username, password string) error {
	if sess.LoggedIn() {
		return ErrAlreadyLoggedIn
	}

	patient, err := store.GetPatient(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to look up patient: %w", err)
	}

	if !auth.Verify(password, patient.Salt, patient.Hash) {
		logger.Debug("Password verification failed", zap.String("username", username))
		return ErrInvalidCredentials
	}

	if err := sess.LoginPatient(username); err != nil {
		return err
	}
	logger.Info("Patient logged in", zap.String("username", username))
	return nil
}

// LoginCaregiver authenticates a caregiver and transitions the session.
func LoginCaregiver(ctx context.Context, store LoginStore, logger *zap.Logger, sess *session.Session, username, password string) error {
	if sess.LoggedIn() {
		return ErrAlreadyLoggedIn
	}

	caregiver, err := store.GetCaregiver(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to look up caregiver: %w", err)
	}

	if !auth.Verify(password, caregiver.Salt, caregiver.Hash) {
		logger.Debug("Password verification failed", zap.String("username", username))
		return ErrInvalidCredentials
	}

	if err := sess.LoginCaregiver(username); err != nil {
		return err
	}
	logger.Info("Caregiver logged in", zap.String("username", username))
	return nil
}

// Logout returns the session to anonymous.
func Logout(logger *zap.Logger, sess *session.Session) error {
	username := sess.Username()
	if err := sess.Logout(); err != nil {
		return ErrNotLoggedIn
	}
	logger.Info("Logged out", zap.String("username", username))
	return nil
}
