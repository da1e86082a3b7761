package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/auth"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// RegisterStore defines the database operations needed for registration
type RegisterStore interface {
	InsertPatient(ctx context.Context, patient db.Patient) error
	InsertCaregiver(ctx context.Context, caregiver db.Caregiver) error
}

// RegisterPatient creates a patient account with a fresh salt and derived
// password hash. Returns ErrUsernameTaken if the username already exists in
// the patient namespace.
func RegisterPatient(ctx context.Context, store RegisterStore, logger *zap.Logger, username, password string) error {
	salt, hash, err := newCredential(password)
	if err != nil {
		return err
	}

	err = store.InsertPatient(ctx, db.Patient{Username: username, Salt: salt, Hash: hash})
	if errors.Is(err, db.ErrDuplicate) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	logger.Info("Patient account created", zap.String("username", username))
	return nil
}

// RegisterCaregiver creates a caregiver account. The caregiver namespace is
// independent of the patient namespace, so the same username may exist in
// both.
func RegisterCaregiver(ctx context.Context, store RegisterStore, logger *zap.Logger, username, password string) error {
	salt, hash, err := newCredential(password)
	if err != nil {
		return err
	}

	err = store.InsertCaregiver(ctx, db.Caregiver{Username: username, Salt: salt, Hash: hash})
	if errors.Is(err, db.ErrDuplicate) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create caregiver: %w", err)
	}

	logger.Info("Caregiver account created", zap.String("username", username))
	return nil
}

func newCredential(password string) (salt, hash []byte, err error) {
	salt, err = auth.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}
	return salt, auth.HashPassword(password, salt), nil
}
