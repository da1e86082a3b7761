package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
)

// DoseStore defines the database operations needed for inventory updates
type DoseStore interface {
	AddDoses(ctx context.Context, name string, doses int) error
}

// AddDoses adds doses of a vaccine to inventory, creating the vaccine type
// on first use. Only a logged-in caregiver may add doses.
func AddDoses(ctx context.Context, store DoseStore, logger *zap.Logger, sess *session.Session, vaccineName string, doses int) error {
	if sess.Role() != session.RoleCaregiver {
		return ErrWrongRole
	}
	if doses <= 0 {
		return fmt.Errorf("dose count must be positive, got %d", doses)
	}

	if err := store.AddDoses(ctx, vaccineName, doses); err != nil {
		return fmt.Errorf("failed to add doses: %w", err)
	}

	logger.Info("Doses added",
		zap.String("vaccine", vaccineName),
		zap.Int("doses", doses),
		zap.String("caregiver", sess.Username()))
	return nil
}
